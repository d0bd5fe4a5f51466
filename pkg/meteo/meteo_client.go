package meteo_client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client for the Open-Meteo forecast API. Used to pre-fill the
// expected_rainfall_mm assumption on pasture and production scenarios.

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func getBytes(latitude, longitude float64, days int) ([]byte, error) {
	url := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%.4f&longitude=%.4f&daily=precipitation_sum&forecast_days=%d",
		latitude, longitude, days,
	)
	cacheKey := url + "|" + time.Now().Format(time.DateOnly)
	if out, ok := cache[cacheKey]; ok {
		return out, nil
	}

	client := http.DefaultClient
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[cacheKey] = responseBytes

	return responseBytes, nil
}

func sumPrecipitation(daily []float64) float64 {
	total := 0.0
	for _, mm := range daily {
		total += mm
	}
	return total
}

// GetExpectedRainfallMm returns the total forecast precipitation, in
// mm, over the next `days` days at the given coordinates. Open-Meteo
// caps forecasts at 16 days; longer planning horizons should
// extrapolate on the caller's side.
func GetExpectedRainfallMm(latitude, longitude float64, days int) (float64, error) {
	if days < 1 || days > 16 {
		return 0, fmt.Errorf("forecast days must be between 1 and 16, got %d", days)
	}

	responseBytes, err := getBytes(latitude, longitude, days)
	if err != nil {
		return 0, err
	}

	responseBody := forecastResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return 0, err
	}
	if len(responseBody.Daily.PrecipitationSum) == 0 {
		return 0, fmt.Errorf("forecast response contained no precipitation data")
	}

	return sumPrecipitation(responseBody.Daily.PrecipitationSum), nil
}
