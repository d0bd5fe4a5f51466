package meteo_client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumPrecipitation(t *testing.T) {
	require.Equal(t, 0.0, sumPrecipitation(nil))
	require.InDelta(t, 12.7, sumPrecipitation([]float64{0, 3.2, 9.5}), 0.0001)
}

func TestForecastResponseShape(t *testing.T) {
	raw := `{
		"daily": {
			"time": ["2026-08-28", "2026-08-29"],
			"precipitation_sum": [1.5, 0.0]
		}
	}`

	responseBody := forecastResponse{}
	err := json.Unmarshal([]byte(raw), &responseBody)
	require.NoError(t, err)
	require.Len(t, responseBody.Daily.PrecipitationSum, 2)
	require.InDelta(t, 1.5, sumPrecipitation(responseBody.Daily.PrecipitationSum), 0.0001)
}
