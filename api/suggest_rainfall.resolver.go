package api

import (
	"fmt"
	"strconv"

	meteo_client "agroplan/pkg/meteo"

	"github.com/gin-gonic/gin"
)

// suggestRainfall pre-fills the expected_rainfall_mm assumption from
// the weather forecast at the premise's coordinates.
func (m ApiHandler) suggestRainfall(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid latitude: %w", err), c, 400)
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid longitude: %w", err), c, 400)
		return
	}
	days := 16
	if v := c.Query("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid days: %w", err), c, 400)
			return
		}
	}

	rainfallMm, err := meteo_client.GetExpectedRainfallMm(latitude, longitude, days)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{
		"days":       days,
		"rainfallMm": rainfallMm,
	})
}
