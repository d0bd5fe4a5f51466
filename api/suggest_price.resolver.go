package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// suggestPrice returns a price_per_kg assumption derived from recent
// futures settles for the given commodity.
func (m ApiHandler) suggestPrice(c *gin.Context) {
	commodity := c.Query("commodity")
	if commodity == "" {
		returnErrorJsonCode(fmt.Errorf("commodity query param is required (one of %v)",
			m.MarketPriceRepository.SupportedCommodities()), c, 400)
		return
	}

	price, err := m.MarketPriceRepository.SuggestPricePerKg(commodity)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{
		"commodity":  commodity,
		"pricePerKg": price,
	})
}
