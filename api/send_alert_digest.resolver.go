package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SendAlertDigestRequest struct {
	FirmID    string `json:"firmId"`
	Recipient string `json:"recipient"`
}

// sendAlertDigest emails a firm's active alerts to the given recipient.
// EventBridge hits this on a weekly schedule; it also works on demand.
func (m ApiHandler) sendAlertDigest(c *gin.Context) {
	var requestBody SendAlertDigestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	firmID, err := uuid.Parse(requestBody.FirmID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid firmId: %w", err), c, 400)
		return
	}
	if requestBody.Recipient == "" {
		returnErrorJsonCode(fmt.Errorf("recipient is required"), c, 400)
		return
	}

	count, err := m.AlertDigestService.SendAlertDigest(c.Request.Context(), firmID, requestBody.Recipient)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"alertsIncluded": count})
}
