package l1_service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	"agroplan/internal/repository"

	"github.com/google/uuid"
)

// AlertDigestService renders a firm's active predictive alerts into an
// HTML digest and emails it. Triggered on a schedule (EventBridge hits
// the /sendAlertDigest endpoint).
type AlertDigestService interface {
	SendAlertDigest(ctx context.Context, firmID uuid.UUID, recipient string) (int, error)
}

type alertDigestServiceHandler struct {
	AlertRepository repository.PredictiveAlertRepository
	EmailRepository repository.EmailRepository
}

func NewAlertDigestService(
	alertRepository repository.PredictiveAlertRepository,
	emailRepository repository.EmailRepository,
) AlertDigestService {
	return alertDigestServiceHandler{
		AlertRepository: alertRepository,
		EmailRepository: emailRepository,
	}
}

const digestTemplate = `<html>
<body>
<h2>Active alerts for your operation</h2>
<table border="1" cellpadding="6" cellspacing="0">
	<tr><th>Alert</th><th>Severity</th><th>Detail</th><th>Recommended action</th><th>Projected date</th></tr>
	{{range .}}
	<tr>
		<td>{{.Title}}</td>
		<td>{{.Severity}}</td>
		<td>{{.Description}}</td>
		<td>{{.RecommendedAction}}</td>
		<td>{{.ProjectedDate.Format "2006-01-02"}}</td>
	</tr>
	{{end}}
</table>
</body>
</html>`

var digestTmpl = template.Must(template.New("alertDigest").Parse(digestTemplate))

// SendAlertDigest returns the number of alerts included. No active
// alerts means no email - a quiet week shouldn't produce an empty one.
func (h alertDigestServiceHandler) SendAlertDigest(ctx context.Context, firmID uuid.UUID, recipient string) (int, error) {
	status := domain.AlertStatus_Active
	alerts, err := h.AlertRepository.List(repository.PredictiveAlertListFilter{
		FirmID: &firmID,
		Status: &status,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list active alerts: %w", err)
	}
	if len(alerts) == 0 {
		return 0, nil
	}

	body, err := renderDigest(alerts)
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("agroplan: %d active alert(s) on your operation", len(alerts))
	if err := h.EmailRepository.SendEmail(ctx, recipient, subject, body); err != nil {
		return 0, fmt.Errorf("failed to send alert digest: %w", err)
	}

	return len(alerts), nil
}

func renderDigest(alerts []model.PredictiveAlert) (string, error) {
	buf := bytes.Buffer{}
	if err := digestTmpl.Execute(&buf, alerts); err != nil {
		return "", fmt.Errorf("failed to render alert digest: %w", err)
	}
	return buf.String(), nil
}
