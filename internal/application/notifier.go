package application

import (
	"context"
	"fmt"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

const (
	subjectTemplate = "Météo du %s"
	bodyTemplate    = "%s. Le soleil se lèvera à %s et il fera %s°C. " +
		"Le vent soufflera à %s km/h %s, le risque de pluie sera de %s%%, " +
		"l'indice UV sera de %s et la couverture nuageuse sera de %s%%. " +
		"Pour la journée, la maximale sera de %s°C et la minimale de %s°C. " +
		"Le soleil se couchera à %s."

	attachmentContentType = "application/octet-stream"
)

// Notifier turns a DailySummary into the morning email and hands it to a
// Sender. A nil summary is logged and dropped.
type Notifier struct {
	from   string
	to     string
	assets ports.AssetStore
	sender ports.Sender
	logger logger.Logger
}

func NewNotifier(from, to string, assets ports.AssetStore, sender ports.Sender, log logger.Logger) *Notifier {
	return &Notifier{
		from:   from,
		to:     to,
		assets: assets,
		sender: sender,
		logger: logger.Component(log, "notifier"),
	}
}

func (n *Notifier) Notify(ctx context.Context, summary *entities.DailySummary) error {
	if summary == nil {
		n.logger.Warn("Data unavailable.")
		return nil
	}

	email, err := n.Compose(summary)
	if err != nil {
		return err
	}

	if err := n.sender.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send forecast email: %w", err)
	}

	n.logger.Infof("Forecast for %s sent to %s", summary.Date, n.to)
	return nil
}

// Compose builds the email for summary. A missing icon asset is an error.
func (n *Notifier) Compose(summary *entities.DailySummary) (*entities.Email, error) {
	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summary: %w", err)
	}

	icon, err := n.assets.Read(summary.IconFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", summary.IconFile, err)
	}

	return &entities.Email{
		From:    n.from,
		To:      n.to,
		Subject: RenderSubject(summary),
		Body:    RenderBody(summary),
		Attachment: &entities.Attachment{
			Name:        summary.IconFile,
			ContentType: attachmentContentType,
			Data:        icon,
		},
	}, nil
}

func RenderSubject(s *entities.DailySummary) string {
	return fmt.Sprintf(subjectTemplate, s.Date)
}

func RenderBody(s *entities.DailySummary) string {
	return fmt.Sprintf(bodyTemplate,
		s.Summary,
		s.Sunrise,
		s.Temperature,
		s.WindSpeed,
		s.WindDirection,
		s.ChanceOfRain,
		s.UVIndex,
		s.CloudCover,
		s.HighTemp,
		s.LowTemp,
		s.Sunset,
	)
}
