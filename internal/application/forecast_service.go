package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

// ForecastService runs the fetch, extract, notify pipeline. Fetch and
// extraction failures end a run quietly; asset and delivery failures are
// returned to the caller.
type ForecastService struct {
	fetcher   ports.Fetcher
	extractor *Extractor
	notifier  *Notifier
	logger    logger.Logger
}

func NewForecastService(fetcher ports.Fetcher, extractor *Extractor, notifier *Notifier, log logger.Logger) *ForecastService {
	return &ForecastService{
		fetcher:   fetcher,
		extractor: extractor,
		notifier:  notifier,
		logger:    logger.Component(log, "forecast_service"),
	}
}

func (s *ForecastService) Run(ctx context.Context) error {
	startTime := time.Now()
	log := s.logger.WithField("run_id", uuid.NewString())
	log.Info("Starting morning forecast run")

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.WithField("error", err.Error()).Warn("Weather Underground API unavailable.")
		return nil
	}

	summary, err := s.extractor.Extract(raw)
	if err != nil {
		log.WithField("error", err.Error()).Info("No sunrise conditions extracted")
	}

	if err := s.notifier.Notify(ctx, summary); err != nil {
		log.Errorf("Run failed after %v: %v", time.Since(startTime), err)
		return err
	}

	log.Infof("Run completed in %v", time.Since(startTime))
	return nil
}

// Schedule registers Run on scheduler; every tick is an independent run.
func (s *ForecastService) Schedule(ctx context.Context, scheduler ports.Scheduler, spec string) error {
	s.logger.Infof("Scheduling forecast runs on %q", spec)

	if err := scheduler.Schedule(ctx, spec, s.Run); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	return nil
}
