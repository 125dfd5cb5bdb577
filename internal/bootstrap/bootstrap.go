package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jfgoncalves/morning-weather/config"
	"github.com/jfgoncalves/morning-weather/internal/application"
	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/infrastructure/assets"
	wuhttp "github.com/jfgoncalves/morning-weather/internal/infrastructure/http"
	"github.com/jfgoncalves/morning-weather/internal/infrastructure/scheduler"
	"github.com/jfgoncalves/morning-weather/internal/infrastructure/smtp"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

type Mode int

const (
	// ModeOnce runs the pipeline a single time; the default.
	ModeOnce Mode = iota
	// ModeServe stays resident and runs the pipeline on schedule.cron.
	ModeServe
	// ModeCheck validates configuration and assets without fetching or sending.
	ModeCheck
)

type Options struct {
	ConfigPath string
	Mode       Mode
}

type Bootstrap struct {
	config *config.Config
	logger logger.Logger
	mode   Mode
}

func NewBootstrap(opts Options) (*Bootstrap, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.App.LogLevel, cfg.App.Env).WithField("service", cfg.App.Name)

	return &Bootstrap{
		config: cfg,
		logger: log,
		mode:   opts.Mode,
	}, nil
}

func (b *Bootstrap) Run() error {
	if b.mode == ModeCheck {
		if err := logger.SetLevel(b.logger, "debug"); err != nil {
			return err
		}
	}
	b.PrintConfigInfo()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		select {
		case sig := <-signalChan:
			b.logger.Infof("Received signal: %v. Shutting down...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	service, store, err := b.initDependencies()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	switch b.mode {
	case ModeCheck:
		_, err := NewPreflightChecker(store, entities.DefaultIconMapping(), b.logger).CheckAll()
		return err
	case ModeServe:
		return b.serve(ctx, service, store)
	default:
		return service.Run(ctx)
	}
}

func (b *Bootstrap) serve(ctx context.Context, service *application.ForecastService, store ports.AssetStore) error {
	if _, err := NewPreflightChecker(store, entities.DefaultIconMapping(), b.logger).CheckAll(); err != nil {
		return fmt.Errorf("preflight failed: %w", err)
	}
	if strings.TrimSpace(b.config.Schedule.Cron) == "" {
		return fmt.Errorf("schedule.cron must not be empty in serve mode")
	}
	if err := scheduler.ValidateSpec(b.config.Schedule.Cron); err != nil {
		return err
	}

	cronScheduler := scheduler.NewCronSchedulerFactory(b.logger).CreateScheduler(b.config.Schedule.Timeout)
	if err := service.Schedule(ctx, cronScheduler, b.config.Schedule.Cron); err != nil {
		return err
	}

	<-ctx.Done()

	b.logger.Info("Stopping scheduler...")
	cronScheduler.Stop()
	b.logger.Info("Service stopped gracefully")
	return nil
}

func (b *Bootstrap) initDependencies() (*application.ForecastService, ports.AssetStore, error) {
	b.logger.Info("Initializing dependencies...")

	mode, err := application.ParseMatchMode(b.config.Wunderground.MatchMode)
	if err != nil {
		return nil, nil, err
	}

	wu := b.config.Wunderground
	fetcher := wuhttp.NewWundergroundFetcherFactory(b.logger).
		CreateFetcher(wu.BaseURL, wu.Key, wu.PWS, wu.Lang, wu.Timeout)

	mail := b.config.Email
	sender := smtp.NewMailerFactory(b.logger).
		CreateSender(mail.SMTP, mail.Port, mail.Login, mail.Pwd)

	store := assets.NewDirStore(b.config.Assets.Dir, b.logger)

	icons := application.NewIconResolver(entities.DefaultIconMapping(), b.logger)
	extractor := application.NewExtractor(icons, application.NewDateFormatter(wu.Lang), mode, nil, b.logger)
	notifier := application.NewNotifier(mail.From, mail.To, store, sender, b.logger)

	return application.NewForecastService(fetcher, extractor, notifier, b.logger), store, nil
}

func (b *Bootstrap) PrintConfigInfo() {
	b.logger.Infof("Service Name: %s", b.config.App.Name)
	b.logger.Infof("Environment: %s", b.config.App.Env)
	b.logger.Infof("Weather station: %s (lang %s, match mode %s)",
		b.config.Wunderground.PWS, b.config.Wunderground.Lang, b.config.Wunderground.MatchMode)
	b.logger.Infof("SMTP relay: %s:%d", b.config.Email.SMTP, b.config.Email.Port)
	b.logger.Infof("Recipient: %s", b.config.Email.To)
	b.logger.Infof("Assets directory: %s", b.config.Assets.Dir)
	if b.mode == ModeServe {
		b.logger.Infof("Schedule: %s", b.config.Schedule.Cron)
	}
	if logger.IsDebugEnabled(b.logger) {
		b.logger.Debugf("Provider base URL: %s, timeout %s", b.config.Wunderground.BaseURL, b.config.Wunderground.Timeout)
		b.logger.Debugf("SMTP login: %s", b.config.Email.Login)
	}
}
