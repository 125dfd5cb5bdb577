package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

const DefaultBaseURL = "https://api.wunderground.com/api/"

const features = "astronomy/forecast/conditions/hourly"

// WundergroundFetcher issues a single GET per call and never retries.
// A zero timeout keeps http.Client's default of no deadline; callers bound
// the request through ctx.
type WundergroundFetcher struct {
	client  *http.Client
	baseURL string
	apiKey  string
	pws     string
	lang    string
	logger  logger.Logger
}

func NewWundergroundFetcher(baseURL, apiKey, pws, lang string, timeout time.Duration, log logger.Logger) *WundergroundFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &WundergroundFetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		apiKey:  apiKey,
		pws:     pws,
		lang:    lang,
		logger:  logger.Component(log, "wunderground_fetcher"),
	}
}

// RequestURL builds {base}{key}/astronomy/forecast/conditions/hourly/lang:{lang}/q/pws:{pws}.json.
func (f *WundergroundFetcher) RequestURL() string {
	return f.baseURL +
		url.PathEscape(f.apiKey) + "/" + features +
		"/lang:" + url.PathEscape(f.lang) +
		"/q/pws:" + url.PathEscape(f.pws) + ".json"
}

func (f *WundergroundFetcher) Fetch(ctx context.Context) (*entities.RawForecast, error) {
	f.logger.Debugf("Fetching forecast for station %s (lang %s)", f.pws, f.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.RequestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", entities.ErrForecastUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// the error text embeds the URL, which carries the API key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", entities.ErrForecastUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: API returned status %d", entities.ErrForecastUnavailable, resp.StatusCode)
	}

	var forecast entities.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", entities.ErrForecastUnavailable, err)
	}

	f.logger.Debugf("Fetched forecast with %d hourly records", len(forecast.HourlyForecast))
	return &forecast, nil
}

type WundergroundFetcherFactory struct {
	logger logger.Logger
}

func NewWundergroundFetcherFactory(log logger.Logger) ports.FetcherFactory {
	return &WundergroundFetcherFactory{logger: log}
}

func (f *WundergroundFetcherFactory) CreateFetcher(baseURL, apiKey, pws, lang string, timeout time.Duration) ports.Fetcher {
	logger.Component(f.logger, "wunderground_fetcher_factory").Infof("Creating fetcher for station %s", pws)
	return NewWundergroundFetcher(baseURL, apiKey, pws, lang, timeout, f.logger)
}
