package ports

import (
	"context"
	"time"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
)

// Fetcher retrieves the forecast document for the configured station.
// Every failure wraps entities.ErrForecastUnavailable.
type Fetcher interface {
	Fetch(ctx context.Context) (*entities.RawForecast, error)
}

type FetcherFactory interface {
	CreateFetcher(baseURL, apiKey, pws, lang string, timeout time.Duration) Fetcher
}
