package application

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

// MatchMode selects how the hourly record describing sunrise is found.
// Both modes use exact equality with no tolerance window and keep the first
// match in list order.
type MatchMode string

const (
	// MatchByHour compares FCTTIME.hour with the sunrise hour as integers.
	MatchByHour MatchMode = "hour"
	// MatchByEpoch compares FCTTIME.epoch with today at sunrise hour, minute
	// zero, in the forecast's local zone. Providers whose hourly records do
	// not land on minute zero never match in this mode.
	MatchByEpoch MatchMode = "epoch"
)

// ParseMatchMode maps a configured mode name to a MatchMode. The empty
// string selects MatchByHour.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "", MatchByHour:
		return MatchByHour, nil
	case MatchByEpoch:
		return MatchByEpoch, nil
	default:
		return "", fmt.Errorf("unknown match mode %q", s)
	}
}

// Extractor flattens a RawForecast into a DailySummary. It is pure apart
// from the clock, which is only read in MatchByEpoch mode.
type Extractor struct {
	icons  *IconResolver
	dates  *DateFormatter
	mode   MatchMode
	clock  ports.Clock
	logger logger.Logger
}

// NewExtractor builds an extractor. A nil dates formats in French, a nil
// clock reads time.Now.
func NewExtractor(icons *IconResolver, dates *DateFormatter, mode MatchMode, clock ports.Clock, log logger.Logger) *Extractor {
	if dates == nil {
		dates = NewDateFormatter("")
	}
	if clock == nil {
		clock = time.Now
	}
	if mode == "" {
		mode = MatchByHour
	}
	return &Extractor{
		icons:  icons,
		dates:  dates,
		mode:   mode,
		clock:  clock,
		logger: logger.Component(log, "extractor"),
	}
}

// Extract returns the summary for the sunrise hour. Every failure wraps
// entities.ErrDataUnavailable; a nil summary is never returned with a nil error.
func (e *Extractor) Extract(raw *entities.RawForecast) (*entities.DailySummary, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty forecast", entities.ErrDataUnavailable)
	}

	days := raw.Forecast.SimpleForecast.ForecastDay
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no daily forecast", entities.ErrDataUnavailable)
	}
	today := days[0]

	loc, err := time.LoadLocation(raw.CurrentObservation.LocalTZLong)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", entities.ErrDataUnavailable, raw.CurrentObservation.LocalTZLong, err)
	}

	sunriseHour, err := raw.SunPhase.Sunrise.HourOfDay()
	if err != nil {
		return nil, fmt.Errorf("%w: sunrise: %v", entities.ErrDataUnavailable, err)
	}

	var record *entities.HourlyRecord
	switch e.mode {
	case MatchByEpoch:
		record = matchByEpoch(raw.HourlyForecast, e.sunriseInstant(sunriseHour, loc))
	default:
		record = matchByHour(raw.HourlyForecast, sunriseHour)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: no hourly conditions found for sunrise hour %d", entities.ErrDataUnavailable, sunriseHour)
	}

	epoch, err := record.FCTTime.EpochSeconds()
	if err != nil {
		return nil, fmt.Errorf("%w: matched record: %v", entities.ErrDataUnavailable, err)
	}

	e.logger.Debugf("Matched hourly record at %s for sunrise %s (mode %s)",
		time.Unix(epoch, 0).In(loc).Format(time.RFC3339), raw.SunPhase.Sunrise, e.mode)

	return &entities.DailySummary{
		Date:          e.dates.Format(time.Unix(epoch, 0).In(loc)),
		Summary:       record.Condition,
		Sunrise:       raw.SunPhase.Sunrise.String(),
		Sunset:        raw.SunPhase.Sunset.String(),
		HighTemp:      today.High.Celsius,
		LowTemp:       today.Low.Celsius,
		Icon:          record.Icon,
		IconFile:      e.icons.Resolve(record.Icon),
		ChanceOfRain:  record.Pop,
		Temperature:   record.Temp.Metric,
		WindSpeed:     record.Wspd.Metric,
		WindDirection: record.Wdir.Dir,
		CloudCover:    record.Sky,
		UVIndex:       record.UVI,
	}, nil
}

func (e *Extractor) sunriseInstant(hour int, loc *time.Location) int64 {
	now := e.clock().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc).Unix()
}

func matchByHour(records []entities.HourlyRecord, hour int) *entities.HourlyRecord {
	for i := range records {
		h, err := records[i].FCTTime.HourOfDay()
		if err != nil {
			continue
		}
		if h == hour {
			return &records[i]
		}
	}
	return nil
}

func matchByEpoch(records []entities.HourlyRecord, epoch int64) *entities.HourlyRecord {
	for i := range records {
		e, err := records[i].FCTTime.EpochSeconds()
		if err != nil {
			continue
		}
		if e == epoch {
			return &records[i]
		}
	}
	return nil
}
