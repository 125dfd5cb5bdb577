package entities

import "errors"

var (
	// ErrForecastUnavailable marks any failure to obtain a forecast document:
	// transport errors, non-200 answers and undecodable bodies.
	ErrForecastUnavailable = errors.New("forecast unavailable")
	// ErrDataUnavailable marks a forecast that holds no usable sunrise conditions.
	ErrDataUnavailable = errors.New("data unavailable")
)

// DailySummary is the flattened set of values rendered into the morning
// email. A nil *DailySummary means nothing can be sent.
type DailySummary struct {
	Date          string `json:"date"`
	Summary       string `json:"summary"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	HighTemp      string `json:"high_temp"`
	LowTemp       string `json:"low_temp"`
	Icon          string `json:"icon"`
	IconFile      string `json:"icon_file"`
	ChanceOfRain  string `json:"chance_of_rain"`
	Temperature   string `json:"temperature"`
	WindSpeed     string `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	CloudCover    string `json:"cloud_cover"`
	UVIndex       string `json:"uv_index"`
}

func (s *DailySummary) Validate() error {
	if s.Date == "" {
		return ErrInvalidDate
	}
	if s.Sunrise == "" {
		return ErrInvalidSunrise
	}
	if s.IconFile == "" {
		return ErrInvalidIconFile
	}
	return nil
}

var (
	ErrInvalidDate     = ValidationError{Field: "date", Reason: "must not be empty"}
	ErrInvalidSunrise  = ValidationError{Field: "sunrise", Reason: "must not be empty"}
	ErrInvalidIconFile = ValidationError{Field: "icon_file", Reason: "must not be empty"}
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
