package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// RawForecast is the subset of the Weather Underground
// astronomy/forecast/conditions/hourly document read by the service.
// The provider encodes every number as a string.
type RawForecast struct {
	SunPhase           SunPhase           `json:"sun_phase"`
	Forecast           Forecast           `json:"forecast"`
	HourlyForecast     []HourlyRecord     `json:"hourly_forecast"`
	CurrentObservation CurrentObservation `json:"current_observation"`
}

type SunPhase struct {
	Sunrise ClockTime `json:"sunrise"`
	Sunset  ClockTime `json:"sunset"`
}

type ClockTime struct {
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
}

// String renders the time the way the mail body expects it, e.g. "6h42".
func (c ClockTime) String() string {
	return c.Hour + "h" + c.Minute
}

func (c ClockTime) HourOfDay() (int, error) {
	return parseHour(c.Hour)
}

type Forecast struct {
	SimpleForecast SimpleForecast `json:"simpleforecast"`
}

type SimpleForecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	High       Temperature `json:"high"`
	Low        Temperature `json:"low"`
	Conditions string      `json:"conditions"`
	Icon       string      `json:"icon"`
}

type Temperature struct {
	Celsius    string `json:"celsius"`
	Fahrenheit string `json:"fahrenheit"`
}

type CurrentObservation struct {
	LocalTZLong string `json:"local_tz_long"`
	StationID   string `json:"station_id"`
}

type HourlyRecord struct {
	FCTTime   FCTTime       `json:"FCTTIME"`
	Condition string        `json:"condition"`
	Icon      string        `json:"icon"`
	Pop       string        `json:"pop"`
	Temp      Measure       `json:"temp"`
	Wspd      Measure       `json:"wspd"`
	Wdir      WindDirection `json:"wdir"`
	Sky       string        `json:"sky"`
	UVI       string        `json:"uvi"`
}

type FCTTime struct {
	Hour  string `json:"hour"`
	Min   string `json:"min"`
	Epoch string `json:"epoch"`
}

func (f FCTTime) HourOfDay() (int, error) {
	return parseHour(f.Hour)
}

func (f FCTTime) EpochSeconds() (int64, error) {
	epoch, err := strconv.ParseInt(strings.TrimSpace(f.Epoch), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid epoch %q: %w", f.Epoch, err)
	}
	return epoch, nil
}

type Measure struct {
	English string `json:"english"`
	Metric  string `json:"metric"`
}

type WindDirection struct {
	Dir     string `json:"dir"`
	Degrees string `json:"degrees"`
}

func parseHour(raw string) (int, error) {
	hour, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q: %w", raw, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	return hour, nil
}
