package application

import (
	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
)

// 2017-07-06 06:00 Europe/Paris
const sunriseEpoch = 1499313600

func hourly(hour, epoch, icon, condition, temp string) entities.HourlyRecord {
	return entities.HourlyRecord{
		FCTTime:   entities.FCTTime{Hour: hour, Min: "00", Epoch: epoch},
		Condition: condition,
		Icon:      icon,
		Pop:       "20",
		Temp:      entities.Measure{English: "64", Metric: temp},
		Wspd:      entities.Measure{English: "9", Metric: "15"},
		Wdir:      entities.WindDirection{Dir: "NO", Degrees: "315"},
		Sky:       "45",
		UVI:       "1",
	}
}

func sampleForecast() *entities.RawForecast {
	return &entities.RawForecast{
		SunPhase: entities.SunPhase{
			Sunrise: entities.ClockTime{Hour: "6", Minute: "12"},
			Sunset:  entities.ClockTime{Hour: "21", Minute: "56"},
		},
		Forecast: entities.Forecast{SimpleForecast: entities.SimpleForecast{
			ForecastDay: []entities.ForecastDay{{
				High: entities.Temperature{Celsius: "27", Fahrenheit: "81"},
				Low:  entities.Temperature{Celsius: "14", Fahrenheit: "57"},
			}},
		}},
		HourlyForecast: []entities.HourlyRecord{
			hourly("5", "1499310000", "clear", "Dégagé", "16"),
			hourly("6", "1499313600", "partlysunny", "Partiellement ensoleillé", "18"),
			hourly("7", "1499317200", "cloudy", "Nuageux", "20"),
		},
		CurrentObservation: entities.CurrentObservation{LocalTZLong: "Europe/Paris"},
	}
}
