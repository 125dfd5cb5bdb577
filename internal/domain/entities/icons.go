package entities

import "sort"

const (
	IconExtension    = ".png"
	FallbackIconStem = "notfound"
)

var iconAliases = map[string][]string{
	"clear-day":           {"clear", "sunny"},
	"clear-night":         {"nt_clear", "nt_sunny"},
	"rain":                {"rain", "chancerain", "nt_rain", "nt_chancerain"},
	"snow-day":            {"snow", "chancesnow", "flurries", "chanceflurries"},
	"snow-night":          {"nt_snow", "nt_chancesnow", "nt_flurries", "nt_chanceflurries"},
	"partly-cloudy-day":   {"mostlysunny", "partlysunny", "partlycloudy"},
	"partly-cloudy-night": {"nt_mostlysunny", "nt_partlysunny", "nt_partlycloudy"},
	"cloudy":              {"cloudy", "mostlycloudy"},
	"cloudy-night":        {"nt_cloudy", "nt_mostlycloudy"},
	"sleet":               {"sleet", "chancesleet", "nt_sleet", "nt_chancesleet"},
	"thunderstorm":        {"tstorms", "chancetstorms", "nt_tstorms", "nt_chancetstorms"},
	"fog":                 {"fog", "haze", "nt_fog", "nt_haze"},
}

var defaultIcons = newIconMapping(iconAliases)

// IconMapping maps provider condition codes to local icon stems.
// It is read-only once built.
type IconMapping struct {
	byCode map[string]string
	stems  []string
}

func DefaultIconMapping() IconMapping {
	return defaultIcons
}

func newIconMapping(aliases map[string][]string) IconMapping {
	m := IconMapping{byCode: make(map[string]string)}
	for stem, codes := range aliases {
		m.stems = append(m.stems, stem)
		for _, code := range codes {
			m.byCode[code] = stem
		}
	}
	sort.Strings(m.stems)
	return m
}

func (m IconMapping) Lookup(code string) (string, bool) {
	stem, ok := m.byCode[code]
	return stem, ok
}

// Codes returns every known condition code, sorted.
func (m IconMapping) Codes() []string {
	codes := make([]string, 0, len(m.byCode))
	for code := range m.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Files returns the asset file names the mapping can resolve to,
// fallback excluded.
func (m IconMapping) Files() []string {
	files := make([]string, len(m.stems))
	for i, stem := range m.stems {
		files[i] = stem + IconExtension
	}
	return files
}

func FallbackIconFile() string {
	return FallbackIconStem + IconExtension
}
