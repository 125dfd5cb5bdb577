package application

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

const dateLayout = "2 January"

// French comes first so it is the matcher's default.
var dateLocales = []struct {
	tag    language.Tag
	locale monday.Locale
}{
	{language.French, monday.LocaleFrFR},
	{language.English, monday.LocaleEnUS},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// DateFormatter renders the "D MMMM" label of the email subject.
type DateFormatter struct {
	locale monday.Locale
}

// NewDateFormatter picks the month-name locale closest to the provider
// language code. Anything that matches neither French nor English, or does
// not parse at all, gets French.
func NewDateFormatter(lang string) *DateFormatter {
	tag, err := language.Parse(lang)
	if err != nil {
		return &DateFormatter{locale: monday.LocaleFrFR}
	}
	_, index, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		index = 0
	}
	return &DateFormatter{locale: dateLocales[index].locale}
}

func (f *DateFormatter) Locale() monday.Locale {
	return f.locale
}

// Format renders t in its own zone, e.g. "6 juillet"; the caller picks the zone.
func (f *DateFormatter) Format(t time.Time) string {
	return monday.Format(t, dateLayout, f.locale)
}
