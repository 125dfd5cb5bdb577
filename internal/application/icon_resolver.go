package application

import (
	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

// IconResolver turns a provider condition code into an icon file name.
// Unknown codes resolve to the fallback icon and are logged; they never
// fail a run.
type IconResolver struct {
	mapping entities.IconMapping
	logger  logger.Logger
}

func NewIconResolver(mapping entities.IconMapping, log logger.Logger) *IconResolver {
	return &IconResolver{
		mapping: mapping,
		logger:  logger.Component(log, "icon_resolver"),
	}
}

func (r *IconResolver) Resolve(code string) string {
	stem, ok := r.mapping.Lookup(code)
	if !ok {
		r.logger.WithField("icon", code).Warnf("Filename not found. Unknown weather condition: '%s'", code)
		return entities.FallbackIconFile()
	}
	return stem + entities.IconExtension
}
