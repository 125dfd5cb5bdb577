package bootstrap

import (
	"fmt"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

// PreflightChecker verifies the icon assets a run may need. Only the
// fallback icon is mandatory; a missing regular icon is reported and the
// affected conditions will fail at send time.
type PreflightChecker struct {
	assets  ports.AssetStore
	mapping entities.IconMapping
	logger  logger.Logger
}

func NewPreflightChecker(assets ports.AssetStore, mapping entities.IconMapping, log logger.Logger) *PreflightChecker {
	return &PreflightChecker{
		assets:  assets,
		mapping: mapping,
		logger:  logger.Component(log, "preflight"),
	}
}

// CheckAll returns the names of missing regular icons, or an error when the
// fallback icon itself is missing.
func (p *PreflightChecker) CheckAll() ([]string, error) {
	p.logger.Info("Checking icon assets")

	fallback := entities.FallbackIconFile()
	if !p.assets.Exists(fallback) {
		return nil, fmt.Errorf("fallback icon %s is missing", fallback)
	}

	var missing []string
	for _, name := range p.mapping.Files() {
		if !p.assets.Exists(name) {
			p.logger.Warnf("Icon %s is missing", name)
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		p.logger.Info("All icon assets present")
	} else {
		p.logger.Warnf("%d of %d icon assets missing", len(missing), len(p.mapping.Files()))
	}
	return missing, nil
}
