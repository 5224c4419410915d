package app

import (
	"log/slog"

	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/utils"
)

const (
	platformMinWidth    = 100.0
	platformWidthSpread = 150.0
	platformHeight      = 20.0
	platformMinRise     = 80.0
	platformRiseSpread  = 400.0
	platformGapX        = 50.0
	platformGapY        = 40.0
	platformAttempts    = 1000
)

// GeneratePlatforms строит землю и до cfg.Platforms парящих платформ.
// Нулевая платформа — земля во всю ширину мира. Парящие не подходят друг
// к другу ближе platformGapX по горизонтали и platformGapY по вертикали.
func GeneratePlatforms(cfg config.WorldConfig, rng *utils.PRNGService) []entity.Platform {
	platforms := make([]entity.Platform, 0, cfg.Platforms+1)
	platforms = append(platforms, entity.Platform{
		X: -cfg.Width,
		Y: cfg.GroundY,
		W: cfg.Width * 2,
		H: cfg.Height,
	})

	attempts := 0
	for ; len(platforms) <= cfg.Platforms && attempts < platformAttempts; attempts++ {
		w := rng.Float64()*platformWidthSpread + platformMinWidth
		p := entity.Platform{
			X: rng.Spread(cfg.Width - w),
			Y: cfg.GroundY - (rng.Float64()*platformRiseSpread + platformMinRise),
			W: w,
			H: platformHeight,
		}
		if !crowded(p, platforms) {
			platforms = append(platforms, p)
		}
	}

	if len(platforms) <= cfg.Platforms {
		slog.Warn("platform generation gave up", "placed", len(platforms)-1, "wanted", cfg.Platforms, "attempts", attempts)
	}
	return platforms
}

func crowded(p entity.Platform, others []entity.Platform) bool {
	for _, o := range others {
		if p.X < o.X+o.W+platformGapX &&
			p.X+p.W > o.X-platformGapX &&
			p.Y < o.Y+o.H+platformGapY &&
			p.Y+p.H > o.Y-platformGapY {
			return true
		}
	}
	return false
}
