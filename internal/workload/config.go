package workload

import "fmt"

// Config describes a generated workload.
type Config struct {
	Ops         int
	Seed        int64
	KeySpace    int  // distinct keys to draw from
	StringKeys  bool // fake words instead of integers
	InsertRatio float64
	SearchRatio float64
	DeleteRatio float64 // whatever the three ratios leave is split between min and max
}

const (
	defaultOps         = 10000
	defaultKeySpace    = 1000
	defaultInsertRatio = 0.5
	defaultSearchRatio = 0.3
	defaultDeleteRatio = 0.2
)

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.Ops < 0 {
		return Config{}, fmt.Errorf("%w: Ops must be >= 0", ErrBadConfig)
	}
	if cfg.Ops == 0 {
		cfg.Ops = defaultOps
	}
	if cfg.KeySpace < 0 {
		return Config{}, fmt.Errorf("%w: KeySpace must be >= 0", ErrBadConfig)
	}
	if cfg.KeySpace == 0 {
		cfg.KeySpace = defaultKeySpace
	}
	if cfg.InsertRatio < 0 || cfg.SearchRatio < 0 || cfg.DeleteRatio < 0 {
		return Config{}, fmt.Errorf("%w: ratios must be >= 0", ErrBadConfig)
	}
	if cfg.InsertRatio == 0 && cfg.SearchRatio == 0 && cfg.DeleteRatio == 0 {
		cfg.InsertRatio = defaultInsertRatio
		cfg.SearchRatio = defaultSearchRatio
		cfg.DeleteRatio = defaultDeleteRatio
	}
	if sum := cfg.InsertRatio + cfg.SearchRatio + cfg.DeleteRatio; sum > 1.0+1e-9 {
		return Config{}, fmt.Errorf("%w: ratios sum to %.3f, must be <= 1", ErrBadConfig, sum)
	}
	return cfg, nil
}
