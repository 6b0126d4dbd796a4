package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the game tunables. Zero-value fields are not meaningful; start
// from Default.
type Config struct {
	// Base stats before any upgrade is owned.
	BasePerClick   uint64  `yaml:"base_per_click" env:"EGGS_BASE_PER_CLICK"`
	BaseCritChance float64 `yaml:"base_crit_chance" env:"EGGS_BASE_CRIT_CHANCE"`
	BaseCritMult   float64 `yaml:"base_crit_mult" env:"EGGS_BASE_CRIT_MULT"`

	// Upgrade pricing. Each purchase multiplies the next price by
	// CostGrowthPercent/100.
	ChickenBaseCost   uint64 `yaml:"chicken_base_cost" env:"EGGS_CHICKEN_BASE_COST"`
	HenHouseBaseCost  uint64 `yaml:"hen_house_base_cost" env:"EGGS_HEN_HOUSE_BASE_COST"`
	CostGrowthPercent uint64 `yaml:"cost_growth_percent" env:"EGGS_COST_GROWTH_PERCENT"`

	// Click target and floating label presentation.
	TargetWidth        float64       `yaml:"target_width" env:"EGGS_TARGET_WIDTH"`
	TargetHeight       float64       `yaml:"target_height" env:"EGGS_TARGET_HEIGHT"`
	ClickLabelDuration time.Duration `yaml:"click_label_duration" env:"EGGS_CLICK_LABEL_DURATION"`
	ClickLabelSpeed    float64       `yaml:"click_label_speed" env:"EGGS_CLICK_LABEL_SPEED"`
	CritSizeMultiplier float64       `yaml:"crit_size_multiplier" env:"EGGS_CRIT_SIZE_MULTIPLIER"`
	WindowWidth        int           `yaml:"window_width" env:"EGGS_WINDOW_WIDTH"`
	WindowHeight       int           `yaml:"window_height" env:"EGGS_WINDOW_HEIGHT"`

	// GroupDigits shows the balance with thousands separators instead of
	// the plain decimal string.
	GroupDigits bool `yaml:"group_digits" env:"EGGS_GROUP_DIGITS"`

	LogLevel string `yaml:"log_level" env:"EGGS_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		BasePerClick:       1,
		BaseCritChance:     0,
		BaseCritMult:       1,
		ChickenBaseCost:    10,
		HenHouseBaseCost:   100,
		CostGrowthPercent:  115,
		TargetWidth:        120,
		TargetHeight:       160,
		ClickLabelDuration: time.Second,
		ClickLabelSpeed:    3,
		CritSizeMultiplier: 1.5,
		WindowWidth:        1280,
		WindowHeight:       720,
		LogLevel:           "info",
	}
}

// Load reads a YAML config from path on top of Default, then applies EGGS_*
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.BasePerClick == 0 {
		errs = append(errs, errors.New("base_per_click must be positive"))
	}
	if c.ChickenBaseCost == 0 || c.HenHouseBaseCost == 0 {
		errs = append(errs, errors.New("upgrade base costs must be positive"))
	}
	if c.BaseCritChance < 0 || c.BaseCritChance > 1 {
		errs = append(errs, fmt.Errorf("base_crit_chance %v outside [0,1]", c.BaseCritChance))
	}
	if c.BaseCritMult < 1 {
		errs = append(errs, fmt.Errorf("base_crit_mult %v below 1", c.BaseCritMult))
	}
	if c.CostGrowthPercent < 100 {
		errs = append(errs, fmt.Errorf("cost_growth_percent %d below 100", c.CostGrowthPercent))
	}
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		errs = append(errs, errors.New("target size must be positive"))
	}
	if c.ClickLabelDuration <= 0 {
		errs = append(errs, errors.New("click_label_duration must be positive"))
	}
	if c.ClickLabelSpeed < 0 {
		errs = append(errs, fmt.Errorf("click_label_speed %v is negative", c.ClickLabelSpeed))
	}
	if c.CritSizeMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("crit_size_multiplier %v must be positive", c.CritSizeMultiplier))
	}
	return errors.Join(errs...)
}
