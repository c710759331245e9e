// Package tuning holds every knob of the simulation in one yaml-loadable
// struct. Defaults live in code; a config file only overrides what it sets.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

type Tuning struct {
	Server  Server            `yaml:"server"`
	Sim     Sim               `yaml:"sim"`
	World   World             `yaml:"world"`
	Tide    world.TideBands   `yaml:"tide"`
	Recipes []survival.Recipe `yaml:"recipes"`
}

type Server struct {
	APIAddr    string `yaml:"api_addr"`
	StreamAddr string `yaml:"stream_addr"`
}

type Sim struct {
	TickRateHz      int     `yaml:"tick_rate_hz"`
	AutosaveSeconds int     `yaml:"autosave_seconds"`
	Seed            int64   `yaml:"seed"`
	MsPerGameMinute int64   `yaml:"ms_per_game_minute"`
	MinutesPerDay   int64   `yaml:"minutes_per_day"`
	BoundaryMinutes int64   `yaml:"boundary_minutes"`
	RestTimeScale   int64   `yaml:"rest_time_scale"`
	RegrowMinutes   int64   `yaml:"regrow_minutes"`
	MaxDarkness     float64 `yaml:"max_darkness"`
}

type World struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TreeDensity float64 `yaml:"tree_density"`
}

func Default() Tuning {
	return Tuning{
		Server: Server{
			APIAddr:    ":8080",
			StreamAddr: ":8081",
		},
		Sim: Sim{
			TickRateHz:      30,
			AutosaveSeconds: 30,
			Seed:            1,
			MsPerGameMinute: 1000,
			MinutesPerDay:   1440,
			BoundaryMinutes: 20,
			RestTimeScale:   20,
			RegrowMinutes:   1440,
			MaxDarkness:     0.85,
		},
		World: World{
			Width:       64,
			Height:      64,
			TreeDensity: 0.10,
		},
		Tide:    world.DefaultTideBands(),
		Recipes: survival.DefaultRecipes(),
	}
}

// Load reads overrides from a yaml file on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning yaml: %w", err)
	}
	return t, nil
}
