package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/kujira"
)

// settings is the YAML file schema. Flags set on the command line override
// whatever the file provides.
type settings struct {
	Seed       uint64 `yaml:"seed"`
	WalkLength int    `yaml:"walk_length"`
	Sprite     string `yaml:"sprite"`
	ShowFPS    bool   `yaml:"show_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// loadSettings reads the settings file. Search order: --config path ->
// ./kujira.yaml -> built-in defaults.
func loadSettings(customPath string) (settings, error) {
	cfg := settings{Seed: 1}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile("kujira.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config kujira.yaml: %w", err)
		}
	}
	return cfg, nil
}

// buildWorld resolves settings plus flag overrides into a ready World.
func buildWorld(cmd *cobra.Command) (*kujira.World, settings, error) {
	cfg, err := loadSettings(flagConfig)
	if err != nil {
		return nil, cfg, err
	}
	if cmd.Flags().Changed("seed") || cmd.InheritedFlags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("walk") || cmd.InheritedFlags().Changed("walk") {
		cfg.WalkLength = flagWalk
	}

	var sprite *kujira.Buffer
	if cfg.Sprite != "" {
		sprite, err = kujira.LoadSpriteFile(cfg.Sprite)
		if err != nil {
			return nil, cfg, err
		}
	}

	w := kujira.NewWorld(kujira.WorldConfig{
		Seed:       cfg.Seed,
		WalkLength: cfg.WalkLength,
		Sprite:     sprite,
	})
	return w, cfg, nil
}
