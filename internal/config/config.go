// Package config loads game tuning from YAML files. Every file is optional:
// absent files fall back to the built-in defaults, and present files only
// override the keys they name.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/ship-breakers/internal/game"
)

// File names looked up inside the config directory.
const (
	constantsFile  = "constants.yaml"
	traitsFile     = "traits.yaml"
	thresholdsFile = "settings.yaml"
)

// Bundle is everything the engine needs to start, fully validated.
type Bundle struct {
	Constants  game.Constants
	Traits     game.TraitTable
	Thresholds game.CrewThresholds
}

// Defaults returns the built-in tuning without touching the filesystem.
func Defaults() Bundle {
	return Bundle{
		Constants:  game.DefaultConstants(),
		Traits:     game.DefaultTraits(),
		Thresholds: game.DefaultThresholds(),
	}
}

// Load reads overrides from dir on top of the defaults. A missing directory
// or missing file is not an error; a malformed or invalid file is.
func Load(dir string) (Bundle, error) {
	bundle := Defaults()
	if dir == "" {
		return bundle, nil
	}

	if err := loadYAML(filepath.Join(dir, constantsFile), &bundle.Constants); err != nil {
		return Bundle{}, err
	}
	if err := loadYAML(filepath.Join(dir, thresholdsFile), &bundle.Thresholds); err != nil {
		return Bundle{}, err
	}

	var traitOverrides map[game.TraitID]game.Trait
	if err := loadYAML(filepath.Join(dir, traitsFile), &traitOverrides); err != nil {
		return Bundle{}, err
	}
	for id, trait := range traitOverrides {
		bundle.Traits[id] = trait
	}

	if err := bundle.Constants.Validate(); err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", constantsFile, err)
	}
	if err := bundle.Traits.Validate(); err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", traitsFile, err)
	}
	return bundle, nil
}

// loadYAML unmarshals path into out when the file exists. Unknown keys are
// rejected so a typoed override fails loudly instead of silently keeping the
// default.
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
