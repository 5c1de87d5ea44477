// Package config loads engine-wide renderer configuration: the
// "plain <img> vs. captioned figure span" switch spec.md's Open
// Questions section calls for, plus default LaTeX/HTML styling knobs.
//
// Adapted from the teacher's walk-up-the-directory-tree YAML config
// loader, reading through an afero filesystem so tests can substitute
// an in-memory one instead of the real OS.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file the walk-up search looks for, mirroring
// the teacher's "spectr.yaml" convention for this engine's own config.
const ConfigFileName = "xmd.yaml"

// Config holds renderer defaults. The zero value is valid and matches
// the documented canonical behavior (captioned figure span, article
// document class).
type Config struct {
	// RawImageLinks opts into rendering a plain markdown image as a
	// bare <img> tag instead of the canonical captioned figure span,
	// per spec.md §9's first Open Question.
	RawImageLinks bool `yaml:"rawImageLinks"`

	// LatexDocumentClass is the \documentclass argument the LaTeX
	// writer emits. Defaults to "article".
	LatexDocumentClass string `yaml:"latexDocumentClass"`

	// HTMLClassPrefix is read from xmd.yaml. The HTML renderer does not
	// use it: the CSS class names it emits carry no prefix.
	HTMLClassPrefix string `yaml:"htmlClassPrefix"`

	// ProjectRoot is the directory xmd.yaml was found in, or the
	// starting directory if none was found.
	ProjectRoot string `yaml:"-"`
}

// Default returns the zero-configuration behavior.
func Default() Config {
	return Config{LatexDocumentClass: "article"}
}

// Load searches for xmd.yaml starting from the current working
// directory, walking up the directory tree.
func Load() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(afero.NewOsFs(), cwd)
}

// LoadFromPath searches for xmd.yaml starting from startPath on fs,
// walking up the directory tree. If not found, returns Default() with
// ProjectRoot set to the absolute startPath.
func LoadFromPath(fs afero.Fs, startPath string) (Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if exists, _ := afero.Exists(fs, configPath); exists {
			cfg, err := parseConfigFile(fs, configPath)
			if err != nil {
				return Config{}, err
			}
			cfg.ProjectRoot = currentPath

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	cfg := Default()
	cfg.ProjectRoot = absPath

	return cfg, nil
}

// LoadError is returned when an xmd.yaml file exists but cannot be
// parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config: failed to parse %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func parseConfigFile(fs afero.Fs, configPath string) (Config, error) {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return Config{}, &LoadError{Path: configPath, Err: fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)}
		}

		return Config{}, &LoadError{Path: configPath, Err: err}
	}

	if cfg.LatexDocumentClass == "" {
		cfg.LatexDocumentClass = "article"
	}

	return cfg, nil
}
