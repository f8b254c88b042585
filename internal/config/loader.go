package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source struct {
	Kind string // "custom", "user", "local", "embedded" or "builtin"
	Path string // File path for file-backed sources
}

// String returns a short human-readable description.
func (s Source) String() string {
	if s.Path == "" {
		return s.Kind
	}
	return s.Kind + " (" + s.Path + ")"
}

const localConfigPath = "configs/dino.yaml"

// LoadDino loads Dino Runner configuration.
// Search order: customPath -> ~/.dino/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its
// default value. The result is validated before it is returned.
func LoadDino(customPath string) (DinoConfig, Source, error) {
	// Try custom path first; failures here are fatal
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, Source{}, err
		}
		src := Source{Kind: "custom", Path: customPath}
		if err := Validate(cfg); err != nil {
			return cfg, src, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, src, nil
	}

	candidates := []Source{{Kind: "local", Path: localConfigPath}}
	if userCfgPath := userConfigPath("dino.yaml"); userCfgPath != "" {
		candidates = append([]Source{{Kind: "user", Path: userCfgPath}}, candidates...)
	}

	for _, src := range candidates {
		cfg, err := loadFile(src.Path)
		if err != nil {
			continue // Missing or unreadable files fall through to the next location
		}
		if err := Validate(cfg); err != nil {
			return cfg, src, fmt.Errorf("config %s: %w", src.Path, err)
		}
		return cfg, src, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), Source{Kind: "builtin"}, nil // Fallback to hardcoded if embed fails
	}
	return cfg, Source{Kind: "embedded"}, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Dump renders the configuration as YAML.
func Dump(cfg DinoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (DinoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DinoConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", filename)
}
