package menu

import (
	_ "embed"
	"fmt"
	"os"

	"pizzeria/internal/core/domain/model/pizza"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// LoadFile loads and parses a YAML menu from the given path. An empty path
// selects the built-in menu.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return Parse(defaultMenu)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse menu YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
	if f.Defaults.BasePrice == 0 {
		f.Defaults.BasePrice = pizza.DefaultBasePrice
	}

	for i := range f.Pizzas {
		p := &f.Pizzas[i]
		if p.Crust == "" {
			p.Crust = f.Defaults.Crust
		}
		if p.Sauce == "" {
			p.Sauce = f.Defaults.Sauce
		}
		if p.BasePrice == 0 {
			p.BasePrice = f.Defaults.BasePrice
		}
	}
}
