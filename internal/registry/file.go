package registry

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newatalk/internal/domain/entity"
)

// ErrInvalidRegistry indicates that a registry file failed validation.
var ErrInvalidRegistry = errors.New("invalid feed registry")

// fileFormat is the YAML layout of a registry override file:
//
//	cities:
//	  delhi:
//	    - https://www.thehindu.com/news/cities/Delhi/feeder/default.rss
//	general:
//	  - https://feeds.feedburner.com/ndtvnews-top-stories
//	aliases:
//	  bombay: mumbai
type fileFormat struct {
	Cities  map[string][]string `yaml:"cities"`
	General []string            `yaml:"general"`
	Aliases map[string]string   `yaml:"aliases"`
}

// LoadFile reads a YAML registry file and returns the resulting Registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML registry data and validates it.
func Parse(data []byte) (*Registry, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRegistry, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	cities := make(map[entity.CityKey][]string, len(f.Cities))
	for name, feeds := range f.Cities {
		cities[entity.CityKey(name)] = feeds
	}
	aliases := make(map[string]entity.CityKey, len(f.Aliases))
	for alias, name := range f.Aliases {
		aliases[alias] = entity.CityKey(name)
	}
	return New(cities, f.General, aliases), nil
}

func (f fileFormat) validate() error {
	if len(f.General) == 0 {
		return fmt.Errorf("%w: general feed list must not be empty", ErrInvalidRegistry)
	}
	for _, u := range f.General {
		if err := entity.ValidateURL(u); err != nil {
			return fmt.Errorf("%w: general feed %q: %v", ErrInvalidRegistry, u, err)
		}
	}
	for name, feeds := range f.Cities {
		if entity.NormalizeCity(name).IsZero() {
			return fmt.Errorf("%w: city name must not be blank", ErrInvalidRegistry)
		}
		if len(feeds) == 0 {
			return fmt.Errorf("%w: city %q has no feeds", ErrInvalidRegistry, name)
		}
		for _, u := range feeds {
			if err := entity.ValidateURL(u); err != nil {
				return fmt.Errorf("%w: city %q feed %q: %v", ErrInvalidRegistry, name, u, err)
			}
		}
	}
	known := make(map[entity.CityKey]struct{}, len(f.Cities))
	for name := range f.Cities {
		known[entity.NormalizeCity(name)] = struct{}{}
	}
	for alias, name := range f.Aliases {
		if _, ok := known[entity.NormalizeCity(name)]; !ok {
			return fmt.Errorf("%w: alias %q points to unknown city %q", ErrInvalidRegistry, alias, name)
		}
	}
	return nil
}
