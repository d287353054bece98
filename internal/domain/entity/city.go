package entity

import "strings"

// CityKey is a normalized lowercase token used to look up region-specific feeds.
// The empty key means "no city".
type CityKey string

// cityAliases maps historical or alternate city names to their canonical keys.
var cityAliases = map[string]CityKey{
	"bangalore": "bengaluru",
	"madras":    "chennai",
	"calcutta":  "kolkata",
}

// CityAliases returns a copy of the built-in alias table.
func CityAliases() map[string]CityKey {
	out := make(map[string]CityKey, len(cityAliases))
	for k, v := range cityAliases {
		out[k] = v
	}
	return out
}

// NormalizeCity trims and lowercases raw free-text input and resolves known aliases.
func NormalizeCity(raw string) CityKey {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if canonical, ok := cityAliases[s]; ok {
		return canonical
	}
	return CityKey(s)
}

// IsZero reports whether the key is empty.
func (k CityKey) IsZero() bool {
	return k == ""
}

// String returns the key as a plain string.
func (k CityKey) String() string {
	return string(k)
}
