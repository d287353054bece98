package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newatalk/internal/domain/entity"
)

func TestResolve_UnknownCityReturnsGeneral(t *testing.T) {
	r := Default()

	got := r.Resolve("unknownplace")
	if diff := cmp.Diff(defaultGeneralFeeds, got); diff != "" {
		t.Errorf("Resolve(unknownplace) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, defaultGeneralFeeds, r.Resolve(""))
}

func TestResolve_KnownCityPrependsCityFeeds(t *testing.T) {
	r := Default()

	got := r.Resolve("Mumbai")
	want := append(append([]string(nil), defaultCityFeeds["mumbai"]...), defaultGeneralFeeds...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(Mumbai) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_AliasesMatchCanonical(t *testing.T) {
	r := Default()

	assert.Equal(t, r.Resolve("bengaluru"), r.Resolve("bangalore"))
	assert.Equal(t, r.Resolve("chennai"), r.Resolve("Madras"))
	assert.Equal(t, r.Resolve("kolkata"), r.Resolve(" CALCUTTA "))
}

func TestResolve_DeduplicatesPreservingFirstOccurrence(t *testing.T) {
	shared := "https://example.com/national.rss"
	r := New(
		map[entity.CityKey][]string{
			"pune": {"https://example.com/pune.rss", shared, "https://example.com/pune.rss"},
		},
		[]string{"https://example.com/top.rss", shared},
		nil,
	)

	got := r.Resolve("pune")
	want := []string{"https://example.com/pune.rss", shared, "https://example.com/top.rss"}
	assert.Equal(t, want, got)
}

func TestNew_CopiesInput(t *testing.T) {
	general := []string{"https://example.com/a.rss"}
	r := New(nil, general, nil)
	general[0] = "https://evil.example.com/"

	assert.Equal(t, []string{"https://example.com/a.rss"}, r.General())
}

func TestRegistry_CitiesAndAliases(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"bengaluru", "chennai", "delhi", "hyderabad", "kochi", "kolkata", "mumbai"}, r.Cities())
	assert.Equal(t, "bengaluru", r.Aliases()["bangalore"])
	assert.Equal(t, 18, r.FeedCount())
}

func TestParse_Valid(t *testing.T) {
	data := []byte(`
cities:
  Pune:
    - https://example.com/pune.rss
general:
  - https://example.com/top.rss
aliases:
  poona: pune
`)

	r, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/pune.rss", "https://example.com/top.rss"}, r.Resolve("Poona"))
	assert.Equal(t, []string{"https://example.com/top.rss"}, r.Resolve("delhi"))
	// built-in aliases still normalize even when the city is not configured
	assert.Equal(t, entity.CityKey("bengaluru"), r.Normalize("bangalore"))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "cities: [unterminated"},
		{"no general feeds", "cities:\n  pune:\n    - https://example.com/pune.rss\n"},
		{"bad scheme", "general:\n  - ftp://example.com/top.rss\n"},
		{"empty city", "general:\n  - https://example.com/top.rss\ncities:\n  pune: []\n"},
		{"dangling alias", "general:\n  - https://example.com/top.rss\naliases:\n  poona: pune\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidRegistry)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/does-not-exist.yaml")
	assert.Error(t, err)
}
