// Package config holds application-level configuration: the genre menu the
// chat front-end renders and the security settings for the gateway API.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Genre is one entry of the genre menu: a display label and the catalog
// filter key sent upstream.
type Genre struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
}

// GenreMenu is the menu shown on "choose genre". Lookup is by key.
type GenreMenu struct {
	genres []Genre
	byKey  map[string]Genre
}

// defaultGenres mirrors the catalog's main categories. A deployment can
// replace the menu wholesale via GENRES_FILE.
var defaultGenres = []Genre{
	{Label: "Drama", Key: "drama"},
	{Label: "Comedy", Key: "comedy"},
	{Label: "Action", Key: "action"},
	{Label: "Sci-Fi", Key: "sci-fi"},
	{Label: "Thriller", Key: "thriller"},
	{Label: "Detective", Key: "detective"},
	{Label: "Adventure", Key: "adventure"},
	{Label: "Horror", Key: "horror"},
	{Label: "Melodrama", Key: "melodrama"},
	{Label: "History", Key: "history"},
	{Label: "War", Key: "war"},
	{Label: "Family", Key: "family"},
	{Label: "Fantasy", Key: "fantasy"},
	{Label: "Crime", Key: "crime"},
	{Label: "Biography", Key: "biography"},
	{Label: "Documentary", Key: "documentary"},
	{Label: "Musical", Key: "musical"},
	{Label: "Sport", Key: "sport"},
	{Label: "Animation", Key: "animation"},
	{Label: "Western", Key: "western"},
	{Label: "Noir", Key: "noir"},
}

// LoadGenres loads the genre menu. When GENRES_FILE is set it must point at
// a YAML file with a top-level "genres" list; otherwise the built-in menu is
// used. A configured-but-broken file is an error rather than a silent
// fallback, so a bad deployment is caught at startup.
func LoadGenres() (*GenreMenu, error) {
	path := os.Getenv("GENRES_FILE")
	if path == "" {
		return newGenreMenu(defaultGenres)
	}

	// #nosec G304 -- path comes from deployment configuration, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genres file: %w", err)
	}

	var doc struct {
		Genres []Genre `yaml:"genres"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse genres file: %w", err)
	}
	if len(doc.Genres) == 0 {
		return nil, fmt.Errorf("genres file %s defines no genres", path)
	}

	return newGenreMenu(doc.Genres)
}

func newGenreMenu(genres []Genre) (*GenreMenu, error) {
	menu := &GenreMenu{
		genres: make([]Genre, 0, len(genres)),
		byKey:  make(map[string]Genre, len(genres)),
	}
	for _, genre := range genres {
		key := strings.ToLower(strings.TrimSpace(genre.Key))
		if key == "" {
			return nil, fmt.Errorf("genre %q has an empty key", genre.Label)
		}
		if genre.Label == "" {
			return nil, fmt.Errorf("genre %q has an empty label", key)
		}
		if _, exists := menu.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate genre key %q", key)
		}
		normalized := Genre{Label: genre.Label, Key: key}
		menu.genres = append(menu.genres, normalized)
		menu.byKey[key] = normalized
	}
	return menu, nil
}

// Genres returns the menu entries in display order.
func (m *GenreMenu) Genres() []Genre {
	out := make([]Genre, len(m.genres))
	copy(out, m.genres)
	return out
}

// Contains reports whether key is a known genre. Matching is
// case-insensitive.
func (m *GenreMenu) Contains(key string) bool {
	_, ok := m.byKey[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// Len returns the number of menu entries.
func (m *GenreMenu) Len() int {
	return len(m.genres)
}
