package roster

import (
	"errors"
	"strings"
)

// Summary is the lightweight handle returned by the listing endpoint.
type Summary struct {
	Name string
	URL  string
}

// Stat is a single base stat of an entity.
type Stat struct {
	Name string
	Base int
}

// Entity is a fully resolved catalog record.
type Entity struct {
	ID             int
	Name           string
	ImageURL       string
	Categories     []string
	Height         int
	Weight         int
	BaseExperience int
	Abilities      []string
	Stats          []Stat
}

// PrimaryCategory returns the category that drives the entity's theme color.
func (e Entity) PrimaryCategory() string {
	if len(e.Categories) == 0 {
		return ""
	}
	return e.Categories[0]
}

// HasImage reports whether the entity carries a display image reference.
func (e Entity) HasImage() bool {
	return strings.TrimSpace(e.ImageURL) != ""
}

// Validate checks the invariants every roster entry must satisfy.
func (e Entity) Validate() error {
	if e.ID <= 0 {
		return errors.New("entity id must be positive")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("entity name is empty")
	}
	if len(e.Categories) == 0 {
		return errors.New("entity has no categories")
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (e Entity) Clone() Entity {
	out := e
	out.Categories = append([]string(nil), e.Categories...)
	out.Abilities = append([]string(nil), e.Abilities...)
	out.Stats = append([]Stat(nil), e.Stats...)
	return out
}

// CloneAll deep-copies a roster, keeping nil as nil.
func CloneAll(items []Entity) []Entity {
	if items == nil {
		return nil
	}
	out := make([]Entity, len(items))
	for i, e := range items {
		out[i] = e.Clone()
	}
	return out
}
