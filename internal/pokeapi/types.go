package pokeapi

import "github.com/five82/pokedex/internal/roster"

// NamedResource is the {name, url} pair used throughout the API.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse mirrors /pokemon?limit=&offset=.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Pokemon mirrors the subset of /pokemon/{id} the viewer uses.
type Pokemon struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Height         int            `json:"height"`
	Weight         int            `json:"weight"`
	BaseExperience int            `json:"base_experience"`
	Sprites        Sprites        `json:"sprites"`
	Types          []TypeSlot     `json:"types"`
	Abilities      []AbilitySlot  `json:"abilities"`
	Stats          []StatResponse `json:"stats"`
}

// Sprites holds image references. FrontDefault may be null.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// TypeSlot is one entry of the types array.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of the abilities array.
type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// StatResponse is one entry of the stats array.
type StatResponse struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// Summaries converts the listing results into roster summaries, keeping order.
func (r ListResponse) Summaries() []roster.Summary {
	out := make([]roster.Summary, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, roster.Summary{Name: res.Name, URL: res.URL})
	}
	return out
}

// Entity maps the payload onto the roster model. Categories keep the order
// the API serves them in.
func (p Pokemon) Entity() roster.Entity {
	e := roster.Entity{
		ID:             p.ID,
		Name:           p.Name,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
	}
	if p.Sprites.FrontDefault != nil {
		e.ImageURL = *p.Sprites.FrontDefault
	}
	for _, t := range p.Types {
		e.Categories = append(e.Categories, t.Type.Name)
	}
	for _, a := range p.Abilities {
		e.Abilities = append(e.Abilities, a.Ability.Name)
	}
	for _, s := range p.Stats {
		e.Stats = append(e.Stats, roster.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return e
}
