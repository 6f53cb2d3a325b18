// Package recommend maps (assessment type, risk level) pairs to the fixed
// catalog of clinical guidance and intervention labels.
package recommend

import "github.com/carelink/carelink/internal/scoring"

// Advice is the recommendation output for one assessment: human-readable
// clinical guidance lines plus the shorter intervention labels that feed
// action-plan conversion.
type Advice struct {
	Clinical      []string `json:"clinical"`
	Interventions []string `json:"interventions"`
}

type catalogKey struct {
	Type  scoring.AssessmentType
	Level scoring.RiskLevel
}

// Catalog is the immutable recommendation table. It is built once and
// injected into the engine; entries are never mutated after construction.
type Catalog struct {
	entries map[catalogKey]Advice
}

// Engine answers recommendation lookups against an injected catalog.
type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Recommendations returns the catalog entry for the given type and level.
// Unknown combinations return empty lists, never an error; callers treat
// empty output as "no guidance available".
func (e *Engine) Recommendations(t scoring.AssessmentType, level scoring.RiskLevel) Advice {
	entry, ok := e.catalog.entries[catalogKey{Type: t, Level: level}]
	if !ok {
		return Advice{Clinical: []string{}, Interventions: []string{}}
	}
	// Copy so callers cannot mutate the catalog through the returned slices.
	out := Advice{
		Clinical:      make([]string, len(entry.Clinical)),
		Interventions: make([]string, len(entry.Interventions)),
	}
	copy(out.Clinical, entry.Clinical)
	copy(out.Interventions, entry.Interventions)
	return out
}
