package advice

import (
	"context"
	"time"

	"github.com/aqisense/aqi-sense/internal/domain/airquality"
	"github.com/aqisense/aqi-sense/internal/domain/location"
)

// Persona selects the audience the health guidance is phrased for.
type Persona string

// The closed persona set. Anything else is rejected at the API boundary.
const (
	PersonaGeneral   Persona = "general"
	PersonaAthlete   Persona = "athlete"
	PersonaChildren  Persona = "children"
	PersonaSensitive Persona = "sensitive"
)

// Valid reports whether p is one of the known personas.
func (p Persona) Valid() bool {
	switch p {
	case PersonaGeneral, PersonaAthlete, PersonaChildren, PersonaSensitive:
		return true
	}
	return false
}

// Advice is the structured health guidance rendered by the dashboard.
type Advice struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
	Precaution      string   `json:"precaution"`
}

// Input bundles the context the prompt is built from.
type Input struct {
	Snapshot   airquality.Snapshot
	Forecast   airquality.Series
	Coordinate location.Coordinate
	Info       location.Info
	Persona    Persona
}

// Store caches generated advice keyed by (AQI, persona).
type Store interface {
	Get(ctx context.Context, key string) (Advice, bool, error)
	Save(ctx context.Context, key string, value Advice, ttl time.Duration) error
}

// Config wires runtime settings for the advice domain.
type Config struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
	CacheTTL        time.Duration
}
