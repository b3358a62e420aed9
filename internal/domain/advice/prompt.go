package advice

import (
	"fmt"

	"github.com/aqisense/aqi-sense/internal/domain/airquality"
	"github.com/aqisense/aqi-sense/internal/domain/location"
)

var personaContexts = map[Persona]string{
	PersonaGeneral:   "Provide balanced advice for general adult population focusing on daily activities and overall wellbeing.",
	PersonaAthlete:   "Focus on exercise recommendations, breathing capacity, and outdoor training safety. Consider workout timing and intensity adjustments.",
	PersonaChildren:  "Provide child-specific guidance for parents. Focus on outdoor play safety, immune system protection, and age-appropriate precautions.",
	PersonaSensitive: "Focus on respiratory protection, medication reminders, and extra precautions for sensitive individuals like asthma or elderly.",
}

// personaContext returns the instruction block for a persona. An unknown
// persona falls back to the general block; upstream validation should make
// that unreachable.
func personaContext(persona Persona) string {
	if ctx, ok := personaContexts[persona]; ok {
		return ctx
	}
	return personaContexts[PersonaGeneral]
}

// trendDescriptor summarizes where the forecast is heading based solely on
// the first and last point.
func trendDescriptor(forecast airquality.Series) string {
	if len(forecast) < 3 {
		return "relatively stable"
	}
	change := forecast[len(forecast)-1] - forecast[0]
	switch {
	case change > 20:
		return "significantly worsening"
	case change > 10:
		return "gradually worsening"
	case change < -20:
		return "significantly improving"
	case change < -10:
		return "gradually improving"
	default:
		return "stable or slightly fluctuating"
	}
}

func locationContext(coord location.Coordinate) string {
	if coord == (location.Coordinate{}) {
		return "general area"
	}
	switch {
	case coord.Lat > 28 && coord.Lat < 30 && coord.Lon > 76 && coord.Lon < 78:
		return "Delhi metropolitan area"
	case coord.Lat > 16 && coord.Lat < 17 && coord.Lon > 80 && coord.Lon < 81:
		return "Andhra Pradesh region"
	case coord.Lat > 12 && coord.Lat < 13 && coord.Lon > 77 && coord.Lon < 78:
		return "Bangalore urban area"
	default:
		return "your local area"
	}
}

func buildPrompt(in Input) string {
	return fmt.Sprintf(`Analyze this air quality for a user.
DATA:
- Current AQI: %d (%s)
- PM2.5: %.1f μg/m³
- Trend: %s
- Location: %s
USER PROFILE: %s (%s)
RESPONSE FORMAT:
Respond with ONLY a single, minified JSON object. Do not use markdown.
The structure must be:
{
  "title": "A brief 1-2 sentence situation analysis.",
  "recommendations": [
    "Actionable tip 1",
    "Actionable tip 2",
    "Actionable tip 3"
  ],
  "precaution": "An immediate precaution, or empty string if none."
}`,
		in.Snapshot.AQI,
		in.Snapshot.Category.Level,
		in.Snapshot.PM25,
		trendDescriptor(in.Forecast),
		locationContext(in.Coordinate),
		in.Persona,
		personaContext(in.Persona),
	)
}
