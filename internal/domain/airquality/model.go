package airquality

import "time"

// Data source tags exposed on every snapshot so callers can tell a live
// reading from a synthesized one.
const (
	SourceOpenMeteo = "open-meteo"
	SourceSynthetic = "synthetic"
)

// SeriesLength is the fixed number of forecast points (3-hourly spacing).
const SeriesLength = 8

// Category describes an AQI severity bucket.
type Category struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Snapshot is one current air-quality reading.
type Snapshot struct {
	AQI       int       `json:"aqi"`
	Category  Category  `json:"category"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
	NO2       float64   `json:"no2"`
	SO2       float64   `json:"so2"`
	CO        float64   `json:"co"`
	O3        float64   `json:"o3"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// Series is an ordered AQI forecast, oldest first, always SeriesLength long.
type Series []int

// Observation is the raw current reading returned by a provider.
type Observation struct {
	AQI  float64
	PM25 float64
	PM10 float64
}

// CategoryFor maps a numeric AQI onto the six-level US AQI scale. The mapping
// is total over all integers.
func CategoryFor(aqi int) Category {
	switch {
	case aqi <= 50:
		return Category{Level: "Good", Color: "green", Description: "Air quality is satisfactory"}
	case aqi <= 100:
		return Category{Level: "Moderate", Color: "yellow", Description: "Air quality is acceptable"}
	case aqi <= 150:
		return Category{Level: "Unhealthy for Sensitive", Color: "orange", Description: "Members of sensitive groups may experience health effects"}
	case aqi <= 200:
		return Category{Level: "Unhealthy", Color: "red", Description: "Everyone may begin to experience health effects"}
	case aqi <= 300:
		return Category{Level: "Very Unhealthy", Color: "purple", Description: "Health warnings of emergency conditions"}
	default:
		return Category{Level: "Hazardous", Color: "maroon", Description: "Health alert: everyone may experience serious health effects"}
	}
}

// NormalizeSeries coerces an arbitrary-length forecast into exactly
// SeriesLength points, repeating the last known value to pad short input.
func NormalizeSeries(values []float64) Series {
	series := make(Series, 0, SeriesLength)
	for _, v := range values {
		if len(series) == SeriesLength {
			break
		}
		series = append(series, int(v+0.5))
	}
	last := 50
	if len(series) > 0 {
		last = series[len(series)-1]
	}
	for len(series) < SeriesLength {
		series = append(series, last)
	}
	return series
}
