package advisor

import (
	"github.com/aqisense/aqi-sense/internal/domain/advice"
	"github.com/aqisense/aqi-sense/internal/domain/airquality"
	"github.com/aqisense/aqi-sense/internal/domain/location"
)

// Request captures the payload accepted by the advisory endpoint. Coordinates
// are pointers so an absent field is distinguishable from zero (a valid
// latitude).
type Request struct {
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	LocationName string   `json:"locationName"`
	Persona      string   `json:"persona"`
}

// Result is the combined response consumed by the dashboard.
type Result struct {
	Location LocationPayload   `json:"location"`
	Persona  advice.Persona    `json:"persona"`
	Current  CurrentPayload    `json:"current"`
	Forecast airquality.Series `json:"forecast"`
	Advice   advice.Advice     `json:"advice"`
}

// LocationPayload flattens coordinates and display info.
type LocationPayload struct {
	Lat      float64          `json:"lat"`
	Lon      float64          `json:"lon"`
	Name     string           `json:"name"`
	FullName string           `json:"fullName"`
	Address  location.Address `json:"address"`
}

// CurrentPayload flattens the current snapshot the way the frontend expects.
type CurrentPayload struct {
	AQI      int                 `json:"aqi"`
	Category airquality.Category `json:"category"`
	PM25     float64             `json:"pm25"`
	PM10     float64             `json:"pm10"`
	Source   string              `json:"source"`
}
