package location

// Coordinate is a validated latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Address carries the structured fields returned by the geocoder.
type Address struct {
	City         string `json:"city,omitempty"`
	Town         string `json:"town,omitempty"`
	Village      string `json:"village,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	County       string `json:"county,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
}

// Place is a single geocoder result.
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
	Type        string
	Importance  float64
	Address     Address
}

// Info is the display-oriented view of a resolved location.
type Info struct {
	Name     string  `json:"name"`
	FullName string  `json:"fullName"`
	Address  Address `json:"address"`
}

// Resolved couples coordinates with their display info.
type Resolved struct {
	Coordinate Coordinate
	Info       Info
}

// SearchResult is returned by the location search endpoint.
type SearchResult struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Type       string  `json:"type"`
	Importance float64 `json:"importance"`
}

// TrendingLocation is a frequently searched place with its lookup count.
type TrendingLocation struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
