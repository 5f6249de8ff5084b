package providers

// WeatherResult is the typed subset of a current.json response that the
// presentation layer consumes. It is passed by value and never modified
// after Fetch returns it.
type WeatherResult struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

type Current struct {
	TempC     float64   `json:"temp_c"`
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
	WindKph   float64   `json:"wind_kph"`
	WindMph   float64   `json:"wind_mph"`
	Humidity  int       `json:"humidity"`
}

type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

type weatherAPIResponse struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
}

type weatherAPIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
