package models

import "time"

// WeatherReading is the synthesized weather record returned for one request.
// It is built fresh per call and never stored.
type WeatherReading struct {
	City      string    `json:"city"`
	Temp      float64   `json:"temp"`
	Condition string    `json:"condition"`
	Humidity  int       `json:"humidity"`
	Pressure  int       `json:"pressure"`
	WindSpeed float64   `json:"wind_speed"`
	Timestamp time.Time `json:"timestamp"`
}
