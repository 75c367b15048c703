package domain

type WeatherSignal struct {
	IsRaining          bool    `json:"is_raining"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
}

// FallbackWeather is used whenever the weather provider cannot answer.
func FallbackWeather() WeatherSignal {
	return WeatherSignal{IsRaining: false, TemperatureCelsius: 25.0}
}
