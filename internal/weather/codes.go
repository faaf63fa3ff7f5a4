// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import "github.com/vorlif/spreak/localize"

const (
	// UnknownCondition is the description for weather codes missing from WMOWeatherCodes.
	UnknownCondition localize.MsgID = "Unknown"
	// UnknownConditionIcon is the icon for weather codes missing from WMOWeatherIcons.
	UnknownConditionIcon = "🌤️"
)

// WMOWeatherCodes maps WMO weather code integers to their descriptions
var WMOWeatherCodes = map[int]localize.MsgID{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Foggy",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Rain showers",
	81: "Rain showers",
	82: "Violent rain showers",
	85: "Snow showers",
	86: "Snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with hail",
}

// WMOWeatherIcons maps WMO weather codes to single emoji icons
var WMOWeatherIcons = map[int]string{
	0:  "☀️", // Clear sky
	1:  "⛅", // Mainly clear
	2:  "⛅", // Partly cloudy
	3:  "☁️", // Overcast
	45: "🌫️", // Fog
	48: "🌫️", // Depositing rime fog
	51: "🌧️", // Drizzle: Light
	53: "🌧️", // Drizzle: Moderate
	55: "🌧️", // Drizzle: Dense intensity
	61: "🌦️", // Rain: Slight
	63: "🌧️", // Rain: Moderate
	65: "🌧️", // Rain: Heavy
	71: "❄️", // Snow fall: Slight
	73: "❄️", // Snow fall: Moderate
	75: "❄️", // Snow fall: Heavy
	77: "❄️", // Snow grains
	80: "🌦️", // Rain showers: Slight
	81: "🌧️", // Rain showers: Moderate
	82: "🌧️", // Rain showers: Violent
	85: "❄️", // Snow showers: Slight
	86: "❄️", // Snow showers: Heavy
	95: "⛈️", // Thunderstorm: Slight or moderate
	96: "⛈️", // Thunderstorm with slight hail
	99: "⛈️", // Thunderstorm with heavy hail
}

// Describe returns the description and icon for a WMO weather code. Codes that are not part
// of the tables yield UnknownCondition and UnknownConditionIcon.
func Describe(code int) (description string, icon string) {
	description, ok := WMOWeatherCodes[code]
	if !ok {
		description = UnknownCondition
	}
	icon, ok = WMOWeatherIcons[code]
	if !ok {
		icon = UnknownConditionIcon
	}
	return description, icon
}
