// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/vorlif/spreak/localize"

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// moonPhaseNames maps the moon phase names of go-moonphase to catalog message IDs.
var moonPhaseNames = map[string]localize.MsgID{
	"New Moon":        "New moon",
	"Waxing Crescent": "Waxing crescent",
	"First Quarter":   "First quarter",
	"Waxing Gibbous":  "Waxing gibbous",
	"Full Moon":       "Full moon",
	"Waning Gibbous":  "Waning gibbous",
	"Third Quarter":   "Third quarter",
	"Waning Crescent": "Waning crescent",
}

// Messages shown for failed lookups.
const (
	msgEmptyInput  localize.MsgID = "Please enter a city name"
	msgNotFound    localize.MsgID = "City \"%s\" not found. Please try again."
	msgTimeout     localize.MsgID = "Request timed out. Please check your internet connection."
	msgUnavailable localize.MsgID = "Unable to connect to weather service. Please try again later."
	msgUnexpected  localize.MsgID = "An error occurred: %s"
)
