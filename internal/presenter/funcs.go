// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
	"github.com/vorlif/spreak"
)

// maxCityWidth is the display width at which echoed user input gets truncated.
const maxCityWidth = 48

// funcs binds the template helpers to a localizer and humanizer of a single request.
type funcs struct {
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
}

func (f funcs) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"loc":           f.loc,
		"localizedTime": f.localizedTime,
		"moonPhase":     f.moonPhase,
		"floatFormat":   floatFormat,
		"truncate":      truncate,
	}
}

func (f funcs) loc(val string) string {
	return f.localizer.Get(val)
}

func (f funcs) moonPhase(val string) string {
	if raw, ok := moonPhaseNames[val]; ok {
		return f.localizer.Get(raw)
	}
	return val
}

func (f funcs) localizedTime(val time.Time) string {
	if val.IsZero() {
		return "-"
	}
	return f.humanizer.FormatTime(val, humanize.TimeFormat)
}

func floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Round(val*pow)/pow)
}

// truncate shortens val to the given display width, counting wide runes twice.
func truncate(val string, width int) string {
	return runewidth.Truncate(val, width, "…")
}
