// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package presenter renders the search form and the weather result pages.
package presenter

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	stdhttp "net/http"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/wneessen/cityweather/internal/i18n"
	"github.com/wneessen/cityweather/internal/lookup"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

const (
	formTemplate   = "index.html"
	resultTemplate = "weather.html"
)

// FormView is the data of the search form page.
type FormView struct {
	Lang  string
	City  string
	Error string
}

// ResultView wraps a lookup result with presentation-related fields.
type ResultView struct {
	lookup.Result

	Lang          string
	SunriseTime   time.Time
	SunsetTime    time.Time
	MoonPhase     string
	MoonPhaseIcon string
}

type Presenter struct {
	templates  *template.Template
	translator *i18n.Translator
	humanizers *humanize.Collection
}

// New parses the embedded templates. Template functions are bound per request, so the
// parsed set is never executed directly.
func New(translator *i18n.Translator) (*Presenter, error) {
	if translator == nil {
		return nil, errors.New("translator is required")
	}

	tpl, err := template.New("").Funcs(funcs{}.templateFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	humanizers, err := humanize.New(humanize.WithLocale(de.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer: %w", err)
	}

	return &Presenter{templates: tpl, translator: translator, humanizers: humanizers}, nil
}

// Static returns the stylesheet and client script.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderForm renders the search form, optionally with the city name and an error message.
func (p *Presenter) RenderForm(w io.Writer, lang language.Tag, view FormView) error {
	view.Lang = lang.String()
	return p.execute(w, lang, formTemplate, view)
}

// RenderResult renders the weather of a successful lookup.
func (p *Presenter) RenderResult(w io.Writer, lang language.Tag, result lookup.Result) error {
	return p.execute(w, lang, resultTemplate, p.BuildResultView(lang, result))
}

// BuildResultView adds sun and moon data for the observation day at the result's location.
func (p *Presenter) BuildResultView(lang language.Tag, result lookup.Result) ResultView {
	observed := result.ObservedAt
	if observed.IsZero() {
		observed = time.Now().UTC()
	}
	view := ResultView{Result: result, Lang: lang.String()}

	rise, set := sunrise.SunriseSunset(result.Latitude, result.Longitude, observed.Year(), observed.Month(),
		observed.Day())
	if !rise.IsZero() && !set.IsZero() {
		view.SunriseTime = rise.In(observed.Location())
		view.SunsetTime = set.In(observed.Location())
	}

	moon := moonphase.New(observed)
	view.MoonPhase = moon.PhaseName()
	view.MoonPhaseIcon = MoonPhaseIcon[view.MoonPhase]
	return view
}

// Failure returns the localized message and the HTTP status code for a failed lookup.
func (p *Presenter) Failure(lang language.Tag, err error) (string, int) {
	localizer := p.translator.Localizer(lang)
	if errors.Is(err, lookup.ErrEmptyInput) {
		return localizer.Get(msgEmptyInput), stdhttp.StatusBadRequest
	}

	var lookupErr *lookup.Error
	if !errors.As(err, &lookupErr) {
		return localizer.Getf(msgUnexpected, err.Error()), stdhttp.StatusInternalServerError
	}
	switch lookupErr.Kind {
	case lookup.KindNotFound:
		return localizer.Getf(msgNotFound, truncate(lookupErr.City, maxCityWidth)), stdhttp.StatusNotFound
	case lookup.KindTimeout:
		return localizer.Get(msgTimeout), stdhttp.StatusGatewayTimeout
	case lookup.KindServiceUnavailable:
		return localizer.Get(msgUnavailable), stdhttp.StatusBadGateway
	default:
		return localizer.Getf(msgUnexpected, lookupErr.Detail()), stdhttp.StatusInternalServerError
	}
}

func (p *Presenter) execute(w io.Writer, lang language.Tag, name string, data any) error {
	tpl, err := p.templates.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone templates: %w", err)
	}
	helpers := funcs{
		localizer: p.translator.Localizer(lang),
		humanizer: p.humanizers.CreateHumanizer(lang),
	}
	if err = tpl.Funcs(helpers.templateFuncMap()).ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
