// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
)

//go:embed locale/*
var locales embed.FS

// Catalogs lists the languages that ship a message catalog, besides the English source.
var Catalogs = []language.Tag{language.German}

// Translator holds the message bundle and picks a localizer per request.
type Translator struct {
	bundle   *spreak.Bundle
	fallback language.Tag
	matcher  language.Matcher
	tags     []language.Tag
}

// New loads the embedded catalogs. The loc string is the fallback language for requests that
// do not ask for a supported one. An empty loc detects the system locale.
func New(loc string) (*Translator, error) {
	tag := language.Make(loc)
	var err error
	if loc == "" {
		tag, err = locale.Detect()
		if err != nil {
			tag = language.English // Unable to detect locale, fallback to English
		}
	}

	localeFS, err := fs.Sub(locales, "locale")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	langs := []any{tag}
	for _, catalog := range Catalogs {
		langs = append(langs, catalog)
	}
	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(language.English),
		spreak.WithFallbackLanguage(language.English),
		spreak.WithDomainFs("", localeFS),
		spreak.WithLanguage(langs...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}

	tags := []language.Tag{tag, language.English}
	tags = append(tags, Catalogs...)
	return &Translator{
		bundle:   bundle,
		fallback: tag,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
	}, nil
}

// Fallback returns the language used when a request does not ask for a supported one.
func (t *Translator) Fallback() language.Tag {
	return t.fallback
}

// Match returns the supported language that fits an Accept-Language header value best.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return t.fallback
	}
	_, idx, confidence := t.matcher.Match(wanted...)
	if confidence == language.No {
		return t.fallback
	}
	return t.tags[idx]
}

// Localizer returns a localizer for the given language.
func (t *Translator) Localizer(tag language.Tag) *spreak.Localizer {
	return spreak.NewLocalizer(t.bundle, tag)
}
