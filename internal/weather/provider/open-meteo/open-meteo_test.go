// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/wneessen/cityweather/internal/http"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/testhelper"
	"github.com/wneessen/cityweather/internal/weather"
)

const (
	testLat = 48.85
	testLon = 2.35

	parisFile      = "../../../../testdata/openmeteo_paris.json"
	incompleteFile = "../../../../testdata/openmeteo_incomplete.json"
	noCurrentFile  = "../../../../testdata/openmeteo_nocurrent.json"
	errorFile      = "../../../../testdata/openmeteo_error.json"
	brokenFile     = "../../../../testdata/broken.json"
)

func TestNew(t *testing.T) {
	t.Run("creating a new provider succeeds", func(t *testing.T) {
		var provider weather.Provider
		provider, err := New(http.New(testLogger()), testLogger(), "", time.Second*5)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		if provider.Name() != name {
			t.Errorf("expected provider name to be %q, got %q", name, provider.Name())
		}
	})
	t.Run("creating a provider without http client fails", func(t *testing.T) {
		_, err := New(nil, testLogger(), "", time.Second)
		if err == nil {
			t.Fatal("expected provider creation to fail")
		}
	})
	t.Run("creating a provider without logger fails", func(t *testing.T) {
		_, err := New(http.New(testLogger()), nil, "", time.Second)
		if err == nil {
			t.Fatal("expected provider creation to fail")
		}
	})
}

func TestOpenMeteo_GetCurrent(t *testing.T) {
	t.Run("fetching current weather succeeds", func(t *testing.T) {
		var query map[string][]string
		fileFn := testhelper.FileResponder(t, parisFile, 200)
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			query = req.URL.Query()
			return fileFn(req)
		}

		provider := testProviderWithRoundtripFunc(t, rtFn)
		data, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if err != nil {
			t.Fatalf("failed to get weather: %s", err)
		}
		if data.Temperature != 15.4 {
			t.Errorf("expected temperature to be 15.4, got %f", data.Temperature)
		}
		if data.ApparentTemperature != 14.6 {
			t.Errorf("expected apparent temperature to be 14.6, got %f", data.ApparentTemperature)
		}
		if data.RelativeHumidity != 70 {
			t.Errorf("expected humidity to be 70, got %d", data.RelativeHumidity)
		}
		if data.WeatherCode != 3 {
			t.Errorf("expected weather code to be 3, got %d", data.WeatherCode)
		}
		if data.WindSpeed != 4.2 {
			t.Errorf("expected wind speed to be 4.2, got %f", data.WindSpeed)
		}
		if data.CloudCover != 90 {
			t.Errorf("expected cloud cover to be 90, got %d", data.CloudCover)
		}
		wantTime := time.Date(2026, 10, 19, 12, 15, 0, 0, time.UTC)
		if !data.ObservedAt.Equal(wantTime) {
			t.Errorf("expected observation time to be %s, got %s", wantTime, data.ObservedAt)
		}
		if _, offset := data.ObservedAt.Zone(); offset != 7200 {
			t.Errorf("expected observation time offset to be 7200, got %d", offset)
		}

		wantQuery := map[string]string{
			"latitude":         "48.85",
			"longitude":        "2.35",
			"current":          "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,cloud_cover",
			"temperature_unit": "celsius",
			"wind_speed_unit":  "ms",
			"timezone":         "auto",
		}
		for key, want := range wantQuery {
			got := query[key]
			if len(got) != 1 || got[0] != want {
				t.Errorf("expected query parameter %q to be %q, got %q", key, want, got)
			}
		}
	})
	t.Run("incomplete current conditions are malformed", func(t *testing.T) {
		provider := testProviderWithRoundtripFunc(t, testhelper.FileResponder(t, incompleteFile, 200))
		_, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if !errors.Is(err, weather.ErrMalformedResponse) {
			t.Errorf("expected error to be %s, got %s", weather.ErrMalformedResponse, err)
		}
	})
	t.Run("missing current conditions are malformed", func(t *testing.T) {
		provider := testProviderWithRoundtripFunc(t, testhelper.FileResponder(t, noCurrentFile, 200))
		_, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if !errors.Is(err, weather.ErrMalformedResponse) {
			t.Errorf("expected error to be %s, got %s", weather.ErrMalformedResponse, err)
		}
	})
	t.Run("API error response is unavailable", func(t *testing.T) {
		provider := testProviderWithRoundtripFunc(t, testhelper.FileResponder(t, errorFile, 400))
		_, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if !errors.Is(err, http.ErrUnavailable) {
			t.Errorf("expected error to be %s, got %s", http.ErrUnavailable, err)
		}
	})
	t.Run("broken JSON is unavailable", func(t *testing.T) {
		provider := testProviderWithRoundtripFunc(t, testhelper.FileResponder(t, brokenFile, 200))
		_, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if !errors.Is(err, http.ErrUnavailable) {
			t.Errorf("expected error to be %s, got %s", http.ErrUnavailable, err)
		}
	})
	t.Run("slow API times out", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}
		client := http.New(testLogger())
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		provider, err := New(client, testLogger(), "", time.Millisecond)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		_, err = provider.GetCurrent(t.Context(), testLat, testLon)
		if !errors.Is(err, http.ErrTimeout) {
			t.Errorf("expected error to be %s, got %s", http.ErrTimeout, err)
		}
	})
	t.Run("fetching weather from the online API succeeds", func(t *testing.T) {
		testhelper.PerformIntegrationTests(t)
		provider, err := New(http.New(testLogger()), testLogger(), "", time.Second*5)
		if err != nil {
			t.Fatalf("failed to create provider: %s", err)
		}
		data, err := provider.GetCurrent(t.Context(), testLat, testLon)
		if err != nil {
			t.Fatalf("failed to get weather: %s", err)
		}
		t.Logf("weather: %+v°C", data.Temperature)
	})
}

func TestResTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFail bool
		wantZero bool
	}{
		{"valid time", `"2026-10-19T14:15"`, false, false},
		{"null time", `null`, false, true},
		{"number", `12345`, true, false},
		{"invalid format", `"19.10.2026 14:15"`, true, false},
		{"empty input", ``, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rt resTime
			err := rt.UnmarshalJSON([]byte(tc.input))
			if tc.wantFail && err == nil {
				t.Fatal("expected unmarshal to fail")
			}
			if !tc.wantFail && err != nil {
				t.Fatalf("failed to unmarshal time: %s", err)
			}
			if !tc.wantFail && rt.IsZero() != tc.wantZero {
				t.Errorf("expected zero time to be %t, got %t", tc.wantZero, rt.IsZero())
			}
		})
	}
}

func testLogger() *logger.Logger {
	return logger.NewLogger(slog.LevelDebug, io.Discard)
}

func testProviderWithRoundtripFunc(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) *OpenMeteo {
	t.Helper()
	client := http.New(testLogger())
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	provider, err := New(client, testLogger(), "", time.Second*5)
	if err != nil {
		t.Fatalf("failed to create provider: %s", err)
	}
	return provider
}
