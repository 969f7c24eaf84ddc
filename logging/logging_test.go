// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		want zerolog.Level
		ok   bool
	}{
		"":        {zerolog.InfoLevel, false},
		"trace":   {zerolog.TraceLevel, true},
		" DEBUG ": {zerolog.DebugLevel, true},
		"warning": {zerolog.WarnLevel, true},
		"error":   {zerolog.ErrorLevel, true},
		"off":     {zerolog.Disabled, true},
		"loud":    {zerolog.InfoLevel, false},
	}
	for raw, tc := range cases {
		lvl, ok := parseLevel(raw)
		assert.Equal(t, tc.want, lvl, raw)
		assert.Equal(t, tc.ok, ok, raw)
	}
}

func TestParseBool(t *testing.T) {
	v, ok := parseBool(" true ")
	assert.True(t, v)
	assert.True(t, ok)

	_, ok = parseBool("")
	assert.False(t, ok)

	_, ok = parseBool("maybe")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "warn",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "1",
	}
	cfg := DefaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, Config{Level: zerolog.WarnLevel, Timestamp: false, NoColor: true}, cfg)
}

func TestApplyEnvOverrides_Untouched(t *testing.T) {
	cfg := DefaultConfig(ProfileTest)
	applyEnvOverrides(&cfg, func(string) string { return "" })

	assert.Equal(t, DefaultConfig(ProfileTest), cfg)
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(&buf, "tankctl", Config{Level: zerolog.InfoLevel, NoColor: true})

	log.Debug().Msg("hidden")
	log.Info().Str("module", "Module 3").Msg("report ready")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "report ready")
	assert.Contains(t, out, "app=tankctl")
	assert.Contains(t, out, "module=")
	assert.NotContains(t, out, "\x1b[", "no color codes")
}
