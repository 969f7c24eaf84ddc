// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlant = `
[[module]]
name = "Module 3"
type = "corrector"
capacity = 240.0
  [[module.chemical]]
  id = "A"
  unit = "ml/L"
  target = 120.0
  makeup = 100.0
  [[module.chemical]]
  id = "B"
  unit = "ml/L"
  target = 50.0
  makeup = 60.0

[[module]]
name = "Makeup Tank"
type = "refill"
capacity = 400.0
  [[module.chemical]]
  id = "A"
  unit = "ml/L"
  target = 120.0
  [[module.chemical]]
  id = "B"
  unit = "ml/L"
  target = 50.0
`

const testReadings = `
[[reading]]
module = "Module 3"
volume = 100.0
[reading.concentrations]
A = 150.0
B = 45.0

[[reading]]
module = "Makeup Tank"
volume = 100.0
[reading.concentrations]
A = 100.0
B = 40.0
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "plant.toml", testPlant)
	writeFile(t, dir, "readings.toml", testReadings)
	cfg := writeFile(t, dir, "tankctl.toml", "catalog = \"plant.toml\"\nreadings = \"readings.toml\"\nworkers = 2\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"-config", cfg}, args...), &stdout, &stderr)

	return stdout.String(), err
}

func TestRun_Reconcile(t *testing.T) {
	out, err := runCLI(t, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "EXACT_CORRECTION")
	assert.Contains(t, out, "9.09")
	assert.Contains(t, out, "95.45")
	assert.Contains(t, out, "Makeup Tank")
	assert.Contains(t, out, "246.00")
}

func TestRun_ReconcileOneModule(t *testing.T) {
	out, err := runCLI(t, "reconcile", "-module", "Module 3")
	require.NoError(t, err)
	assert.Contains(t, out, "Module 3")
	assert.NotContains(t, out, "Makeup Tank")
}

func TestRun_Simulate(t *testing.T) {
	out, err := runCLI(t, "simulate", "-module", "Module 3", "-water", "20", "-makeup", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Module 3: 200.00 L")
	assert.Contains(t, out, "115.00", "A = (15000 + 8000) / 200")
}

func TestRun_Refill(t *testing.T) {
	out, err := runCLI(t, "refill", "-module", "Makeup Tank")
	require.NoError(t, err)
	assert.Contains(t, out, "water 246.00 L")
	assert.Contains(t, out, "38000.00 ml")
	assert.Contains(t, out, "final 400.00 L")
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "explode")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCLI(t, "refill", "-module", "Module 9")
	assert.Error(t, err)
}
