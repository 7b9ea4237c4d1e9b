package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/bench/engine"
)

func TestCliConfig_Definitions(t *testing.T) {
	cfg := cliConfig{Engines: "api, local,", APIURL: "http://calc:8080", ImplicitMul: true}

	defs, err := cfg.definitions()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, engine.Definition{Name: "api", Type: engine.TypeAPI, Connection: "http://calc:8080"}, defs[0])
	assert.Equal(t, engine.Definition{Name: "local", Type: engine.TypeLocal, ImplicitMultiplication: true}, defs[1])

	_, err = cliConfig{Engines: ""}.definitions()
	assert.ErrorContains(t, err, "no engines")

	_, err = cliConfig{Engines: "local,postgres"}.definitions()
	assert.ErrorContains(t, err, `unknown engine "postgres"`)
}
