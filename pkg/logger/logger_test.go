package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_ExplicitoYPorEntorno(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN", "production"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("", "development"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("", "production"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose", "production"))
}

func TestComponent_AgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Env: "production", Level: "info", Name: "album-inventory"})

	zl := l.Component("ledger")
	zl.Info().Msg("hola")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "album-inventory", line["app"])
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, "hola", line["message"])
}

func TestNivel_FiltraDebugEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Env: "production"})
	l.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
}
