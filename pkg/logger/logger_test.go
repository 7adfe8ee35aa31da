package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/pkg/logger"
)

// En production cada línea es JSON con el servicio como campo base.
func TestLogger_ProductionJSONConService(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "kardex-api",
		Writer:  &buf,
	})

	log.Info().Str("product_id", "p-1").Msg("asiento registrado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "la salida debe ser JSON por línea")
	assert.Equal(t, "kardex-api", line["service"])
	assert.Equal(t, "p-1", line["product_id"])
	assert.Equal(t, "asiento registrado", line["message"])
	assert.Contains(t, line, "time")
}

// El nivel configurado filtra los eventos por debajo.
func TestLogger_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "warn", Writer: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("tampoco")
	log.Warn().Msg("esto sí")

	out := buf.String()
	assert.NotContains(t, out, "no debe salir")
	assert.NotContains(t, out, "tampoco")
	assert.Contains(t, out, "esto sí")
}

// En development la salida es de consola legible, no JSON.
func TestLogger_DevelopmentConsola(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "info", Writer: &buf})

	log.Info().Msg("arrancando")

	out := buf.String()
	assert.Contains(t, out, "arrancando")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"),
		"la consola de desarrollo no emite JSON crudo")
}
