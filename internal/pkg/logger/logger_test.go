package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.Info("Moto criada.", map[string]interface{}{"placa": "ABC1234"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Moto criada.", entry["msg"])
	assert.Equal(t, "ABC1234", entry["placa"])
	assert.Equal(t, "mottufind-api", entry["service"])
}

func TestSlogLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "error")

	log.Debug("ignorado", nil)
	log.Info("ignorado", nil)
	log.Warn("ignorado", nil)
	assert.Empty(t, buf.String())

	log.Error("falhou", errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}

func TestSlogLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("encerrando", errors.New("sem banco"))

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "sem banco")
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("qualquer"))
}
