package app

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssoma/internal/dialog"
)

func TestNewWire(t *testing.T) {
	var logs bytes.Buffer
	w, err := NewWire(Config{
		APIURL:   "http://localhost:8083/api/v1",
		LogLevel: "debug",
		Locale:   "en-US",
		Timeout:  5 * time.Second,
		LogOut:   &logs,
		Dialog:   &dialog.Scripted{},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8083/api/v1", w.API.Base)
	assert.Equal(t, "03/05/2024", w.Dates.Format("2024-03-05"))
	httpc, ok := w.API.HTTP.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, httpc.Timeout)

	w.Log.Debug("wired")
	assert.Contains(t, logs.String(), "wired")
}

func TestNewWire_KeepsInjectedClient(t *testing.T) {
	own := &http.Client{}
	w, err := NewWire(Config{LogLevel: "info", Locale: "es-ES", Timeout: time.Second, HTTP: own, Dialog: &dialog.Scripted{}})
	require.NoError(t, err)
	assert.Same(t, own, w.API.HTTP)
}

func TestNewWire_Errors(t *testing.T) {
	_, err := NewWire(Config{LogLevel: "info", Locale: "es-ES"})
	assert.Error(t, err, "dialog required")

	_, err = NewWire(Config{LogLevel: "nope", Locale: "es-ES", Dialog: &dialog.Scripted{}})
	assert.Error(t, err)

	_, err = NewWire(Config{LogLevel: "info", Locale: "!!", Dialog: &dialog.Scripted{}})
	assert.Error(t, err)
}
