package app

import (
	"io"
	"net/http"
	"time"

	"ssoma/internal/dialog"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL   string        // API base URL, e.g. http://localhost:8083/api/v1
	LogLevel string        // debug, info, warn or error
	Locale   string        // date locale, e.g. es-ES
	Timeout  time.Duration // per-request limit when HTTP is nil; zero means none
	HTTP     *http.Client  // optional; built from Timeout when nil
	LogOut   io.Writer     // diagnostic channel; defaults to io.Discard
	Dialog   dialog.Dialog // required
}
