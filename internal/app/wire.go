package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"ssoma/internal/api"
	"ssoma/internal/datefmt"
	"ssoma/internal/dialog"
	"ssoma/internal/logging"
)

// Wire bundles the clients and helpers for the CLI.
type Wire struct {
	API    *api.Client
	Dates  *datefmt.Formatter
	Dialog dialog.Dialog
	Log    *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Dialog == nil {
		return nil, errors.New("app: dialog is required")
	}
	out := cfg.LogOut
	if out == nil {
		out = io.Discard
	}
	log, err := logging.New(out, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	dates, err := datefmt.New(cfg.Locale, nil)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Wire{
		API:    api.New(cfg.APIURL, httpClient, log),
		Dates:  dates,
		Dialog: cfg.Dialog,
		Log:    log,
	}, nil
}
