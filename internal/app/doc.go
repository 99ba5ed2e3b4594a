// Package app wires application dependencies for the CLI.
//
// It builds the logger, API client, date formatter and dialog from Config,
// exposing them via the Wire struct for commands to use.
package app
