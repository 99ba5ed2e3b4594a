// Package commands defines the ssoma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - request      Send a raw request and print the JSON response
//   - validate     Check a RUC or a safety score
//   - date         Format dates for the configured locale
//   - empresas     List, show, create, update and delete companies
//   - documentos   List expiring documents, create and delete them
//
// # Configuration
//
// Settings come from an optional .env file, then SSOMA_API_URL,
// SSOMA_LOG_LEVEL and SSOMA_LOCALE, then the --api, --log-level and
// --locale flags; later sources win.
//
// # Implementation
//
// The root command builds the dependency graph (logger, API client, date
// formatter, dialog) before any subcommand runs. Prompts block on a
// terminal; without one, messages are printed and confirmations are
// declined unless --yes is given.
package commands
