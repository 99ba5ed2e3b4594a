// Package api provides the HTTP client for the SSOMA company API.
//
// Client.Do is the generic request helper: it sends one request to any URL
// and decodes the JSON body, whatever the status code. Failures are logged
// on the client's logger and returned as *domain.RequestError, matching
// domain.ErrNetwork when no response arrived and domain.ErrDecode when the
// body was not JSON. Nothing is retried.
//
// On top of Do the client offers typed calls for the /empresas and
// /documentos-empresa endpoints. Those unwrap the {success, message, data}
// envelope and turn success=false into *domain.APIError. Records are
// validated locally before they are sent.
package api
