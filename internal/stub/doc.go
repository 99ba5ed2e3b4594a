// Package stub is an in-memory stand-in for the SSOMA company API.
//
// It serves the /empresas and /documentos-empresa endpoints under
// /api/v1 with the same response envelope as the real backend, so the
// CLI and client can be exercised without it. State lives in memory and
// is lost on restart.
package stub
