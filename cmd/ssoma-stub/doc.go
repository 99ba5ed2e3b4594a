// Command ssoma-stub runs an in-memory stand-in for the SSOMA company API.
//
// It listens on :8083 by default and serves the endpoints under /api/v1,
// so the ssoma CLI works against it with its default settings:
//
//	ssoma-stub -addr :8083
//	ssoma empresas list
//
// Data is kept in memory only.
package main
