// Package domain defines the data models exchanged with the SSOMA company
// API and the contracts the rest of the app depends on.
// It contains plain types (wire/state), errors and interfaces only.
package domain
