// Package validate checks the two optional form fields of a company record:
// the 11-digit RUC tax identifier and the 0-100 safety score.
//
// Both checks treat an absent value (nil, empty string, or a falsy zero) as
// valid because the fields are optional. They never return errors; malformed
// input is simply reported as invalid.
package validate
