// Package services defines the error taxonomy shared by pipeline
// components. Sentinel markers classify failures so callers can
// distinguish a missing engine capability from a generic tool failure or
// a bad input without parsing error strings.
package services
