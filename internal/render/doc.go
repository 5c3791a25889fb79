// Package render produces the subtitle overlay for a clip through a fixed
// three-strategy fallback chain (ASS burn-in, drawtext burn-in, soft mux)
// and converts the result to the vertical 9:16 output geometry. Strategy
// outcomes form a closed sum type so callers can tell a missing engine
// capability apart from a transport failure.
package render
