// Package highlights selects high-retention transcript segments by asking
// an OpenAI-compatible chat completions endpoint, then persists the
// selection for the clip cutter.
package highlights
