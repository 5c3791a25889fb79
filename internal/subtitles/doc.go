// Package subtitles parses SRT transcript documents and derives the caption
// artifacts used by the render chain: per-word cue timings for progressive
// reveal, an ASS document for burned-in captions, and a drawtext filter
// chain for the fallback renderer.
package subtitles
