// Package engine supervises invocations of the external video engine
// (ffmpeg). Every invocation runs under a hard wall-clock timeout with its
// diagnostic stream captured, and any partial output file is removed on
// failure so a later existence check cannot be satisfied by a stale
// artifact.
package engine
