// Package main hosts the clipforge CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the pipeline
// stages: transcript-to-SRT conversion, highlight selection, clip cutting,
// subtitle burn-in with vertical conversion, the full production run, run
// history, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
