// Package logging builds the slog loggers used across clipforge. It offers
// a console handler for interactive use and a JSON handler for log files,
// plus helpers for component-scoped loggers. Components receive their
// logger explicitly; there is no package-level logger.
package logging
