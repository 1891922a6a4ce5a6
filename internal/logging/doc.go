// Package logging constructs the slog loggers used across subfix.
//
// Two output formats are supported: a compact console format for humans and
// line-delimited JSON for machine consumption. Construction is driven either
// by explicit Options or by the application config.
package logging
