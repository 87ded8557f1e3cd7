// Package logging builds the slog loggers used across the CLI.
//
// Console (text) and JSON handlers are supported, with an optional mirror of
// every record into a file under the configured log directory. Attr helpers
// keep structured field names consistent between the fetch client, the
// loader, and the report commands.
package logging
