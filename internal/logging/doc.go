// Package logging provides structured logging for the skillsref CLI built
// on log/slog.
//
// It supplies a colorized TTY handler for terminal output, a JSON handler
// for machine consumption, a MultiHandler for writing to several sinks at
// once (terminal plus --log-file), verbosity-to-level mapping for the -v
// flag, and context helpers for passing a logger through cobra commands.
package logging
