// Package logging builds the slog loggers used across Marquee.
//
// It provides a console handler with compact "TIME LEVEL component: message"
// lines, a JSON handler for machine consumption, attribute helpers with
// standardized keys, and component loggers so every subsystem tags its output
// consistently.
package logging
