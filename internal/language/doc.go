// Package language resolves ISO language codes from catalog payloads to
// display names for the detail view.
package language
