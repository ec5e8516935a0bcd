// Command marquee is the CLI front end for the movie detail view. It loads a
// movie from the catalog service, renders the detail sections and staff
// tables, toggles favorites for the active session, and lists recently viewed
// titles.
package main
