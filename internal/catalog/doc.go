// Package catalog talks to the media-catalog HTTP API.
//
// It models the movie payload consumed by the detail view, fetches favorite
// status, and records favorite updates. All operations take a context, return
// typed errors, and never retry; reconciliation policy lives in the view
// layer, not here.
package catalog
