package movieview

import (
	"marquee/internal/catalog"
	"marquee/internal/staff"
)

// LoadPhase is the explicit three-state load model for the movie payload.
// The pre-load state is tagged rather than inferred from empty fields.
type LoadPhase int

const (
	LoadPending LoadPhase = iota
	LoadReady
	LoadFailed
)

// String renders the phase for logs.
func (p LoadPhase) String() string {
	switch p {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FavoriteState tracks the per-(movie, user) favorite toggle. Known reports
// whether any value has been established, locally or from the server; Err
// carries the last failed mutation so the caller can offer a retry.
type FavoriteState struct {
	Known bool
	Liked bool
	Err   error
}

// ViewState is the renderable state of the movie detail view.
type ViewState struct {
	MovieID  string
	Phase    LoadPhase
	Movie    *catalog.Movie
	LoadErr  error
	Staff    staff.Groups
	Favorite FavoriteState
}

// Navigator receives person-selection navigation requests. Destination
// routing is outside the view's responsibility.
type Navigator interface {
	Navigate(path string)
}
