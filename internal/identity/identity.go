package identity

// Snapshot is the resolved-or-pending state of the current session. Once
// Loading turns false it never returns to true for the same session; UserID
// stays empty until Authenticated is set.
type Snapshot struct {
	Loading       bool
	Authenticated bool
	UserID        string
}

// LoginOptions carries parameters for an interactive login flow.
type LoginOptions struct {
	// ReturnTo records the location the flow should resume at.
	ReturnTo string
}

// Provider exposes the identity collaborator surface the view consumes. The
// provider's internal protocol is opaque; the view only gates on the
// snapshot and hands off unauthenticated toggles to LoginWithRedirect.
type Provider interface {
	Snapshot() Snapshot
	LoginWithRedirect(opts LoginOptions) error
}
