// Package movieview owns the state of the movie detail view: fetching the
// movie payload, deriving staff role groups, reconciling the per-user
// favorite toggle with server state and the identity session, and routing
// person selection to navigation.
//
// The ordering hazards live here. Entity and favorite fetches resolve
// independently and in either order; request generations captured at call
// time guard every completion so stale responses for superseded movies or
// users are discarded instead of overwriting newer state.
package movieview
