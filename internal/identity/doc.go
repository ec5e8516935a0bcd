// Package identity models the authentication session the detail view gates
// on: a loading flag, an authenticated flag, and the stable user identifier.
// The interactive login protocol itself is out of scope; providers only
// record the redirect and expose the resolved snapshot.
package identity
