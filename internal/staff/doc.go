// Package staff classifies a movie's flat staff list into role-specific
// display groups. Classification is a pure derivation: no network, no
// mutation, stable ordering.
package staff
