// Package common contains shared constants and sentinel errors used across
// the client layers.
package common

// Storage keys for the locally persisted session. The names match the keys
// the service's original mobile client used, so a database written by one
// build stays readable by the next.
const (
	KeyCurrentUser  = "currentUser"
	KeyAuthToken    = "authToken"
	KeyRefreshToken = "refreshToken"
)
