package model

// Scope carries the identity of the authenticated caller through
// usecase calls.
type Scope struct {
	UserID string
}
