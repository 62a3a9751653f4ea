package shared

import "github.com/google/uuid"

// Actor is the already-authenticated user performing an operation. The
// authorization middleware verifies capabilities upstream; services only
// check the flags they document as preconditions.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}
