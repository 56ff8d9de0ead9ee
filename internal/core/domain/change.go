package domain

import "time"

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// A ProductChange is a mutation confirmed by the backend.
//
// Product is nil for [ChangeDeleted].
type ProductChange struct {
	EventID    string
	Kind       ChangeKind
	ProductID  int64
	Product    *Product
	OccurredAt time.Time
}
