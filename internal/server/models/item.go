package models

import "time"

// Item is a user-owned record. OwnerID is written once at creation and is
// the only input to the mutation authorization check.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemUpdate carries the fields of a partial update. A nil field means
// "leave as is".
type ItemUpdate struct {
	Name        *string
	Description *string
}

// Empty reports whether the update would change nothing.
func (u *ItemUpdate) Empty() bool {
	return u == nil || (u.Name == nil && u.Description == nil)
}
