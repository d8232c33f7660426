package models

import "time"

// Issue is a single tracked item.
// IDs are assigned by the store and never change.
type Issue struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GetID returns the issue ID (used by quiet CLI output)
func (i *Issue) GetID() string {
	return i.ID
}
