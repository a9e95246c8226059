package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidBudget = errors.New("budget must be non-negative")

// Project is a funding proposal published by an entrepreneur. OwnerID always
// references the entrepreneur who created it; only the owner or an admin may
// mutate or delete it.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"owner_id"`
	InterestIDs []string  `json:"interest_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
