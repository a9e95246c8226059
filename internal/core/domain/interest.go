package domain

import (
	"errors"
	"time"
)

var ErrInterestNotFound = errors.New("interest not found")

// Interest is a catalog tag. Users declare interests on their profile and
// projects carry them; the overlap drives project recommendations.
type Interest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
