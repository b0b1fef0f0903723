package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Item is the domain model for a shopping-list entry.
// Completed mirrors which list holds the item; the store keeps it in sync.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	Image     []byte    `json:"image,omitempty"`
}

// HasImage reports whether the item was added from a photo.
func (it Item) HasImage() bool { return len(it.Image) > 0 }

// Collection names one of the two lists an item can live in.
type Collection int

const (
	Pending Collection = iota
	Purchased
)

func (c Collection) String() string {
	switch c {
	case Pending:
		return "pending"
	case Purchased:
		return "purchased"
	}
	return fmt.Sprintf("collection(%d)", int(c))
}

// ParseCollection accepts the names used by scripts and flags.
func ParseCollection(s string) (Collection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "todo", "buy":
		return Pending, nil
	case "purchased", "bought", "done":
		return Purchased, nil
	}
	return Pending, fmt.Errorf("unknown list %q (want pending or purchased)", s)
}
