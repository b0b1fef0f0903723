package memstore

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
)

// In-memory list state. Two ordered lists, nothing written to disk.
// Not safe for concurrent use; callers drive it from one event loop.

const DefaultPhotoName = "New photo"

// ErrDuplicateItem is matched by every DuplicateItemError.
var ErrDuplicateItem = errors.New("duplicate item")

// DuplicateItemError reports a name already present in the pending list.
type DuplicateItemError struct {
	Name string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("%q is already on the list", e.Name)
}

func (e *DuplicateItemError) Is(target error) bool { return target == ErrDuplicateItem }

// Store owns the pending and purchased lists.
type Store struct {
	pending   []model.Item
	purchased []model.Item

	newID     func() uuid.UUID
	photoName string
	seed      []string
}

type Option func(*Store)

// WithIDFunc replaces the id generator (uuid.New by default).
func WithIDFunc(fn func() uuid.UUID) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithPhotoName sets the placeholder name given to photo items.
func WithPhotoName(name string) Option {
	return func(s *Store) {
		if n := strings.TrimSpace(name); n != "" {
			s.photoName = n
		}
	}
}

// WithSeed pre-populates the pending list, top first.
// Blank and duplicate names are skipped the same way AddText skips them.
func WithSeed(names ...string) Option {
	return func(s *Store) {
		s.seed = append(s.seed, names...)
	}
}

func New(opts ...Option) *Store {
	s := &Store{newID: uuid.New, photoName: DefaultPhotoName}
	for _, opt := range opts {
		opt(s)
	}
	// Seeds go in after every option so they use the configured id func.
	// The first spelling of a repeated name wins.
	for _, raw := range s.seed {
		name := strings.TrimSpace(raw)
		if name == "" || indexOfName(s.pending, name) >= 0 {
			continue
		}
		s.pending = append(s.pending, model.Item{ID: s.newID(), Name: name})
	}
	s.seed = nil
	return s
}

// AddText trims rawName and inserts it at the top of the pending list.
// Blank input is ignored (added=false, err=nil). A case-insensitive match in
// the pending list fails with a *DuplicateItemError and leaves state untouched.
func (s *Store) AddText(rawName string) (model.Item, bool, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return model.Item{}, false, nil
	}
	if indexOfName(s.pending, name) >= 0 {
		return model.Item{}, false, &DuplicateItemError{Name: name}
	}
	it := model.Item{ID: s.newID(), Name: name}
	s.pending = insertFront(s.pending, it)
	return it, true, nil
}

// AddImage inserts a photo item at the top of the pending list.
// Photo names are not checked for duplicates. An empty image (picker
// cancelled) adds nothing.
func (s *Store) AddImage(image []byte) (model.Item, bool) {
	if len(image) == 0 {
		return model.Item{}, false
	}
	it := model.Item{ID: s.newID(), Name: s.photoName, Image: bytes.Clone(image)}
	s.pending = insertFront(s.pending, it)
	return it, true
}

// Move toggles an item between the lists. Pending items go to the end of
// purchased; purchased items go back to the top of pending. Unknown ids are
// a no-op and return false.
func (s *Store) Move(id uuid.UUID) bool {
	if i := indexOf(s.pending, id); i >= 0 {
		it := s.pending[i]
		s.pending = removeAt(s.pending, i)
		it.Completed = true
		s.purchased = append(s.purchased, it)
		return true
	}
	if i := indexOf(s.purchased, id); i >= 0 {
		it := s.purchased[i]
		s.purchased = removeAt(s.purchased, i)
		it.Completed = false
		s.pending = insertFront(s.pending, it)
		return true
	}
	return false
}

// Edit replaces the stored item carrying updated.ID, keeping its position.
// Pending is searched before purchased. Completed always follows the list
// that holds the item.
func (s *Store) Edit(updated model.Item) bool {
	updated = detach(updated)
	if i := indexOf(s.pending, updated.ID); i >= 0 {
		updated.Completed = false
		s.pending[i] = updated
		return true
	}
	if i := indexOf(s.purchased, updated.ID); i >= 0 {
		updated.Completed = true
		s.purchased[i] = updated
		return true
	}
	return false
}

// DeleteAt removes the items at the given positions of one list.
// Out-of-range and repeated offsets are ignored. Returns how many were removed.
func (s *Store) DeleteAt(c model.Collection, offsets ...int) int {
	list := s.list(c)
	if list == nil || len(offsets) == 0 {
		return 0
	}
	drop := make(map[int]struct{}, len(offsets))
	for _, o := range offsets {
		if o >= 0 && o < len(*list) {
			drop[o] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}
	kept := make([]model.Item, 0, len(*list)-len(drop))
	for i, it := range *list {
		if _, gone := drop[i]; !gone {
			kept = append(kept, it)
		}
	}
	*list = kept
	return len(drop)
}

// ClearPurchased empties the purchased list and returns how many items it held.
func (s *Store) ClearPurchased() int {
	n := len(s.purchased)
	s.purchased = nil
	return n
}

// Pending returns a copy of the pending list, newest first.
func (s *Store) Pending() []model.Item { return clone(s.pending) }

// Purchased returns a copy of the purchased list in purchase order.
func (s *Store) Purchased() []model.Item { return clone(s.purchased) }

// Items returns a copy of one list.
func (s *Store) Items(c model.Collection) []model.Item {
	if c == model.Purchased {
		return s.Purchased()
	}
	return s.Pending()
}

// Find looks an item up by id in both lists.
func (s *Store) Find(id uuid.UUID) (model.Item, model.Collection, bool) {
	if i := indexOf(s.pending, id); i >= 0 {
		return detach(s.pending[i]), model.Pending, true
	}
	if i := indexOf(s.purchased, id); i >= 0 {
		return detach(s.purchased[i]), model.Purchased, true
	}
	return model.Item{}, model.Pending, false
}

// Stats returns the sizes of both lists.
func (s *Store) Stats() (pending, purchased int) {
	return len(s.pending), len(s.purchased)
}

func (s *Store) list(c model.Collection) *[]model.Item {
	switch c {
	case model.Pending:
		return &s.pending
	case model.Purchased:
		return &s.purchased
	}
	return nil
}

func indexOf(items []model.Item, id uuid.UUID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func indexOfName(items []model.Item, name string) int {
	for i, it := range items {
		if strings.EqualFold(it.Name, name) {
			return i
		}
	}
	return -1
}

func insertFront(items []model.Item, it model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, it)
	return append(out, items...)
}

func removeAt(items []model.Item, i int) []model.Item {
	out := make([]model.Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		out[i] = detach(it)
	}
	return out
}

// detach gives the caller its own image bytes.
func detach(it model.Item) model.Item {
	it.Image = bytes.Clone(it.Image)
	return it
}
