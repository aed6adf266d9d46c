// tournament/store/store.go
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/valorhub/tournament-services/shared/models"
)

// ErrNotFound is returned when an operation targets an id that does not
// exist. The API layer translates it into a 404.
var ErrNotFound = errors.New("store: not found")

// collection holds one entity type keyed by id, preserving insertion order
// for iteration.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Store is the sole owner of all entity collections. Every mutation runs
// under one mutex so multi-step writes (team + captain member, registration
// + participant counter) are never observable half-applied.
type Store struct {
	mu sync.Mutex

	users         *collection[models.User]
	tournaments   *collection[models.Tournament]
	teams         *collection[models.Team]
	teamMembers   *collection[models.TeamMember]
	registrations *collection[models.TournamentRegistration]
	matches       *collection[models.Match]

	now   func() time.Time
	newID func() string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:         newCollection[models.User](),
		tournaments:   newCollection[models.Tournament](),
		teams:         newCollection[models.Team](),
		teamMembers:   newCollection[models.TeamMember](),
		registrations: newCollection[models.TournamentRegistration](),
		matches:       newCollection[models.Match](),
		now:           time.Now,
		newID:         uuid.NewString,
	}
}
