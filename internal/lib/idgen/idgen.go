// Package idgen supplies unique identifiers through an injected generator so
// identity generation stays deterministic in tests instead of leaning on
// wall-clock uniqueness.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// UUID is the production generator.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence hands out prefix-1, prefix-2, ... for tests.
type Sequence struct {
	prefix string
	n      atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}
