package tracing

import (
	"log/slog"
	"math/rand/v2"
)

const (
	// Alphabet is the set of characters anonymous identifiers are drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultIDLength is the length of a generated anonymous identifier.
	DefaultIDLength = 20

	maxCollisionRetries = 16
)

// IDGenerator produces anonymous identifiers.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// RandomIDs draws each character of an identifier uniformly from Alphabet.
type RandomIDs struct {
	length int
	intN   func(n int) int
}

// RandomOption configures RandomIDs.
type RandomOption func(*RandomIDs)

// WithLength sets the identifier length. Non-positive values are ignored.
func WithLength(n int) RandomOption {
	return func(g *RandomIDs) {
		if n > 0 {
			g.length = n
		}
	}
}

// WithSource makes generation deterministic for a given source.
func WithSource(src rand.Source) RandomOption {
	return func(g *RandomIDs) {
		if src != nil {
			g.intN = rand.New(src).IntN
		}
	}
}

// NewRandomIDs creates a generator. Without WithSource it uses the
// runtime's automatically seeded generator.
func NewRandomIDs(opts ...RandomOption) *RandomIDs {
	g := &RandomIDs{
		length: DefaultIDLength,
		intN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Length returns the length of generated identifiers.
func (g *RandomIDs) Length() int {
	return g.length
}

// NewID returns a fresh identifier. No uniqueness check is performed.
func (g *RandomIDs) NewID() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = Alphabet[g.intN(len(Alphabet))]
	}
	return string(b)
}

// UniqueIDs wraps a generator and regenerates identifiers it has already
// issued. After maxCollisionRetries attempts the last candidate is returned
// with a warning.
type UniqueIDs struct {
	next   IDGenerator
	issued map[string]struct{}
}

// NewUniqueIDs creates a collision-checking generator around next.
func NewUniqueIDs(next IDGenerator) *UniqueIDs {
	return &UniqueIDs{
		next:   next,
		issued: make(map[string]struct{}),
	}
}

// NewID returns an identifier not issued before by this generator, unless
// retries are exhausted.
func (u *UniqueIDs) NewID() string {
	var id string
	for attempt := 0; attempt <= maxCollisionRetries; attempt++ {
		id = u.next.NewID()
		if _, seen := u.issued[id]; !seen {
			u.issued[id] = struct{}{}
			return id
		}
		slog.Debug("Anonymous id collision, regenerating", "attempt", attempt+1)
	}
	slog.Warn("Anonymous id collision not resolved", "attempts", maxCollisionRetries+1)
	return id
}

// Issued returns how many distinct identifiers have been handed out.
func (u *UniqueIDs) Issued() int {
	return len(u.issued)
}

var defaultIDs IDGenerator = NewRandomIDs()
