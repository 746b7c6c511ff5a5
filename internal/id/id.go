// Package id generates and checks the identifiers printed by tripid.
package id

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
)

// canonicalRegex matches the lower-case 8-4-4-4-12 hyphenated layout.
var canonicalRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Check errors.
var (
	ErrNotCanonical = errors.New("not a lower-case 8-4-4-4-12 hex identifier")
	ErrNotVersion4  = errors.New("not a version-4 identifier")
)

// Generator produces identifiers.
type Generator interface {
	Generate() string
}

// RandomGenerator produces version-4 identifiers from crypto/rand.
type RandomGenerator struct{}

// Generate returns a new random identifier.
func (RandomGenerator) Generate() string {
	return Generate()
}

// FixedGenerator returns the same value on every call.
type FixedGenerator struct {
	Value string
}

// Generate returns g.Value.
func (g FixedGenerator) Generate() string {
	return g.Value
}

// Generate returns a random version-4 identifier in canonical form.
// It panics if the system randomness source fails.
func Generate() string {
	return uuid.New().String()
}

// IsCanonical reports whether s is a 36-character lower-case hyphenated identifier.
func IsCanonical(s string) bool {
	return canonicalRegex.MatchString(s)
}

// IsVersion4 reports whether s is canonical with the version-4 and RFC 4122 variant bits set.
func IsVersion4(s string) bool {
	if !IsCanonical(s) {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

// Check returns nil if s is a canonical version-4 identifier, and
// ErrNotCanonical or ErrNotVersion4 otherwise.
func Check(s string) error {
	if !IsCanonical(s) {
		return ErrNotCanonical
	}
	if !IsVersion4(s) {
		return ErrNotVersion4
	}
	return nil
}
