// Package oid generates identifiers for journal entries.
package oid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OID identifies a mood, journal or dream entry.
// The format is a 32-character lowercase hexadecimal string.
type OID string

const Nil = OID("")

func (o OID) IsNil() bool {
	return o == Nil
}

// Short returns the first 7 characters, enough to reference an entry in the CLI output.
func (o OID) Short() string {
	if len(o) < 7 {
		return string(o)
	}
	return string(o)[0:7]
}

func (o OID) String() string {
	return string(o)
}

/* Generators */

type Generator interface {
	New() OID
}

var generator Generator = &UniqueGenerator{}

// New generates a new OID using the current generator.
func New() OID {
	return generator.New()
}

// UseGenerator overrides the default generator. Call Reset to restore it.
func UseGenerator(g Generator) {
	generator = g
}

// Reset restores the random generator.
func Reset() {
	generator = &UniqueGenerator{}
}

// UniqueGenerator returns random OIDs based on UUIDv4.
type UniqueGenerator struct{}

func (g *UniqueGenerator) New() OID {
	return OID(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// SequenceGenerator returns numbered OIDs (00..01, 00..02, ...) to get predictable test outputs.
type SequenceGenerator struct {
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) New() OID {
	g.count++
	return OID(fmt.Sprintf("%032d", g.count))
}
