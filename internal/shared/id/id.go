// Package id generates evaluation IDs for the calculator.
//
// IDs are prefixed ULIDs ("calc_01J...") so that log lines and rendered
// outcomes from one session sort by creation time.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// EvaluationID identifies a single calculator evaluation
type EvaluationID string

// EvaluationPrefix is prepended to every EvaluationID.
const EvaluationPrefix = "calc"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source,
// e.g. a seeded reader in tests
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewEvaluationID generates an evaluation ID from the default generator
func NewEvaluationID() EvaluationID {
	return Default().NewEvaluationID()
}

// NewEvaluationID generates an evaluation ID
func (g *Generator) NewEvaluationID() EvaluationID {
	return EvaluationID(g.GenerateWithPrefix(EvaluationPrefix))
}

func (id EvaluationID) String() string { return string(id) }

// Timestamp extracts the creation time of a prefixed evaluation ID
func (id EvaluationID) Timestamp() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(id), EvaluationPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("evaluation id %q lacks %q prefix", id, EvaluationPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
