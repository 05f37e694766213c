package id

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvaluationID(t *testing.T) {
	id1 := NewEvaluationID()
	id2 := NewEvaluationID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1.String(), "calc_"))
	assert.Len(t, id1.String(), len("calc_")+26)
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	gen := NewGeneratorWithEntropy(rand.New(rand.NewSource(1)))

	ts, err := gen.NewEvaluationID().Timestamp()
	require.NoError(t, err)
	assert.True(t, ts.After(before), "timestamp %v should be after %v", ts, before)

	_, err = EvaluationID("req_01ARZ3NDEKTSV4RRFFQ69G5FAV").Timestamp()
	assert.Error(t, err)

	_, err = EvaluationID("calc_not-a-ulid").Timestamp()
	assert.Error(t, err)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
