package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary_FirstSeenOrder(t *testing.T) {
	v := NewVocabulary()
	assert.Equal(t, 0, v.GetOrAssignID("alpha"))
	assert.Equal(t, 1, v.GetOrAssignID("beta"))
	assert.Equal(t, 2, v.GetOrAssignID("gamma"))
	assert.Equal(t, 3, v.Size())
}

func TestVocabulary_LookupIsIdempotent(t *testing.T) {
	v := NewVocabulary()
	first := v.GetOrAssignID("token")
	second := v.GetOrAssignID("token")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, v.Size())
}

func TestVocabulary_Reset(t *testing.T) {
	v := NewVocabulary()
	v.GetOrAssignID("a")
	v.GetOrAssignID("b")

	v.Reset()
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 0, v.GetOrAssignID("c"))

	// Reset is idempotent.
	v.Reset()
	v.Reset()
	assert.Equal(t, 0, v.Size())
}

func TestVocabulary_Snapshot(t *testing.T) {
	v := NewVocabulary()
	v.GetOrAssignID("x")
	v.GetOrAssignID("y")

	snap := v.Snapshot()
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, snap)

	// The snapshot is a copy — mutating it must not touch the registry.
	snap["z"] = 99
	assert.Equal(t, 2, v.Size())
}
