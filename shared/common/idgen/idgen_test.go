package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTimeRandomID(t *testing.T) {
	seen := make(map[int64]struct{}, 1000)
	var prev int64
	for i := 0; i < 1000; i++ {
		id := GenerateTimeRandomID()
		assert.Positive(t, id)
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}
