package snid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := New()
		assert.Len(t, id, Length)
		for _, r := range id {
			isAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			assert.True(t, isAlnum, "id %q contains non-alphanumeric character %q", id, r)
		}
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000, "expected no collisions over a small sample")
}
