package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSetFirstOccurrenceWins(t *testing.T) {
	set := newOrderedSet()
	set.add("b", "a", "b")
	set.add("c", "a")

	assert.Equal(t, []string{"b", "a", "c"}, set.first(10))
	assert.Equal(t, []string{"b", "a"}, set.first(2))

	out := set.first(1)
	out[0] = "mutated"
	assert.Equal(t, []string{"b"}, set.first(1))
}
