package msgpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitPartIndexMatchesNestedArguments(t *testing.T) {
	store := parseOK(t, "{a, select, x{{b, select, y{Y} other{N}}} other{O}}")

	msgStart := 0
	require.Equal(t, MsgStart, store.PartType(msgStart))
	msgLimit := store.LimitPartIndex(msgStart)
	assert.Equal(t, store.Count()-1, msgLimit)

	argStartA := 1
	require.Equal(t, ArgStart, store.PartType(argStartA))
	argLimitA := store.LimitPartIndex(argStartA)
	assert.Equal(t, ArgLimit, store.PartType(argLimitA))
	assert.Equal(t, store.Part(argStartA).ArgType, store.Part(argLimitA).ArgType)
}

func TestNumericValueSentinelForNonNumericPart(t *testing.T) {
	store := parseOK(t, "Hi")
	v := store.NumericValue(store.Part(0))
	assert.True(t, v != v, "NaN must compare unequal to itself")
}

func TestPartCountAtLeastTwo(t *testing.T) {
	for _, pattern := range []string{"", "x", "{a}", "{a, plural, one{#} other{#}}"} {
		store := parseOK(t, pattern)
		assert.GreaterOrEqual(t, store.Count(), 2)
		assert.Equal(t, MsgStart, store.PartType(0))
		assert.Equal(t, MsgLimit, store.PartType(store.Count()-1))
	}
}
