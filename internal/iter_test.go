package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSeq2(t *testing.T) {
	assert := assert.New(t)

	first := slices.All([]string{"a", "b"})
	second := slices.All([]string{"x", "y", "z"})

	merged := maps.Collect(MergeSeq2(first, second))
	assert.Equal(map[int]string{0: "a", 1: "b", 2: "z"}, merged)

	count := 0
	for range MergeSeq2(first, second) {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Empty(maps.Collect(MergeSeq2[int, string]()))
}
