package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseInts(t *testing.T) {
	vec := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseInts(vec))
	assert.Equal(t, []int{1, 2, 3}, vec)
	assert.Empty(t, ReverseInts(nil))
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", FormatInts([]int{1, 2, 3}))
	assert.Equal(t, "[-7]", FormatInts([]int{-7}))
	assert.Equal(t, "[]", FormatInts(nil))

	var buf bytes.Buffer
	require.NoError(t, PrintInts(&buf, []int{4, 5}))
	assert.Equal(t, "[4, 5]\n", buf.String())
}
