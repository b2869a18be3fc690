package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "#1", Format(1))
	assert.Equal(t, "#42", Format(42))
}

func TestParse_Valid(t *testing.T) {
	for in, want := range map[string]int{"3": 3, "#3": 3, " #12 ": 12} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	got, err := Parse(Format(7))
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "abc", "#x1", "0", "-4", "1.5"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
