package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	v, err := ParseOptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalFloat(" 8.5 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 8.5, *v)

	_, err = ParseOptionalFloat("high")
	assert.Error(t, err)
}

func TestParseIntDefault(t *testing.T) {
	v, err := ParseIntDefault("", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = ParseIntDefault("3", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = ParseIntDefault("3.5", 7)
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
}
