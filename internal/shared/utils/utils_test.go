package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := Ptr("x")
	require.Equal(t, "x", *p)
}

func TestAnyBlank(t *testing.T) {
	require.False(t, AnyBlank())
	require.False(t, AnyBlank("a", "b"))
	require.True(t, AnyBlank("a", ""))
	require.True(t, AnyBlank(" \t", "b"))
}
