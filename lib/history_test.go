package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry("1 + 1", NumberValue{Value: 2}, nil)
	require.Equal(t, "1 + 1", entry.Source)
	require.Equal(t, "2", entry.Result)
	require.Equal(t, "", entry.Error)
	require.False(t, entry.At.IsZero())

	entry = NewEntry("foo", nil, &EvalError{NodeKind: "Identifier"})
	require.Equal(t, "", entry.Result)
	require.Equal(t, "Cannot evaluate Identifier node", entry.Error)
}
