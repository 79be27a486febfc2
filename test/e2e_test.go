package test

import (
	"context"
	"os"
	"testing"

	"github.com/graeme-hill/midget-go/lib"
	"github.com/stretchr/testify/require"
)

// Needs a reachable Postgres, e.g. MIDGET_TEST_DSN="user=postgres sslmode=disable".
func TestHistory(t *testing.T) {
	connStr := os.Getenv("MIDGET_TEST_DSN")
	if connStr == "" {
		t.Skip("MIDGET_TEST_DSN not set")
	}

	ctx := context.Background()
	history, err := lib.OpenHistory(ctx, connStr)
	require.NoError(t, err)
	defer history.Close()

	for _, source := range []string{"(2 + 3) * 4", "foo"} {
		value, err := lib.Run(source)
		require.NoError(t, history.Record(ctx, lib.NewEntry(source, value, err)))
	}

	entries, err := history.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "foo", entries[0].Source)
	require.Equal(t, "", entries[0].Result)
	require.Equal(t, "Cannot evaluate Identifier node", entries[0].Error)

	require.Equal(t, "(2 + 3) * 4", entries[1].Source)
	require.Equal(t, "20", entries[1].Result)
	require.Equal(t, "", entries[1].Error)
}
