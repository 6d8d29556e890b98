package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/offboard/pkg/errors"
	"github.com/agentstation/offboard/pkg/reconcile"
	"github.com/agentstation/offboard/pkg/tabular"
)

func terminationFeed(t *testing.T, rows ...[]string) *tabular.Table {
	t.Helper()
	tbl := tabular.New("terminations", []string{"Employment Status", "Work Email"})
	for _, row := range rows {
		tbl.Append(row)
	}
	return tbl
}

func TestBuildTerminationSet(t *testing.T) {
	ctx := context.Background()

	t.Run("collects lowercase emails of terminated rows", func(t *testing.T) {
		feed := terminationFeed(t,
			[]string{"Terminated", "ALICE@X.COM"},
			[]string{"Terminated", "bob@x.com"},
		)

		set, err := reconcile.BuildTerminationSet(ctx, feed)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
		assert.True(t, set.Contains("alice@x.com"))
		assert.True(t, set.Contains("Alice@X.com"), "membership is case-insensitive")
		assert.True(t, set.Contains("bob@x.com"))
	})

	t.Run("status match is exact", func(t *testing.T) {
		feed := terminationFeed(t,
			[]string{"Resigned", "carol@x.com"},
			[]string{"terminated", "dave@x.com"},
			[]string{"TERMINATED", "erin@x.com"},
			[]string{"Terminated", "frank@x.com"},
		)

		set, err := reconcile.BuildTerminationSet(ctx, feed)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Contains("frank@x.com"))
		assert.False(t, set.Contains("carol@x.com"))
	})

	t.Run("blank emails are dropped", func(t *testing.T) {
		feed := terminationFeed(t,
			[]string{"Terminated", ""},
			[]string{"Terminated", "alice@x.com"},
		)

		set, err := reconcile.BuildTerminationSet(ctx, feed)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
		assert.False(t, set.Contains(""))
	})

	t.Run("duplicates collapse silently", func(t *testing.T) {
		feed := terminationFeed(t,
			[]string{"Terminated", "alice@x.com"},
			[]string{"Terminated", "ALICE@X.COM"},
		)

		set, err := reconcile.BuildTerminationSet(ctx, feed)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("empty feed yields empty set", func(t *testing.T) {
		set, err := reconcile.BuildTerminationSet(ctx, terminationFeed(t))
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("missing columns are schema errors", func(t *testing.T) {
		feed := tabular.New("terminations", []string{"Work Email"})
		_, err := reconcile.BuildTerminationSet(ctx, feed)
		require.Error(t, err)
		assert.True(t, errors.IsMissingColumn(err))
		assert.Contains(t, err.Error(), "Employment Status")
	})
}
