package profit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"profitswitch/internal/profit"
)

func TestCandidate_StartsAtSentinel(t *testing.T) {
	t.Parallel()

	c := profit.NewCandidate()
	require.Equal(t, profit.NoIndex, c.Index)
	require.Equal(t, int32(0), c.Port)
	require.True(t, c.Score.IsZero())
	require.Equal(t, profit.NoResult, c.Result())
}

func TestCandidate_ConsiderStrictlyGreater(t *testing.T) {
	t.Parallel()

	c := profit.NewCandidate()

	// Act: zero and negative scores never beat the baseline
	c = c.Consider(decimal.Zero, 0, 1111)
	c = c.Consider(decimal.RequireFromString("-1.5"), 1, 2222)
	require.Equal(t, profit.NoResult, c.Result())

	// Act: a positive score replaces it
	c = c.Consider(decimal.RequireFromString("0.001"), 2, 3333)
	require.Equal(t, profit.Result{Index: 2, Port: 3333}, c.Result())

	// Act: an equal score later does not override
	c = c.Consider(decimal.RequireFromString("0.0010"), 3, 4444)
	require.Equal(t, profit.Result{Index: 2, Port: 3333}, c.Result())

	// Act: a strictly greater score does
	c = c.Consider(decimal.RequireFromString("0.0011"), 4, 5555)
	require.Equal(t, profit.Result{Index: 4, Port: 5555}, c.Result())
}

func TestCandidate_IsAValue(t *testing.T) {
	t.Parallel()

	base := profit.NewCandidate()
	next := base.Consider(decimal.NewFromInt(1), 0, 3333)

	require.Equal(t, profit.NoIndex, base.Index)
	require.Equal(t, 0, next.Index)
}

func TestResult_Describe(t *testing.T) {
	t.Parallel()

	algos := []profit.Algorithm{{Name: "x11", Factor: 1}, {Name: "scrypt", Factor: 2}}

	require.Equal(t,
		profit.Selection{Found: true, Index: 1, Name: "scrypt", Port: 4444},
		profit.Result{Index: 1, Port: 4444}.Describe(algos),
	)
	require.Equal(t, profit.Selection{Index: profit.NoIndex}, profit.NoResult.Describe(algos))
}
