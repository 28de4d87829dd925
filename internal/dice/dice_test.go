package dice

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollLiteral(t *testing.T) {
	for _, n := range []int{1, 7, 42, 100, 999999} {
		got, err := Roll(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestRollAssociativity(t *testing.T) {
	got, err := Roll("1+2-3")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestRollPrecedence(t *testing.T) {
	// The roll resolves before the addition; with pinned draws the result
	// is exactly 1 + 4 + 2.
	got, err := RollWith("1+2d6", NewSequenceSource(4, 2))
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestDetail(t *testing.T) {
	res, err := Detail("2d20+10-2", NewSequenceSource(13, 5))
	require.NoError(t, err)

	assert.Equal(t, 26, res.Total)
	assert.Equal(t, []int{13, 5}, res.Draws)
	assert.Equal(t, "(- (+ (d 2 20) 10) 2)", res.Tree.String())
}

func TestDetailNoDiceNoDraws(t *testing.T) {
	res, err := Detail("1+2", CryptoSource())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Empty(t, res.Draws)
}

func TestRollSurfacesFirstError(t *testing.T) {
	_, err := Roll("2x3")
	require.Error(t, err)

	var unexpected *UnexpectedCharacterError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, 'x', unexpected.Char)
}
