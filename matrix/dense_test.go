package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	t.Parallel()

	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(sh[0], sh[1])
		assert.ErrorIs(t, err, matrix.ErrBadShape, "shape %v", sh)
	}
}

func TestDense_AccessorsAndBounds(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	require.NoError(t, d.Set(1, 2, 7))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = d.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RowAndCloneAreCopies(t *testing.T) {
	t.Parallel()

	d := mustRows(t, [][]int64{{0, 1}, {2, 0}})

	row, err := d.Row(0)
	require.NoError(t, err)
	row[1] = 99
	assert.Equal(t, int64(1), at(t, d, 0, 1))

	c := d.Clone()
	require.NoError(t, c.Set(1, 0, 50))
	assert.Equal(t, int64(2), at(t, d, 1, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	d := mustRows(t, [][]int64{{0, inf}, {3, 0}})
	assert.Equal(t, "[0, INF]\n[3, 0]\n", d.String())
}

func TestFromRows_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int64{{}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int64{{0, 1}, {0}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int64{{0, 1, 2}, {1, 0, 2}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([][]int64{{1, 1}, {1, 0}})
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	_, err = matrix.FromRows([][]int64{{0, -3}, {1, 0}})
	assert.ErrorIs(t, err, matrix.ErrInvalidWeight)
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestFromGraph(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddEdgeByName("A", "B", 6))
	require.NoError(t, g.AddEdgeByName("A", "B", 2))
	require.NoError(t, g.AddEdgeByName("B", "B", 3))
	_, err = g.AddVertex("C")
	require.NoError(t, err)

	d, err := matrix.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, "[0, 2, INF]\n[INF, 0, INF]\n[INF, INF, 0]\n", d.String())
	assert.NoError(t, matrix.ValidateDistances(d))
}
