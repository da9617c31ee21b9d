package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int
	Name string
	Tag  string
}

func newRowTable(unique bool) *table[row] {
	var key func(row) string
	if unique {
		key = func(r row) string { return r.Name }
	}
	return newTable("row",
		func(r row) int { return r.ID },
		func(r *row, id int) { r.ID = id },
		key)
}

func TestTableInsertAssignsIncreasingIDs(t *testing.T) {
	tbl := newRowTable(false)

	a, err := tbl.insert(row{Name: "a"})
	require.NoError(t, err)
	b, err := tbl.insert(row{Name: "b", ID: 99})
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID, "caller supplied ids are ignored")
}

func TestTableIDsAreNeverReused(t *testing.T) {
	tbl := newRowTable(false)

	first, _ := tbl.insert(row{Name: "a"})
	assert.True(t, tbl.remove(first.ID))

	second, err := tbl.insert(row{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestTableUniqueKeyConflictLeavesTableUnchanged(t *testing.T) {
	tbl := newRowTable(true)

	_, err := tbl.insert(row{Name: "a"})
	require.NoError(t, err)

	_, err = tbl.insert(row{Name: "a"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, tbl.len())

	next, err := tbl.insert(row{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID, "a rejected insert does not consume an id")
}

func TestTableUpdateMergesAndKeepsID(t *testing.T) {
	tbl := newRowTable(false)
	r, _ := tbl.insert(row{Name: "a", Tag: "x"})

	updated, err := tbl.update(r.ID, func(r *row) {
		r.Tag = "y"
		r.ID = 42
	})
	require.NoError(t, err)
	assert.Equal(t, row{ID: r.ID, Name: "a", Tag: "y"}, updated)

	stored, err := tbl.get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestTableUpdateMissingRow(t *testing.T) {
	tbl := newRowTable(false)
	_, _ = tbl.insert(row{Name: "a"})

	_, err := tbl.update(7, func(r *row) { r.Name = "changed" })
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []row{{ID: 1, Name: "a"}}, tbl.list(nil))
}

func TestTableUpdateRekeysIndex(t *testing.T) {
	tbl := newRowTable(true)
	a, _ := tbl.insert(row{Name: "a"})
	_, _ = tbl.insert(row{Name: "b"})

	_, err := tbl.update(a.ID, func(r *row) { r.Name = "b" })
	require.ErrorIs(t, err, ErrConflict)

	_, err = tbl.update(a.ID, func(r *row) { r.Name = "c" })
	require.NoError(t, err)

	_, found := tbl.lookup("a")
	assert.False(t, found)
	got, found := tbl.lookup("c")
	assert.True(t, found)
	assert.Equal(t, a.ID, got.ID)
}

func TestTableRemove(t *testing.T) {
	tbl := newRowTable(true)
	r, _ := tbl.insert(row{Name: "a"})

	assert.True(t, tbl.remove(r.ID))
	assert.False(t, tbl.remove(r.ID))

	_, err := tbl.get(r.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tbl.insert(row{Name: "a"})
	assert.NoError(t, err, "removing a row frees its unique key")
}

func TestTableListFiltersInIDOrder(t *testing.T) {
	tbl := newRowTable(false)
	for _, tag := range []string{"x", "y", "x", "x"} {
		_, _ = tbl.insert(row{Tag: tag})
	}

	got := tbl.list(func(r row) bool { return r.Tag == "x" })
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{got[0].ID, got[1].ID, got[2].ID})
}
