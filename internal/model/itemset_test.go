package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemSetAddSub(t *testing.T) {
	a := NewItemSet()
	b := NewItemSet()
	t1 := NewBoxType(1, 10, 10, 10)
	t2 := NewBoxType(2, 20, 10, 10)

	a.AddItem(t1, 3)
	b.AddItem(t1, 1)
	b.AddItem(t2, 2)

	a.Add(b)
	assert.Equal(t, 4, a.Count(1))
	assert.Equal(t, 2, a.Count(2))

	a.Sub(b)
	assert.Equal(t, 3, a.Count(1))
	assert.Equal(t, 0, a.Count(2))
}

func TestItemSetNegativeCounts(t *testing.T) {
	// Counts may go transiently negative during subtraction; comparison
	// against a reference pool still works.
	a := NewItemSet()
	b := NewItemSet()
	t1 := NewBoxType(1, 10, 10, 10)

	a.AddItem(t1, 1)
	b.AddItem(t1, 3)

	a.Sub(b)
	assert.Equal(t, -2, a.Count(1))
	assert.True(t, a.LessEqual(NewItemSet()))
}

func TestItemSetLessEqual(t *testing.T) {
	a := NewItemSet()
	pool := NewItemSet()
	t1 := NewBoxType(1, 10, 10, 10)
	t2 := NewBoxType(2, 20, 10, 10)

	a.AddItem(t1, 2)
	pool.AddItem(t1, 2)
	assert.True(t, a.LessEqual(pool))

	a.AddItem(t2, 1)
	assert.False(t, a.LessEqual(pool), "missing key in pool counts as zero")

	pool.AddItem(t2, 5)
	assert.True(t, a.LessEqual(pool))

	a.AddItem(t1, 1)
	assert.False(t, a.LessEqual(pool))
}

func TestItemSetCloneIsIndependent(t *testing.T) {
	a := NewItemSet()
	t1 := NewBoxType(1, 10, 10, 10)
	a.AddItem(t1, 2)

	c := a.Clone()
	c.AddItem(t1, 5)

	assert.Equal(t, 2, a.Count(1))
	assert.Equal(t, 7, c.Count(1))
}

func TestItemSetTotals(t *testing.T) {
	s := NewItemSet()
	t1 := NewBoxType(1, 10, 10, 10) // volume 1000, weight 1
	t2 := NewBoxType(2, 20, 10, 10) // volume 2000
	t2.Weight = 3

	s.AddItem(t1, 2)
	s.AddItem(t2, 1)

	assert.Equal(t, 4000, s.TotalVolume())
	assert.Equal(t, 5, s.TotalWeight())
	assert.Equal(t, 3, s.TotalCount())
}

func TestItemSetEachIsOrdered(t *testing.T) {
	s := NewItemSet()
	s.AddItem(NewBoxType(3, 1, 1, 1), 1)
	s.AddItem(NewBoxType(1, 1, 1, 1), 1)
	s.AddItem(NewBoxType(2, 1, 1, 1), 1)

	var ids []int
	s.Each(func(bt BoxType, n int) {
		ids = append(ids, bt.ID)
	})
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestItemSetCountsDropsZeros(t *testing.T) {
	s := NewItemSet()
	t1 := NewBoxType(1, 1, 1, 1)
	s.AddItem(t1, 2)
	s.AddItem(NewBoxType(2, 1, 1, 1), 0)

	counts := s.Counts()
	assert.Equal(t, map[int]int{1: 2}, counts)
}
