package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() ItemList {
	return ItemList{
		{ID: "1", Name: "Milk", Quantity: 2, Priority: PriorityLow},
		{ID: "2", Name: "Bread", Quantity: 1, Priority: PriorityHigh, Checked: true},
	}
}

func TestSetChecked(t *testing.T) {
	items := sampleItems()
	next := SetChecked(items, "1", true)

	assert.True(t, next[0].Checked)
	assert.False(t, items[0].Checked, "input must not be mutated")

	// unknown id is a no-op
	same := SetChecked(items, "missing", true)
	assert.Equal(t, items, same)
}

func TestAdjustQuantityFloorZero(t *testing.T) {
	items := ItemList{{ID: "1", Name: "Milk", Quantity: 1}}
	next := AdjustQuantity(items, "1", -5, 0)
	assert.Equal(t, 0, next[0].Quantity, "quantity never goes negative")
}

func TestAdjustQuantityFloorOne(t *testing.T) {
	items := ItemList{{ID: "1", Name: "Milk", Quantity: 3}}
	next := AdjustQuantity(items, "1", -10, 1)
	assert.Equal(t, 1, next[0].Quantity)

	next = AdjustQuantity(next, "1", 4, 1)
	assert.Equal(t, 5, next[0].Quantity)
}

func TestAdjustQuantityDoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	_ = AdjustQuantity(items, "1", 7, 0)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAppendItemPreservesOrder(t *testing.T) {
	items := sampleItems()
	next := AppendItem(items, Item{ID: "3", Name: "Eggs", Quantity: 12})

	require.Len(t, next, 3)
	assert.Equal(t, "1", next[0].ID)
	assert.Equal(t, "2", next[1].ID)
	assert.Equal(t, "3", next[2].ID)
	assert.Len(t, items, 2, "input must not be mutated")
}

func TestRemoveItem(t *testing.T) {
	items := sampleItems()
	next := RemoveItem(items, "1")

	require.Len(t, next, 1)
	assert.Equal(t, "2", next[0].ID)

	// unknown id is a no-op
	same := RemoveItem(items, "missing")
	assert.Equal(t, items, same)
}

func TestSetDetailsMergesPartialFields(t *testing.T) {
	items := sampleItems()
	details := "2% fat"
	priority := PriorityMedium

	next := SetDetails(items, "1", ItemPatch{Details: &details, Priority: &priority})

	assert.Equal(t, "2% fat", next[0].Details)
	assert.Equal(t, PriorityMedium, next[0].Priority)
	assert.Empty(t, next[0].PhotoURL, "absent fields stay untouched")
	assert.Equal(t, PriorityLow, items[0].Priority, "input must not be mutated")
}

func TestSetDetailsNilPatchLeavesItemAlone(t *testing.T) {
	items := sampleItems()
	next := SetDetails(items, "2", ItemPatch{})
	assert.Equal(t, items, next)
}
