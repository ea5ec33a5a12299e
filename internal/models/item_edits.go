package models

// Pure helpers for editing a list's items collection. Each returns a new
// slice; the input is never mutated. Callers persist the result through a
// full list update, which replaces the items document atomically.

// ItemPatch carries the optional fields of a partial item edit. A nil field
// leaves the current value untouched; there is no way to clear a field, only
// to replace it.
type ItemPatch struct {
	Details  *string
	PhotoURL *string
	Priority *ItemPriority
}

// SetChecked sets the checked flag on the matching item. Unknown ids are a
// no-op.
func SetChecked(items ItemList, itemID string, checked bool) ItemList {
	next := cloneItems(items)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Checked = checked
		}
	}
	return next
}

// AdjustQuantity adds delta to the matching item's quantity, clamped at
// floor. The floor is caller-chosen: 0 where "wanted but not yet needed" is a
// valid state, 1 where every listed item implies at least one unit.
func AdjustQuantity(items ItemList, itemID string, delta, floor int) ItemList {
	next := cloneItems(items)
	for i := range next {
		if next[i].ID == itemID {
			q := next[i].Quantity + delta
			if q < floor {
				q = floor
			}
			next[i].Quantity = q
		}
	}
	return next
}

// AppendItem appends the item, preserving insertion order. The caller
// supplies an id unique within the list.
func AppendItem(items ItemList, item Item) ItemList {
	next := cloneItems(items)
	return append(next, item)
}

// RemoveItem filters out the matching item. Unknown ids are a no-op.
func RemoveItem(items ItemList, itemID string) ItemList {
	next := make(ItemList, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			next = append(next, it)
		}
	}
	return next
}

// SetDetails merges the patch into the matching item.
func SetDetails(items ItemList, itemID string, patch ItemPatch) ItemList {
	next := cloneItems(items)
	for i := range next {
		if next[i].ID != itemID {
			continue
		}
		if patch.Details != nil {
			next[i].Details = *patch.Details
		}
		if patch.PhotoURL != nil {
			next[i].PhotoURL = *patch.PhotoURL
		}
		if patch.Priority != nil {
			next[i].Priority = *patch.Priority
		}
	}
	return next
}

func cloneItems(items ItemList) ItemList {
	next := make(ItemList, len(items))
	copy(next, items)
	return next
}
