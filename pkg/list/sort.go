package list

import (
	"sort"

	"listlist/pkg/item"
)

// sortItems applies one of the sort modes in place. Every mode is stable:
// equal keys preserve their relative order. Custom never reorders.
func sortItems(items []item.Item, mode item.SortMode) {
	switch mode {
	case item.SortAlpha:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Value < items[j].Value
		})
	case item.SortChecked:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Checked != items[j].Checked {
				// Unchecked before checked.
				return !items[i].Checked
			}
			return items[i].Value < items[j].Value
		})
	case item.SortRemaining:
		sort.SliceStable(items, func(i, j int) bool {
			di, dj := items[i].DaysLeft, items[j].DaysLeft
			if di != dj {
				// No deadline sorts to the end, treated as +infinity.
				if di <= item.NoDeadline {
					return false
				}
				if dj <= item.NoDeadline {
					return true
				}
				return di < dj
			}
			if items[i].Checked != items[j].Checked {
				return !items[i].Checked
			}
			return items[i].Value < items[j].Value
		})
	case item.SortCustom:
		// Manual order preserved.
	}
}
