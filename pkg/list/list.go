// Package list owns the in-memory checklist model: the ordered items, the
// active settings, and every mutation the surfaces drive. Operations return
// the model itself so callers can chain mutate-save-refresh sequences.
package list

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"listlist/pkg/item"
	"listlist/pkg/store"
	"listlist/pkg/timeutil"
)

// List holds one State for the lifetime of the process and persists it
// whole through the store on every Save.
type List struct {
	state item.State
	store store.Persistence

	// now is swappable so deadline math is testable.
	now func() time.Time
}

// New constructs an empty list bound to the given persistence. A zero
// settings value falls back to defaults.
func New(p store.Persistence, settings item.Settings) *List {
	s := item.DefaultSettings().Merge(settings)
	st := item.NewState()
	st.Settings = s
	return &List{
		state: st,
		store: p,
		now:   time.Now,
	}
}

// Load reads the stored blob for the configured key. A missing or
// unparsable blob resets to empty state and keeps the current settings;
// load never raises. Stored settings win over current ones on collision.
func (l *List) Load() *List {
	blob, err := l.store.Read(l.state.Settings.StorageKey)
	if err != nil {
		l.state.Items = []item.Item{}
		l.state.UndoStack = []json.RawMessage{}
		return l
	}

	var loaded item.State
	if err := json.Unmarshal(blob, &loaded); err != nil {
		l.state.Items = []item.Item{}
		l.state.UndoStack = []json.RawMessage{}
		return l
	}

	l.state.Items = loaded.Items
	if l.state.Items == nil {
		l.state.Items = []item.Item{}
	}
	l.state.UndoStack = loaded.UndoStack
	if l.state.UndoStack == nil {
		l.state.UndoStack = []json.RawMessage{}
	}
	l.state.Settings = l.state.Settings.Merge(loaded.Settings)
	return l
}

// Save serializes the whole state as one blob and overwrites the prior
// contents under the configured key.
func (l *List) Save() *List {
	blob, err := json.Marshal(l.state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list: marshal state: %v\n", err)
		return l
	}
	if err := l.store.Write(l.state.Settings.StorageKey, blob); err != nil {
		fmt.Fprintf(os.Stderr, "list: %v\n", err)
	}
	return l
}

// Add constructs a new item with the given value and default fields and
// appends it, or inserts it at the optional index (clamped to bounds).
func (l *List) Add(value string, index ...int) *List {
	it := item.New(value)
	if len(index) == 0 {
		l.state.Items = append(l.state.Items, it)
		return l
	}

	at := index[0]
	if at < 0 {
		at = 0
	}
	if at > len(l.state.Items) {
		at = len(l.state.Items)
	}
	l.state.Items = append(l.state.Items, item.Item{})
	copy(l.state.Items[at+1:], l.state.Items[at:])
	l.state.Items[at] = it
	return l
}

// EditValue replaces the value of the item at index. Out-of-range indexes
// are a no-op.
func (l *List) EditValue(index int, newValue string) *List {
	if index < 0 || index >= len(l.state.Items) {
		return l
	}
	l.state.Items[index].Value = newValue
	return l
}

// DeleteValue removes the item at index. Out-of-range indexes are a no-op.
func (l *List) DeleteValue(index int) *List {
	if index < 0 || index >= len(l.state.Items) {
		return l
	}
	l.state.Items = append(l.state.Items[:index], l.state.Items[index+1:]...)
	return l
}

// Toggle flips the checked flag of the item at index. Out-of-range indexes
// are a no-op.
func (l *List) Toggle(index int) *List {
	if index < 0 || index >= len(l.state.Items) {
		return l
	}
	l.state.Items[index].Checked = !l.state.Items[index].Checked
	return l
}

// Clean removes every checked item, preserving the relative order of the
// remainder.
func (l *List) Clean() *List {
	kept := l.state.Items[:0]
	for _, it := range l.state.Items {
		if !it.Checked {
			kept = append(kept, it)
		}
	}
	l.state.Items = kept
	return l
}

// Sort reorders the items in place by the given mode and records the mode
// in the settings, unless the mode is custom: custom is only ever set by
// Reorder and never sorts.
func (l *List) Sort(mode item.SortMode) *List {
	sortItems(l.state.Items, mode)
	if mode != item.SortCustom {
		l.state.Settings.Sort = mode
	}
	return l
}

// CalcDays recomputes the cached DaysLeft for every item with a deadline.
// Unparsable deadlines resolve to the no-deadline sentinel rather than an
// error. Items without a deadline keep their last cached value.
func (l *List) CalcDays() *List {
	now := l.now()
	for i := range l.state.Items {
		if l.state.Items[i].Deadline == "" {
			continue
		}
		deadline, err := timeutil.ParseDeadline(l.state.Items[i].Deadline)
		if err != nil {
			l.state.Items[i].DaysLeft = item.NoDeadline
			continue
		}
		l.state.Items[i].DaysLeft = timeutil.DaysUntil(deadline, now)
	}
	return l
}

// Reorder reconciles the model order with the visual order observed after a
// drag gesture. visual holds the model index displayed at each screen
// position. The first two positions whose rendered index disagrees with the
// model index are swapped and nothing else moves; this models a single
// pairwise move and deliberately does not reconstruct arbitrary
// permutations (a drag across several positions corrects only the first
// mismatching pair). Any reorder switches the sort mode to custom.
func (l *List) Reorder(visual []int) *List {
	if len(visual) != len(l.state.Items) {
		return l
	}

	first := -1
	for pos, modelIdx := range visual {
		if modelIdx == pos {
			continue
		}
		if modelIdx < 0 || modelIdx >= len(l.state.Items) {
			return l
		}
		if first < 0 {
			first = pos
			continue
		}
		l.state.Items[first], l.state.Items[pos] = l.state.Items[pos], l.state.Items[first]
		break
	}

	l.state.Settings.Sort = item.SortCustom
	return l
}

// Refresh runs the canonical pre-render sequence: days first, sort second.
// The remaining sort depends on fresh DaysLeft values, so the order is
// load-bearing.
func (l *List) Refresh() *List {
	return l.CalcDays().Sort(l.state.Settings.Sort)
}

// Items returns the current item sequence. The slice is shared with the
// model; surfaces treat it as read-only and mutate through the operations.
func (l *List) Items() []item.Item {
	return l.state.Items
}

// ItemAt returns a pointer to the item at index so an editor can write
// fields back, or nil when the index is stale.
func (l *List) ItemAt(index int) *item.Item {
	if index < 0 || index >= len(l.state.Items) {
		return nil
	}
	return &l.state.Items[index]
}

// Len reports the number of items.
func (l *List) Len() int {
	return len(l.state.Items)
}

// Settings returns the active settings snapshot.
func (l *List) Settings() item.Settings {
	return l.state.Settings
}

// SetNow swaps the clock used for deadline math.
func (l *List) SetNow(now func() time.Time) {
	l.now = now
}
