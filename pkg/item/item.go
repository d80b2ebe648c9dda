package item

import (
	"encoding/json"
	"fmt"
)

// NoDeadline is the DaysLeft sentinel for "no deadline or not yet computed".
const NoDeadline = -1

// New returns an unchecked item with the given value and no deadline.
func New(value string) Item {
	return Item{
		Value:    value,
		Checked:  false,
		DaysLeft: NoDeadline,
		Deadline: "",
		Details:  "",
	}
}

// Item is one checklist entry.
//
// DaysLeft is a non-authoritative cache derived from Deadline; it is
// recomputed before every render or sort that depends on it and reset to
// NoDeadline whenever Deadline is cleared.
type Item struct {
	Value    string `json:"value"`
	Checked  bool   `json:"checked"`
	DaysLeft int    `json:"daysLeft"`
	Deadline string `json:"deadline"`
	Details  string `json:"details"`
}

func (i Item) String() string {
	box := "[ ]"
	if i.Checked {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, i.Value)
}

// SortMode selects the ordering strategy for the list.
type SortMode string

const (
	SortAlpha     SortMode = "alpha"
	SortChecked   SortMode = "checked"
	SortRemaining SortMode = "remaining"

	// SortCustom means the user reordered by hand; automatic sorting is
	// disabled until another mode is chosen. It is set only by reorder,
	// never recorded by Sort itself.
	SortCustom SortMode = "custom"
)

// ParseSortMode maps a mode name onto a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortAlpha, SortChecked, SortRemaining, SortCustom:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("item: unknown sort mode %q", s)
}

// DefaultStorageKey names the persisted blob when no key is configured.
const DefaultStorageKey = "ListList"

// Settings travel inside the persisted blob. StorageKey keeps the legacy
// "hash" wire name.
type Settings struct {
	StorageKey string   `json:"hash"`
	Sort       SortMode `json:"sort"`
}

// DefaultSettings returns the settings used before any are loaded.
func DefaultSettings() Settings {
	return Settings{
		StorageKey: DefaultStorageKey,
		Sort:       SortAlpha,
	}
}

// Merge overlays stored settings on top of s; stored values win on
// collision, empty stored fields keep the current value.
func (s Settings) Merge(stored Settings) Settings {
	out := s
	if stored.StorageKey != "" {
		out.StorageKey = stored.StorageKey
	}
	if stored.Sort != "" {
		out.Sort = stored.Sort
	}
	return out
}

// State is the unit of persistence: the full snapshot written under the
// storage key on every mutation.
//
// UndoStack is a schema placeholder carried for forward compatibility; it
// is serialized but never populated.
type State struct {
	Items     []Item            `json:"items"`
	UndoStack []json.RawMessage `json:"undoStack"`
	Settings  Settings          `json:"settings"`
}

// NewState returns an empty state with default settings.
func NewState() State {
	return State{
		Items:     []Item{},
		UndoStack: []json.RawMessage{},
		Settings:  DefaultSettings(),
	}
}
