package item

import (
	"encoding/json"
	"testing"
)

func TestNewItemDefaults(t *testing.T) {
	it := New("write tests")

	if it.Value != "write tests" {
		t.Errorf("value = %q", it.Value)
	}
	if it.Checked {
		t.Errorf("new items start unchecked")
	}
	if it.DaysLeft != NoDeadline {
		t.Errorf("daysLeft = %d, want %d", it.DaysLeft, NoDeadline)
	}
	if it.Deadline != "" || it.Details != "" {
		t.Errorf("deadline and details start empty")
	}
}

func TestParseSortMode(t *testing.T) {
	for _, s := range []string{"alpha", "checked", "remaining", "custom"} {
		mode, err := ParseSortMode(s)
		if err != nil {
			t.Errorf("ParseSortMode(%q): %v", s, err)
		}
		if string(mode) != s {
			t.Errorf("ParseSortMode(%q) = %q", s, mode)
		}
	}

	if _, err := ParseSortMode("reverse"); err == nil {
		t.Errorf("unknown modes must fail")
	}
}

func TestSettingsMerge(t *testing.T) {
	base := DefaultSettings()

	got := base.Merge(Settings{})
	if got != base {
		t.Errorf("merging empty settings must change nothing, got %+v", got)
	}

	got = base.Merge(Settings{Sort: SortRemaining})
	if got.Sort != SortRemaining || got.StorageKey != DefaultStorageKey {
		t.Errorf("partial merge wrong: %+v", got)
	}

	got = base.Merge(Settings{StorageKey: "groceries", Sort: SortChecked})
	if got.StorageKey != "groceries" || got.Sort != SortChecked {
		t.Errorf("full merge wrong: %+v", got)
	}
}

func TestStateWireFormat(t *testing.T) {
	st := NewState()
	st.Items = append(st.Items, New("a"))

	blob, err := json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}

	// The settings key keeps its legacy wire name.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"items", "undoStack", "settings"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("blob missing %q: %s", field, blob)
		}
	}

	var settings map[string]json.RawMessage
	if err := json.Unmarshal(raw["settings"], &settings); err != nil {
		t.Fatal(err)
	}
	if _, ok := settings["hash"]; !ok {
		t.Errorf("settings must keep the legacy hash field: %s", raw["settings"])
	}
}
