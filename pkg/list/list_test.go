package list

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"listlist/pkg/item"
	"listlist/pkg/store"
)

// memoryPersistence is an in-memory store.Persistence for tests.
type memoryPersistence struct {
	blobs map[string][]byte
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{blobs: make(map[string][]byte)}
}

func (m *memoryPersistence) Read(key string) ([]byte, error) {
	b, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (m *memoryPersistence) Write(key string, blob []byte) error {
	m.blobs[key] = blob
	return nil
}

func (m *memoryPersistence) Erase(key string) error {
	delete(m.blobs, key)
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func fixedNow(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func values(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.Value)
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{StorageKey: "trip"})
	l.Add("apple").Add("banana").Toggle(1)
	l.ItemAt(0).Deadline = "2026-09-10"
	l.ItemAt(0).Details = "from the market"
	l.Save()

	got := New(p, item.Settings{StorageKey: "trip"}).Load()

	if got.Len() != 2 {
		t.Fatalf("expected 2 items after load, got %d", got.Len())
	}
	if got.ItemAt(0).Deadline != "2026-09-10" {
		t.Errorf("deadline lost in round trip: %q", got.ItemAt(0).Deadline)
	}
	if got.ItemAt(0).Details != "from the market" {
		t.Errorf("details lost in round trip: %q", got.ItemAt(0).Details)
	}
	if !got.ItemAt(1).Checked {
		t.Errorf("checked flag lost in round trip")
	}
}

func TestLoadMissingKeyResetsToEmpty(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{StorageKey: "missing"})
	l.Add("stale")
	l.Load()

	if l.Len() != 0 {
		t.Fatalf("expected empty list after loading a missing key, got %d items", l.Len())
	}
	if l.Settings().StorageKey != "missing" {
		t.Errorf("settings should survive a failed load, got key %q", l.Settings().StorageKey)
	}
}

func TestLoadMalformedBlobResetsToEmpty(t *testing.T) {
	p := newMemoryPersistence()
	p.blobs["bad"] = []byte("{not json")

	l := New(p, item.Settings{StorageKey: "bad"}).Load()

	if l.Len() != 0 {
		t.Fatalf("expected empty list after loading garbage, got %d items", l.Len())
	}
}

func TestLoadStoredSettingsWin(t *testing.T) {
	p := newMemoryPersistence()

	stored := item.NewState()
	stored.Settings.StorageKey = "theirs"
	stored.Settings.Sort = item.SortRemaining
	blob, err := json.Marshal(stored)
	if err != nil {
		t.Fatal(err)
	}
	p.blobs["mine"] = blob

	l := New(p, item.Settings{StorageKey: "mine"}).Load()

	if l.Settings().Sort != item.SortRemaining {
		t.Errorf("expected stored sort mode to win, got %q", l.Settings().Sort)
	}
	if l.Settings().StorageKey != "theirs" {
		t.Errorf("expected stored storage key to win, got %q", l.Settings().StorageKey)
	}
}

func TestAddAppendsAndInserts(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{})
	l.Add("b").Add("c").Add("a", 0)

	want := []string{"a", "b", "c"}
	got := values(l)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	// Out-of-bounds insert indexes clamp instead of failing.
	l.Add("z", 100).Add("first", -5)
	if v := values(l); v[0] != "first" || v[len(v)-1] != "z" {
		t.Errorf("expected clamped inserts at both ends, got %v", v)
	}
}

func TestMutationsIgnoreStaleIndexes(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{})
	l.Add("only")

	l.EditValue(5, "nope").DeleteValue(-1).Toggle(99)

	if l.Len() != 1 || l.ItemAt(0).Value != "only" || l.ItemAt(0).Checked {
		t.Errorf("stale indexes must not mutate the list: %+v", l.Items())
	}
}

func TestCleanDropsCheckedKeepsOrder(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{})
	l.Add("keep one").Add("done").Add("keep two").Toggle(1)

	l.Clean()

	got := values(l)
	if len(got) != 2 || got[0] != "keep one" || got[1] != "keep two" {
		t.Fatalf("expected [keep one, keep two], got %v", got)
	}
}

func TestCalcDays(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{})
	l.SetNow(fixedNow("2026-09-01"))

	l.Add("due in five")
	l.ItemAt(0).Deadline = "2026-09-06"
	l.Add("due today")
	l.ItemAt(1).Deadline = "2026-09-01"
	l.Add("overdue")
	l.ItemAt(2).Deadline = "2026-08-30"
	l.Add("garbage date")
	l.ItemAt(3).Deadline = "not a date"
	l.ItemAt(3).DaysLeft = 42
	l.Add("no deadline")

	l.CalcDays()

	cases := []struct {
		index int
		want  int
	}{
		{0, 5},
		{1, 0},
		{2, -2},
		{3, item.NoDeadline},
		{4, item.NoDeadline},
	}
	for _, tc := range cases {
		if got := l.ItemAt(tc.index).DaysLeft; got != tc.want {
			t.Errorf("item %d (%s): daysLeft = %d, want %d",
				tc.index, l.ItemAt(tc.index).Value, got, tc.want)
		}
	}
}

func TestRefreshCalcsDaysBeforeSorting(t *testing.T) {
	p := newMemoryPersistence()

	l := New(p, item.Settings{Sort: item.SortRemaining})
	l.SetNow(fixedNow("2026-09-01"))

	// Stale caches say "far" is urgent and "near" is not; a refresh must
	// recompute before ordering by remaining days.
	l.Add("far")
	l.ItemAt(0).Deadline = "2026-09-20"
	l.ItemAt(0).DaysLeft = 0
	l.Add("near")
	l.ItemAt(1).Deadline = "2026-09-02"
	l.ItemAt(1).DaysLeft = 30

	l.Refresh()

	if l.ItemAt(0).Value != "near" {
		t.Fatalf("expected near-deadline item first after refresh, got %v", values(l))
	}
}
