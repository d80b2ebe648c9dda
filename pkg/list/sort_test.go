package list

import (
	"testing"

	"listlist/pkg/item"
)

func TestSortAlpha(t *testing.T) {
	l := New(newMemoryPersistence(), item.Settings{})
	l.Add("banana").Add("apple").Add("cherry")

	l.Sort(item.SortAlpha)

	want := []string{"apple", "banana", "cherry"}
	got := values(l)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if l.Settings().Sort != item.SortAlpha {
		t.Errorf("sort mode not recorded, got %q", l.Settings().Sort)
	}
}

func TestSortChecked(t *testing.T) {
	l := New(newMemoryPersistence(), item.Settings{})
	l.Add("done b").Add("open a").Add("done a").Add("open b")
	l.Toggle(0).Toggle(2)

	l.Sort(item.SortChecked)

	want := []string{"open a", "open b", "done a", "done b"}
	got := values(l)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortRemaining(t *testing.T) {
	l := New(newMemoryPersistence(), item.Settings{})

	l.Add("no deadline")
	l.Add("three days")
	l.ItemAt(1).Deadline = "x"
	l.ItemAt(1).DaysLeft = 3
	l.Add("one day")
	l.ItemAt(2).Deadline = "x"
	l.ItemAt(2).DaysLeft = 1
	l.Add("done tomorrow")
	l.ItemAt(3).Deadline = "x"
	l.ItemAt(3).DaysLeft = 1
	l.Toggle(3)

	l.Sort(item.SortRemaining)

	want := []string{"one day", "done tomorrow", "three days", "no deadline"}
	got := values(l)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	l := New(newMemoryPersistence(), item.Settings{})
	l.Add("same").Add("same").Add("same")
	l.ItemAt(0).Details = "first"
	l.ItemAt(1).Details = "second"
	l.ItemAt(2).Details = "third"

	l.Sort(item.SortAlpha)

	if l.ItemAt(0).Details != "first" || l.ItemAt(1).Details != "second" || l.ItemAt(2).Details != "third" {
		t.Errorf("equal items must keep their relative order")
	}
}

func TestSortCustomIsNoOpAndNeverRecorded(t *testing.T) {
	l := New(newMemoryPersistence(), item.Settings{Sort: item.SortAlpha})
	l.Add("b").Add("a")

	l.Sort(item.SortCustom)

	if got := values(l); got[0] != "b" {
		t.Errorf("custom sort must not move items, got %v", got)
	}
	if l.Settings().Sort != item.SortAlpha {
		t.Errorf("custom must not be recorded by Sort, got %q", l.Settings().Sort)
	}
}
