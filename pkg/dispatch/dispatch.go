// Package dispatch turns one line of free text into a list operation:
// a recognized command runs as-is, anything else becomes a new item.
package dispatch

import (
	"strings"

	"listlist/pkg/item"
	"listlist/pkg/list"
)

// Result reports what a submitted line did, so a surface knows whether to
// clear its input and redraw.
type Result int

const (
	// NoOp means the input was empty and nothing happened.
	NoOp Result = iota
	// Command means a recognized command ran.
	Command
	// Added means the input became a new item.
	Added
)

// Dispatcher maps submitted lines onto operations of one list model.
type Dispatcher struct {
	list *list.List

	commands map[string]func(l *list.List)
}

// New builds a dispatcher bound to the given list. Both the long command
// names and their short aliases are registered.
func New(l *list.List) *Dispatcher {
	d := &Dispatcher{list: l}

	clean := func(l *list.List) { l.Clean() }
	alpha := func(l *list.List) { l.Sort(item.SortAlpha) }
	remaining := func(l *list.List) { l.Sort(item.SortRemaining) }
	checked := func(l *list.List) { l.Sort(item.SortChecked) }

	d.commands = map[string]func(l *list.List){
		"clean":          clean,
		"cln":            clean,
		"sort-alpha":     alpha,
		"sa":             alpha,
		"sort-remaining": remaining,
		"sr":             remaining,
		"sort-checked":   checked,
		"sc":             checked,
	}
	return d
}

// Submit consumes one line of input. Recognized commands (exact match after
// trimming) invoke the corresponding operation; any other non-empty input
// adds a new item with that text; empty input is a no-op. Every effectful
// submit saves and refreshes the list.
func (d *Dispatcher) Submit(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return NoOp
	}

	if run, ok := d.commands[input]; ok {
		run(d.list)
		d.list.Save().Refresh()
		return Command
	}

	d.list.Add(input).Save().Refresh()
	return Added
}

// Commands lists the recognized command names, long forms first; surfaces
// use it for help text and suggestions.
func (d *Dispatcher) Commands() []string {
	return []string{
		"clean", "cln",
		"sort-alpha", "sa",
		"sort-remaining", "sr",
		"sort-checked", "sc",
	}
}
