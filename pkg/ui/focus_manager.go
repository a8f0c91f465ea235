package ui

import "github.com/rivo/tview"

// FocusManager cycles focus through the primitives a page exposes via Focusable.
type FocusManager struct {
	app AppInterface
}

// NewFocusManager creates a new focus manager.
func NewFocusManager(app AppInterface) *FocusManager {
	return &FocusManager{app: app}
}

// Cycle moves the focus to the next or previous primitive of root. It
// returns false when root has nothing to cycle through.
func (fm *FocusManager) Cycle(root tview.Primitive, forward bool) bool {
	focusable, ok := root.(Focusable)
	if !ok {
		return false
	}
	chain := focusable.GetFocusablePrimitives()
	if len(chain) == 0 {
		return false
	}

	next := nextFocusIndex(chain, forward)
	fm.app.SetFocus(chain[next])
	return true
}

// nextFocusIndex finds the entry that currently holds focus (or contains the
// focused primitive) and returns the index of its neighbour.
func nextFocusIndex(chain []tview.Primitive, forward bool) int {
	current := -1
	for i, p := range chain {
		if p.HasFocus() {
			current = i
			break
		}
	}
	if current == -1 {
		return 0
	}
	if forward {
		return (current + 1) % len(chain)
	}
	return (current - 1 + len(chain)) % len(chain)
}
