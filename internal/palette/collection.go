// Package palette holds the active palette being edited: an ordered list of
// colour records with a single selected index, and the session that drives
// every edit through the colour engine.
package palette

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

var (
	// ErrEmptyPalette is returned when there is no palette to operate on.
	ErrEmptyPalette = errors.New("palette is empty")

	// ErrLastColour is returned when removing the only remaining colour.
	ErrLastColour = errors.New("palette must keep at least one colour")

	// ErrIndexOutOfRange is returned for a selection or removal outside the palette.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Snapshot is an immutable view of the collection at one instant.
type Snapshot struct {
	swatches []colour.Swatch
	selected int
}

// Len returns the number of colours in the snapshot.
func (s *Snapshot) Len() int { return len(s.swatches) }

// Selected returns the selected index.
func (s *Snapshot) Selected() int { return s.selected }

// Swatches returns a copy of the colours in display order.
func (s *Snapshot) Swatches() []colour.Swatch {
	out := make([]colour.Swatch, len(s.swatches))
	copy(out, s.swatches)
	return out
}

// At returns the colour at index.
func (s *Snapshot) At(index int) (colour.Swatch, error) {
	if index < 0 || index >= len(s.swatches) {
		return colour.Swatch{}, fmt.Errorf("%w: %d (palette has %d colours)", ErrIndexOutOfRange, index, len(s.swatches))
	}
	return s.swatches[index], nil
}

// All returns an iterator over the colours in display order.
func (s *Snapshot) All() func(func(int, colour.Swatch) bool) {
	return func(yield func(int, colour.Swatch) bool) {
		for i, c := range s.swatches {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Collection is the ordered palette plus selection. Every change builds a new
// Snapshot and swaps it in whole, so readers never observe a half-applied edit.
type Collection struct {
	mu    sync.Mutex // serialises writers
	state atomic.Pointer[Snapshot]
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	c := &Collection{}
	c.state.Store(&Snapshot{})
	return c
}

// Snapshot returns the current state.
func (c *Collection) Snapshot() *Snapshot {
	return c.state.Load()
}

// Len returns the number of colours.
func (c *Collection) Len() int {
	return c.Snapshot().Len()
}

// Selected returns the selected index.
func (c *Collection) Selected() int {
	return c.Snapshot().Selected()
}

// Current returns the selected colour.
func (c *Collection) Current() (colour.Swatch, error) {
	snap := c.Snapshot()
	if snap.Len() == 0 {
		return colour.Swatch{}, ErrEmptyPalette
	}
	return snap.swatches[snap.selected], nil
}

// Replace swaps in a whole new palette and selects its first colour.
func (c *Collection) Replace(swatches []colour.Swatch) error {
	if len(swatches) == 0 {
		return ErrEmptyPalette
	}
	next := make([]colour.Swatch, len(swatches))
	copy(next, swatches)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Store(&Snapshot{swatches: next, selected: 0})
	return nil
}

// Append adds a colour at the end and selects it. It returns the new index.
func (c *Collection) Append(s colour.Swatch) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Load()
	next := make([]colour.Swatch, len(cur.swatches), len(cur.swatches)+1)
	copy(next, cur.swatches)
	next = append(next, s)

	idx := len(next) - 1
	c.state.Store(&Snapshot{swatches: next, selected: idx})
	return idx
}

// Remove deletes the colour at index. The last remaining colour cannot be
// removed. When the removed index is at or before the selection, the selection
// moves to max(0, index-1).
func (c *Collection) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Load()
	n := len(cur.swatches)
	if n <= 1 {
		return ErrLastColour
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d (palette has %d colours)", ErrIndexOutOfRange, index, n)
	}

	next := make([]colour.Swatch, 0, n-1)
	next = append(next, cur.swatches[:index]...)
	next = append(next, cur.swatches[index+1:]...)

	selected := cur.selected
	if index <= selected {
		selected = max(0, index-1)
	}
	selected = min(selected, len(next)-1)

	c.state.Store(&Snapshot{swatches: next, selected: selected})
	return nil
}

// Select changes the selected index.
func (c *Collection) Select(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Load()
	if index < 0 || index >= len(cur.swatches) {
		return fmt.Errorf("%w: %d (palette has %d colours)", ErrIndexOutOfRange, index, len(cur.swatches))
	}
	c.state.Store(&Snapshot{swatches: cur.swatches, selected: index})
	return nil
}

// Set replaces the colour at index, keeping the selection.
func (c *Collection) Set(index int, s colour.Swatch) error {
	return c.update(func(swatches []colour.Swatch) error {
		if index < 0 || index >= len(swatches) {
			return fmt.Errorf("%w: %d (palette has %d colours)", ErrIndexOutOfRange, index, len(swatches))
		}
		swatches[index] = s
		return nil
	})
}

// SetAll replaces every colour in place with the output of fn, keeping order
// and selection. fn must return exactly as many colours as it is given.
func (c *Collection) SetAll(fn func([]colour.Swatch) []colour.Swatch) error {
	return c.update(func(swatches []colour.Swatch) error {
		out := fn(swatches)
		if len(out) != len(swatches) {
			return fmt.Errorf("palette transform changed size from %d to %d", len(swatches), len(out))
		}
		copy(swatches, out)
		return nil
	})
}

// update applies fn to a private copy of the palette and publishes it.
func (c *Collection) update(fn func([]colour.Swatch) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Load()
	if len(cur.swatches) == 0 {
		return ErrEmptyPalette
	}
	next := make([]colour.Swatch, len(cur.swatches))
	copy(next, cur.swatches)
	if err := fn(next); err != nil {
		return err
	}
	c.state.Store(&Snapshot{swatches: next, selected: cur.selected})
	return nil
}
