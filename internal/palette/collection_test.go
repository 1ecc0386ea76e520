package palette

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmylchreest/swatchbook/internal/colour"
)

func testSwatches(n int) []colour.Swatch {
	out := make([]colour.Swatch, n)
	for i := range out {
		out[i] = colour.NewSwatch(fmt.Sprintf("Color %d", i+1), colour.HSL{H: i * 40, S: 60, L: 20 + i*10}, colour.DefaultAlpha)
	}
	return out
}

func TestCollectionStartsEmpty(t *testing.T) {
	c := NewCollection()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	if _, err := c.Current(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Current() error = %v, want ErrEmptyPalette", err)
	}
	if err := c.Set(0, colour.Swatch{}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Set() error = %v, want ErrEmptyPalette", err)
	}
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection()
	if err := c.Replace(nil); !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("Replace(nil) error = %v, want ErrEmptyPalette", err)
	}

	if err := c.Replace(testSwatches(3)); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if err := c.Select(2); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if err := c.Replace(testSwatches(2)); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if c.Selected() != 0 {
		t.Errorf("Selected() = %d after Replace, want 0", c.Selected())
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCollectionReplaceCopiesInput(t *testing.T) {
	in := testSwatches(2)
	c := NewCollection()
	_ = c.Replace(in)
	in[0].Name = "mutated"

	cur, _ := c.Current()
	if cur.Name != "Color 1" {
		t.Errorf("collection shares its backing array with the caller")
	}
}

func TestCollectionAppendSelectsNew(t *testing.T) {
	c := NewCollection()
	_ = c.Replace(testSwatches(2))

	idx := c.Append(colour.SwatchFromHex("Color 3", "#123456", 0.5))
	if idx != 2 || c.Selected() != 2 || c.Len() != 3 {
		t.Fatalf("Append() idx=%d selected=%d len=%d", idx, c.Selected(), c.Len())
	}
}

func TestCollectionRemove(t *testing.T) {
	tests := []struct {
		name         string
		size         int
		selected     int
		remove       int
		wantErr      error
		wantLen      int
		wantSelected int
	}{
		{name: "last colour refused", size: 1, selected: 0, remove: 0, wantErr: ErrLastColour, wantLen: 1, wantSelected: 0},
		{name: "selected middle", size: 3, selected: 1, remove: 1, wantLen: 2, wantSelected: 0},
		{name: "selected first", size: 3, selected: 0, remove: 0, wantLen: 2, wantSelected: 0},
		{name: "selected last", size: 3, selected: 2, remove: 2, wantLen: 2, wantSelected: 1},
		{name: "before selection", size: 4, selected: 3, remove: 1, wantLen: 3, wantSelected: 0},
		{name: "after selection", size: 4, selected: 1, remove: 3, wantLen: 3, wantSelected: 1},
		{name: "out of range", size: 3, selected: 0, remove: 3, wantErr: ErrIndexOutOfRange, wantLen: 3, wantSelected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection()
			_ = c.Replace(testSwatches(tt.size))
			_ = c.Select(tt.selected)
			before := c.Snapshot()

			err := c.Remove(tt.remove)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Remove(%d) error = %v, want %v", tt.remove, err, tt.wantErr)
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			if c.Selected() != tt.wantSelected {
				t.Errorf("Selected() = %d, want %d", c.Selected(), tt.wantSelected)
			}
			if tt.wantErr != nil && c.Snapshot() != before {
				t.Error("rejected Remove published a new snapshot")
			}
		})
	}
}

func TestCollectionSelect(t *testing.T) {
	c := NewCollection()
	_ = c.Replace(testSwatches(3))

	for _, idx := range []int{-1, 3} {
		if err := c.Select(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Select(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if c.Selected() != 0 {
		t.Errorf("rejected Select changed selection to %d", c.Selected())
	}

	if err := c.Select(2); err != nil {
		t.Fatalf("Select(2) error = %v", err)
	}
	cur, _ := c.Current()
	if cur.Name != "Color 3" {
		t.Errorf("Current() = %s, want Color 3", cur.Name)
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	c := NewCollection()
	_ = c.Replace(testSwatches(2))
	old := c.Snapshot()

	if err := c.Set(0, colour.SwatchFromHex("Color 1", "#000000", 1)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.SetAll(func(s []colour.Swatch) []colour.Swatch { return colour.RotatePalette(s, 90) }); err != nil {
		t.Fatalf("SetAll() error = %v", err)
	}

	first, _ := old.At(0)
	if first.Hue != 0 || first.Lightness != 20 {
		t.Errorf("old snapshot changed: %+v", first)
	}
	if _, err := old.At(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("At(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestSetAllRejectsResize(t *testing.T) {
	c := NewCollection()
	_ = c.Replace(testSwatches(2))

	err := c.SetAll(func(s []colour.Swatch) []colour.Swatch { return s[:1] })
	if err == nil {
		t.Fatal("SetAll() accepted a resized palette")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d after rejected SetAll, want 2", c.Len())
	}
}
