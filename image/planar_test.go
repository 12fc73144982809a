package image

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-colorutils/hwy"
)

func TestNewPlane(t *testing.T) {
	p := NewPlane[float32](100, 50)
	if p.Width() != 100 || p.Height() != 50 {
		t.Errorf("size: got %dx%d, want 100x50", p.Width(), p.Height())
	}
	if p.Stride() < 100 || p.Stride()%hwy.MaxVectorLanes != 0 {
		t.Errorf("Stride %d is not a padded multiple of %d", p.Stride(), hwy.MaxVectorLanes)
	}
	if got := len(p.Row(0)); got != p.Stride() {
		t.Errorf("len(Row) = %d, want stride %d", got, p.Stride())
	}
	if got := len(p.Pixels(0)); got != 100 {
		t.Errorf("len(Pixels) = %d, want 100", got)
	}
}

func TestNewPlane_Empty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {-1, 10}, {10, 0}} {
		p := NewPlane[uint8](dims[0], dims[1])
		if p.Width() != 0 || p.Height() != 0 || p.Row(0) != nil {
			t.Errorf("NewPlane(%d, %d) is not empty", dims[0], dims[1])
		}
	}
}

func TestPlane_AtSet(t *testing.T) {
	p := NewPlane[uint16](10, 5)
	p.Set(3, 2, 42)
	p.Set(10, 2, 7) // dropped
	p.Set(-1, 0, 7) // dropped
	if got := p.At(3, 2); got != 42 {
		t.Errorf("At(3, 2) = %d, want 42", got)
	}
	if got := p.At(10, 2); got != 0 {
		t.Errorf("At outside = %d, want 0", got)
	}
	if got := p.Row(2)[3]; got != 42 {
		t.Errorf("Row(2)[3] = %d, want 42", got)
	}
}

func TestPlane_CloneFill(t *testing.T) {
	p := NewPlane[float32](4, 3)
	p.Fill(1.5)
	c := p.Clone()
	c.Set(0, 0, 9)
	if p.At(0, 0) != 1.5 {
		t.Error("Clone shares storage with the original")
	}
	if c.At(3, 2) != 1.5 {
		t.Errorf("clone At(3, 2) = %v, want 1.5", c.At(3, 2))
	}
}

func TestPlanes_Check(t *testing.T) {
	ps := NewPlanes[uint8](3, 8, 4)
	if err := ps.Check(3, 8, 4); err != nil {
		t.Errorf("Check: %v", err)
	}
	if err := ps.Check(4, 8, 4); !errors.Is(err, ErrLayoutMismatch) {
		t.Errorf("wrong count: %v", err)
	}
	ps[1] = NewPlane[uint8](8, 5)
	if err := ps.Check(3, 8, 4); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("wrong size: %v", err)
	}
	ps[1] = nil
	if err := ps.Check(3, 8, 4); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("nil plane: %v", err)
	}
}
