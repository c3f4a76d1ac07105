package reader

import (
	"fmt"
	"math"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 1.0
	ZoomStep    = 0.1
)

// FitMode is how a page is scaled into the viewport.
type FitMode string

const (
	FitWidth  FitMode = "width"
	FitHeight FitMode = "height"
	FitBoth   FitMode = "both"
)

func ParseFitMode(s string) (FitMode, error) {
	switch m := FitMode(s); m {
	case FitWidth, FitHeight, FitBoth:
		return m, nil
	}
	return "", fmt.Errorf("invalid fit mode %q: must be one of width, height, both", s)
}

// Direction is the reading direction of the pages.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case LeftToRight, RightToLeft:
		return d, nil
	}
	return "", fmt.Errorf("invalid reading direction %q: must be ltr or rtl", s)
}

// Arrow is a physical left/right control.
type Arrow int

const (
	ArrowLeft Arrow = iota
	ArrowRight
)

// Cursor is the reader's position inside a chapter. It is a value type:
// every operation returns the updated copy.
type Cursor struct {
	Page      int
	PageCount int
	Zoom      float64
	Fit       FitMode
	Direction Direction
}

func NewCursor(pageCount int, fit FitMode, dir Direction) Cursor {
	return Cursor{
		PageCount: pageCount,
		Zoom:      DefaultZoom,
		Fit:       fit,
		Direction: dir,
	}
}

// Next moves toward the end of the page sequence. It never moves past the
// last page, whatever the reading direction.
func (c Cursor) Next() Cursor {
	if c.Page < c.PageCount-1 {
		c.Page++
	}
	return c
}

func (c Cursor) Previous() Cursor {
	if c.Page > 0 {
		c.Page--
	}
	return c
}

// Step maps a physical arrow to a logical page move: right advances in
// left-to-right reading, left advances in right-to-left reading.
func (c Cursor) Step(a Arrow) Cursor {
	advance := (a == ArrowRight) == (c.Direction != RightToLeft)
	if advance {
		return c.Next()
	}
	return c.Previous()
}

func (c Cursor) ZoomBy(delta float64) Cursor {
	c.Zoom = clampZoom(c.Zoom + delta)
	return c
}

func (c Cursor) ResetZoom() Cursor {
	c.Zoom = DefaultZoom
	return c
}

func (c Cursor) WithFit(m FitMode) Cursor {
	c.Fit = m
	return c
}

func (c Cursor) WithDirection(d Direction) Cursor {
	c.Direction = d
	return c
}

// AtStart and AtEnd report the page bounds.
func (c Cursor) AtStart() bool { return c.Page <= 0 }
func (c Cursor) AtEnd() bool   { return c.Page >= c.PageCount-1 }

// clampZoom bounds z to [MinZoom, MaxZoom]. The sum is rounded to 1e-9 so
// repeated 0.1 steps land on 1.1, 1.2, ... while finer steps still move.
func clampZoom(z float64) float64 {
	z = math.Round(z*1e9) / 1e9
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
