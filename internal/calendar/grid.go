package calendar

import (
	"fmt"
	"time"
)

const (
	DaysPerWeek = 7
	Weeks       = 6
	GridCells   = DaysPerWeek * Weeks

	// MinYear and MaxYear bound the years cal accepts, as BSD cal does.
	MinYear = 1
	MaxYear = 9999
)

// Request is one month view. It is built once per invocation and passed by value.
type Request struct {
	Month  int
	Year   int
	Today  time.Time
	Locale Locale
}

// IncludesToday reports whether Today falls in the requested month. A zero
// Today never does.
func (r Request) IncludesToday() bool {
	if r.Today.IsZero() {
		return false
	}
	return r.Today.Year() == r.Year && int(r.Today.Month()) == r.Month
}

// Cell is one 2-column slot of the grid. Day 0 is padding.
type Cell struct {
	Day       int
	Highlight bool
}

// Blank reports whether c is padding.
func (c Cell) Blank() bool { return c.Day == 0 }

func (c Cell) text() string {
	if c.Blank() {
		return "  "
	}
	return fmt.Sprintf("%2d", c.Day)
}

// Grid is a 6x7 month layout starting on Sunday.
type Grid [GridCells]Cell

// BuildGrid lays out req.Month of req.Year. When Today is inside the month its
// cell is highlighted, located by index.
func BuildGrid(req Request) Grid {
	var g Grid
	first := FirstWeekday(req.Year, req.Month)
	last := DaysIn(req.Year, req.Month)
	for d := 1; d <= last; d++ {
		g[first+d-1] = Cell{Day: d}
	}
	if req.IncludesToday() {
		g[first+req.Today.Day()-1].Highlight = true
	}
	return g
}

// Week returns row i (0-5) of the grid.
func (g *Grid) Week(i int) []Cell {
	return g[i*DaysPerWeek : (i+1)*DaysPerWeek]
}

// Days counts the non-padding cells.
func (g *Grid) Days() int {
	n := 0
	for _, c := range g {
		if !c.Blank() {
			n++
		}
	}
	return n
}

// Highlighted returns the index of the highlighted cell, or -1.
func (g *Grid) Highlighted() int {
	for i, c := range g {
		if c.Highlight {
			return i
		}
	}
	return -1
}
