// Package selfcheck sweeps a range of months and checks every rendered grid
// against the standard library's calendar arithmetic.
package selfcheck

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"monthcal/internal/calendar"
)

// Default sweep, the range cal is required to print correctly.
const (
	DefaultFrom = 1970
	DefaultTo   = 2100
)

// Options selects the years to sweep.
type Options struct {
	From int
	To   int

	// Progress receives the progress bar. Nil hides it.
	Progress io.Writer
	Log      *zap.Logger
}

// Failure is one month that broke an invariant.
type Failure struct {
	Year   int
	Month  int
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("%04d-%02d: %s", f.Year, f.Month, f.Reason)
}

// Report lists every failure found by Run.
type Report struct {
	Checked  int
	Failures []Failure
}

// OK reports whether no month failed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Run checks every month from opts.From through opts.To inclusive.
func Run(opts Options) (Report, error) {
	var r Report
	if opts.From > opts.To {
		return r, fmt.Errorf("empty range: from %d is after to %d", opts.From, opts.To)
	}
	for _, y := range []int{opts.From, opts.To} {
		if y < calendar.MinYear || y > calendar.MaxYear {
			return r, fmt.Errorf("year %d out of range %d-%d", y, calendar.MinYear, calendar.MaxYear)
		}
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	w := opts.Progress
	if w == nil {
		w = io.Discard
	}

	total := (opts.To - opts.From + 1) * 12
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(opts.Progress != nil),
		progressbar.OptionSetDescription("Checking months..."),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close()

	for y := opts.From; y <= opts.To; y++ {
		for m := 1; m <= 12; m++ {
			for _, reason := range CheckMonth(y, m) {
				f := Failure{Year: y, Month: m, Reason: reason}
				log.Warn("check failed", zap.Int("year", y), zap.Int("month", m), zap.String("reason", reason))
				r.Failures = append(r.Failures, f)
			}
			r.Checked++
			_ = bar.Add(1)
		}
	}
	log.Debug("selfcheck done", zap.Int("checked", r.Checked), zap.Int("failures", len(r.Failures)))
	return r, nil
}

// CheckMonth returns the invariants broken by the grid and rendering of
// year-month. An empty result means the month is correct.
func CheckMonth(year, month int) []string {
	var reasons []string
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	wantDays := first.AddDate(0, 1, -1).Day()
	wantFirst := int(first.Weekday())

	g := calendar.BuildGrid(calendar.Request{Month: month, Year: year})
	if n := g.Days(); n != wantDays {
		reasons = append(reasons, fmt.Sprintf("%d days, want %d", n, wantDays))
	}
	for i, c := range g {
		if !c.Blank() {
			if i != wantFirst {
				reasons = append(reasons, fmt.Sprintf("day 1 in column %d, want %d", i, wantFirst))
			}
			break
		}
	}
	if i := g.Highlighted(); i != -1 {
		reasons = append(reasons, fmt.Sprintf("cell %d highlighted without today", i))
	}

	today := time.Date(year, time.Month(month), wantDays, 12, 0, 0, 0, time.UTC)
	req := calendar.Request{Month: month, Year: year, Today: today}
	hg := calendar.BuildGrid(req)
	if i := hg.Highlighted(); i == -1 || hg[i].Day != wantDays {
		reasons = append(reasons, fmt.Sprintf("day %d not highlighted", wantDays))
	}

	out := calendar.Render(req, calendar.NewHighlighter(true))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2+calendar.Weeks {
		reasons = append(reasons, fmt.Sprintf("rendered %d lines", len(lines)))
	}
	if n := strings.Count(out, "\x1b[7m"); n != 1 {
		reasons = append(reasons, fmt.Sprintf("%d highlight escapes", n))
	}
	return reasons
}
