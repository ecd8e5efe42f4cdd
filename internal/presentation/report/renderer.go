package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer pretty-prints a decoded report for a terminal. With the
// Ascii profile all styling degrades to plain text.
type Renderer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewRenderer creates a renderer writing to out with the given color
// profile. Use termenv.Ascii for uncolored output.
func NewRenderer(out io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{out: out, profile: profile}
}

// Render writes a human-readable view of the report, one line per wire
// line, followed by a summary.
func (r *Renderer) Render(rep *Report) error {
	var pass, fail int

	for _, line := range rep.Lines {
		switch line.Kind {
		case KindInfo:
			r.println(r.style(line.Payload, "8"))
		case KindSearch:
			r.println("  " + line.Payload)
		case KindResult:
			if line.Outcome == "PASS" {
				pass++
			} else {
				fail++
			}
			r.println(fmt.Sprintf("%s %6d ms  %s",
				r.outcomeBadge(line.Outcome), line.Elapsed, line.Payload))
		case KindDone:
			// Summary follows below.
		}
	}

	if !rep.Done {
		r.println(r.style("report incomplete: terminator missing", "3"))
	}

	if pass+fail > 0 {
		summary := fmt.Sprintf("%d passed, %d failed", pass, fail)
		if fail > 0 {
			summary = r.style(summary, "1")
		} else {
			summary = r.style(summary, "2")
		}
		r.println(strings.Repeat("-", 40))
		r.println(summary)
	}

	return nil
}

// outcomeBadge colors the fixed-width outcome label: green for PASS,
// yellow for TIMEOUT, red otherwise.
func (r *Renderer) outcomeBadge(outcome string) string {
	padded := fmt.Sprintf("%-7s", outcome)
	switch outcome {
	case "PASS":
		return r.style(padded, "2")
	case "TIMEOUT":
		return r.style(padded, "3")
	default:
		return r.style(padded, "1")
	}
}

func (r *Renderer) style(s, color string) string {
	return termenv.String(s).Foreground(r.profile.Color(color)).String()
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.out, s)
}
