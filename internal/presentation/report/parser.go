// Package report parses the comma-separated wire report produced by a
// run and renders it for terminals.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the line types of the wire report.
type Kind int

const (
	KindInfo Kind = iota
	KindSearch
	KindResult
	KindDone
)

// Line is one decoded report line. Seq, Outcome and Elapsed are only
// meaningful for the kinds that carry them.
type Line struct {
	Kind    Kind
	Seq     int
	Outcome string
	Elapsed uint32
	Payload string
}

// Report is a fully decoded run report.
type Report struct {
	Lines []Line
	// Done records whether the terminator was seen; a report without it
	// was cut short.
	Done bool
}

// Failed reports whether any result line carries a non-passing label.
func (r *Report) Failed() bool {
	for _, l := range r.Lines {
		if l.Kind == KindResult && l.Outcome != "PASS" {
			return true
		}
	}
	return false
}

// Parse decodes a raw report body. Blank lines are skipped; the literal
// DONE terminator closes the report. Payloads may contain commas, so
// only the leading fixed fields are split.
func Parse(body string) (*Report, error) {
	rep := &Report{}

	for _, raw := range strings.Split(body, "\n") {
		if raw == "" {
			continue
		}
		if raw == "DONE" {
			rep.Done = true
			rep.Lines = append(rep.Lines, Line{Kind: KindDone})
			continue
		}

		line, err := parseLine(raw)
		if err != nil {
			return nil, err
		}
		rep.Lines = append(rep.Lines, line)
	}

	return rep, nil
}

func parseLine(raw string) (Line, error) {
	fields := strings.SplitN(raw, ",", 5)
	if len(fields) != 5 {
		return Line{}, fmt.Errorf("malformed report line %q", raw)
	}

	seq, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Line{}, fmt.Errorf("malformed sequence in %q: %w", raw, err)
	}

	line := Line{Seq: seq, Payload: fields[4]}

	switch fields[0] {
	case "I":
		line.Kind = KindInfo
	case "S":
		line.Kind = KindSearch
	case "T":
		line.Kind = KindResult
		line.Outcome = strings.TrimSpace(fields[2])
		elapsed, err := strconv.ParseUint(strings.TrimSpace(fields[3]), 10, 32)
		if err != nil {
			return Line{}, fmt.Errorf("malformed elapsed in %q: %w", raw, err)
		}
		line.Elapsed = uint32(elapsed)
	default:
		return Line{}, fmt.Errorf("unknown report line kind %q", fields[0])
	}

	return line, nil
}
