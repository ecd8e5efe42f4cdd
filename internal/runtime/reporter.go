package runtime

import (
	"fmt"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
)

// overlongPlaceholder replaces payloads exceeding the path capacity so
// a runaway string can never wedge the report.
const overlongPlaceholder = "<string exceeds length limit>"

// reporter formats result/search/info lines into a bounded byte buffer
// and flushes it to the transport. A line feed triggers an immediate
// flush while the reporter is not paused; info and search lines override
// the flag transiently so their buffering policy is fixed per line kind.
//
// Writes beyond capacity are dropped and counted; a diagnostic line is
// emitted on the next flush so truncation never goes unnoticed.
type reporter struct {
	engine     *Engine
	buf        []byte
	capacity   int
	seq        uint32
	paused     bool
	dropped    int
	inOverflow bool
}

func newReporter(e *Engine, capacity int) *reporter {
	return &reporter{engine: e, capacity: capacity}
}

// reset rebuilds the reporter state at the start of a run.
func (r *reporter) reset() {
	if cap(r.buf) != r.capacity {
		r.buf = make([]byte, 0, r.capacity)
	}
	r.buf = r.buf[:0]
	r.seq = 0
	r.paused = false
	r.dropped = 0
	r.inOverflow = false
}

// putChar appends one character. On a line feed the buffer is flushed
// unless the reporter is paused. Characters beyond capacity are counted
// as dropped.
func (r *reporter) putChar(c byte) {
	if len(r.buf) >= r.capacity {
		r.dropped++
		return
	}
	r.buf = append(r.buf, c)
	if c == '\n' && !r.paused {
		r.send()
	}
}

func (r *reporter) putString(s string) {
	for i := 0; i < len(s); i++ {
		r.putChar(s[i])
	}
}

func (r *reporter) lineFeed() { r.putChar('\n') }

func (r *reporter) comma() { r.putChar(',') }

// decimalDigits right-justifies value in a field of width spaces. High
// digits that do not fit the field are not emitted, keeping columns
// vertically aligned.
func (r *reporter) decimalDigits(value uint32, width int) {
	const blanks = "          "
	if width <= 0 || width >= len(blanks) {
		return
	}
	work := []byte(blanks[:width])
	i := width
	for {
		i--
		work[i] = byte('0' + value%10)
		value /= 10
		if value == 0 || i == 0 {
			break
		}
	}
	r.putString(string(work))
}

// formatLine emits an info or search line:
//
//	<kind>,<seq:4>,<4 spaces>,<6 spaces>,<payload>\n
//
// The pause flag is overridden for the duration of the line: deferred
// lines accumulate until a later unpaused line feed or the terminal
// flush delivers them.
func (r *reporter) formatLine(kind byte, payload string, deferFlush bool) {
	save := r.paused
	r.paused = deferFlush

	r.putChar(kind)
	r.comma()
	r.decimalDigits(r.seq, 4)
	r.seq++
	r.comma()
	r.putString("    ")
	r.comma()
	r.putString("      ")
	r.comma()
	if len(payload) > r.engine.path.capacity {
		payload = overlongPlaceholder
	}
	r.putString(payload)
	r.lineFeed()

	r.paused = save
}

// info appends a deferred information line.
func (r *reporter) info(payload string) { r.formatLine('I', payload, true) }

// infoNow appends an information line and flushes it immediately, so
// operator-relevant diagnostics are never silently deferred.
func (r *reporter) infoNow(payload string) { r.formatLine('I', payload, false) }

// searchLine appends a deferred search line enumerating one tree path.
func (r *reporter) searchLine(path string) { r.formatLine('S', path, true) }

// testLine emits a test-result line:
//
//	T,<seq:4>,<LABEL>,<elapsed:6>,<path>\n
func (r *reporter) testLine(out domain.Outcome, elapsed uint32, path string) {
	r.putChar('T')
	r.comma()
	r.decimalDigits(r.seq, 4)
	r.seq++
	r.comma()
	r.putString(out.Label())
	r.comma()
	r.decimalDigits(elapsed, 6)
	r.comma()
	r.putString(path)
	r.lineFeed()
}

// send delivers the buffered report to the transport and resets the
// cursor. Transport failures are logged, never surfaced to the run.
func (r *reporter) send() {
	if len(r.buf) == 0 {
		return
	}

	e := r.engine
	chunk := make([]byte, len(r.buf))
	copy(chunk, r.buf)
	r.buf = r.buf[:0]

	if err := e.transport.Send(e.ctx, chunk); err != nil {
		e.logger.Warn("report transport send failed", "error", err, "bytes", len(chunk))
	}

	dropped := r.dropped
	r.dropped = 0

	if e.hooks.OnFlush != nil {
		e.hooks.OnFlush(e.ctx, &domain.FlushEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFlush},
			Bytes:     len(chunk),
			Dropped:   dropped,
		})
	}

	// The diagnostic line can itself overflow a tiny buffer; the guard
	// stops it from recursing, leaving the remainder for the next flush.
	if dropped > 0 && !r.inOverflow {
		r.inOverflow = true
		r.infoNow(fmt.Sprintf("report buffer overflow, %d bytes dropped", dropped))
		r.inOverflow = false
	}
}
