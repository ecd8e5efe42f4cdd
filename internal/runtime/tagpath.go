package runtime

import "github.com/aretw0/arbor/pkg/domain"

// tagPath is the bounded mutable string holding the root-to-node path.
// It grows only by appending a tag at test entry and shrinks only by
// truncation back to a previously recorded cursor at exit, so at any
// moment it equals the delimiter-joined tags of the active call chain.
type tagPath struct {
	buf      []byte
	capacity int
}

func newTagPath(capacity int) *tagPath {
	return &tagPath{
		buf:      make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// append concatenates the delimiter (when the path is non-empty) and
// the tag. If the result would not fit the capacity the buffer is left
// unmodified and ErrTagOverflow is returned.
func (p *tagPath) append(tag string) error {
	need := len(tag)
	if len(p.buf) > 0 {
		need++
	}
	if len(p.buf)+need > p.capacity {
		return domain.ErrTagOverflow
	}
	if len(p.buf) > 0 {
		p.buf = append(p.buf, domain.Delimiter)
	}
	p.buf = append(p.buf, tag...)
	return nil
}

// truncateTo resets the path to a cursor previously returned by
// cursor(). Saved cursors were proven valid by append, so truncation is
// always safe.
func (p *tagPath) truncateTo(cursor int) {
	if cursor < 0 || cursor > len(p.buf) {
		return
	}
	p.buf = p.buf[:cursor]
}

func (p *tagPath) cursor() int { return len(p.buf) }

func (p *tagPath) reset() { p.buf = p.buf[:0] }

func (p *tagPath) String() string { return string(p.buf) }
