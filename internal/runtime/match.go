package runtime

import (
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// findTagToken reports whether the run target occurs in the accumulated
// path as a delimiter-or-end bounded token. The character beyond the
// first occurrence is checked so a target does not match a longer tag
// that merely shares its prefix (target "foo" must not match segment
// "fooBar"). A successful match increments the run's tag-found counter,
// consulted at top level to detect a nonexistent path.
func (e *Engine) findTagToken() bool {
	path := e.path.String()
	target := e.params.Target

	idx := strings.Index(path, target)
	if idx < 0 {
		return false
	}
	end := idx + len(target)
	if end < len(path) && path[end] != domain.Delimiter {
		return false
	}

	e.params.TagsFound++
	return true
}
