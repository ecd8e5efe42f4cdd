package domain

// Mode drives how the walker treats each node of the tree.
type Mode int

const (
	// ModeSearch walks the tree and reports which paths exist without
	// executing any assertions.
	ModeSearch Mode = iota
	// ModeExecute runs the tests selected by the target path.
	ModeExecute
	// ModeSkip is engine-internal: the walker flips Execute to Skip
	// while outside the selected subtree and back on re-entry. Hosts
	// never start a run in this mode.
	ModeSkip
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeExecute:
		return "execute"
	case ModeSkip:
		return "skip"
	default:
		return "unknown"
	}
}
