package domain

// Params is the user control block shared by reference across the whole
// recursive call chain. The engine mutates Mode and TagsFound; test
// bodies may record a value in Code for assertion diagnostics.
type Params struct {
	// Mode is the current walker mode. It may flip between Execute
	// and Skip as the walker moves in and out of the selected subtree.
	Mode Mode

	// Target is the opaque token matched against accumulated path
	// segments. The root tag means "match everything".
	Target string

	// TagsFound counts every successful path-token match. Zero at the
	// end of a run means the target path does not exist.
	TagsFound int32

	// Code is a scratch value for test bodies. It is included in
	// assertion diagnostics.
	Code int32
}

// Skipping reports whether the current mode excludes leaf execution.
func (p *Params) Skipping() bool {
	return p.Mode == ModeSearch || p.Mode == ModeSkip
}
