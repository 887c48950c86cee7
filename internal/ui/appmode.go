package ui

// AppMode is the top-level input mode.
type AppMode int

const (
	ModeBrowse  AppMode = iota // keys scroll the list and switch tabs
	ModeOptions                // the options menu owns the keyboard
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeOptions:
		return "Options"
	default:
		return "Unknown"
	}
}
