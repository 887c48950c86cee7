package ui

import "github.com/charmbracelet/bubbles/help"

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// With a partial sequence buffered (e.g. "SPC t") it shows the next level.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || keyHandler.Registry == nil {
		return ""
	}
	seq := keyHandler.CurrentSeq()
	bindings := keyHandler.Registry.HelpBindings(seq, mode)
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted

	prefix := "SPC"
	if seq != "" {
		prefix = seq
	}
	content := Styles.Muted.Render(prefix) + " " + h.ShortHelpView(bindings)
	return Styles.HelpBox.Render(content)
}
