package greeter

import (
	"github.com/jmylchreest/facegreeter/internal/config"
	"github.com/jmylchreest/facegreeter/internal/theme"
)

// CredentialField is the masked password entry.
// It starts hidden; the session protocol decides when to reveal it.
type CredentialField struct {
	entry Entry
}

// NewCredentialField creates the entry and attaches it to the layout.
func NewCredentialField(tk Toolkit, cfg *config.Config, layout *LayoutContainer) *CredentialField {
	entry := tk.NewEntry()
	entry.SetMasked(true)
	entry.SetAlignment(cfg.PasswordAlignment)
	entry.SetWidthChars(cfg.PasswordInputWidth)
	entry.SetName(theme.NamePassword)
	layout.Attach(entry, PasswordCell)
	entry.SetVisible(false)

	return &CredentialField{entry: entry}
}

// Reveal shows the entry and gives it keyboard focus.
func (c *CredentialField) Reveal() {
	c.entry.SetVisible(true)
	c.entry.GrabFocus()
}

// Conceal clears and hides the entry.
func (c *CredentialField) Conceal() {
	c.entry.Clear()
	c.entry.SetVisible(false)
}

// Visible reports whether the entry is shown.
func (c *CredentialField) Visible() bool {
	return c.entry.Visible()
}

// Entry returns the underlying entry widget.
func (c *CredentialField) Entry() Entry {
	return c.entry
}
