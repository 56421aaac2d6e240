package greeter

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/facegreeter/internal/theme"
)

// FeedbackIndicator renders a face that grows more distressed with each
// failed attempt, ending on an amused face that it stays on.
type FeedbackIndicator struct {
	label    Label
	faces    []string
	failures int
	logger   *slog.Logger
}

// StateFor maps a failure count to a state index in [0, states).
// Counts past the last state clamp to it.
func StateFor(failures, states int) int {
	if states <= 0 || failures <= 0 {
		return 0
	}
	return min(failures, states-1)
}

// NewFeedbackIndicator creates the label showing the neutral face and
// attaches it to the layout.
func NewFeedbackIndicator(tk Toolkit, faces []string, layout *LayoutContainer, logger *slog.Logger) *FeedbackIndicator {
	if logger == nil {
		logger = slog.Default()
	}
	if len(faces) == 0 {
		faces = []string{""}
	}

	f := &FeedbackIndicator{
		label:  tk.NewLabel(faces[0]),
		faces:  faces,
		logger: logger,
	}
	f.label.SetJustifyCenter()
	f.label.SetName(theme.NameFeedback)
	f.label.SetVisible(true)
	layout.Attach(f.label, FeedbackCell)

	return f
}

// Advance renders the face for the given number of consecutive failures.
func (f *FeedbackIndicator) Advance(failures int) string {
	f.failures = max(failures, 0)
	face := f.faces[StateFor(f.failures, len(f.faces))]
	f.label.SetText(face)

	if f.failures > 0 {
		f.logger.Debug("feedback advanced",
			"attempt", humanize.Ordinal(f.failures),
			"state", f.State(),
		)
	}
	return face
}

// State returns the current state index.
func (f *FeedbackIndicator) State() int {
	return StateFor(f.failures, len(f.faces))
}

// Failures returns the last failure count passed to Advance.
func (f *FeedbackIndicator) Failures() int {
	return f.failures
}

// Face returns the face currently shown.
func (f *FeedbackIndicator) Face() string {
	return f.faces[f.State()]
}

// States returns the number of distinct states.
func (f *FeedbackIndicator) States() int {
	return len(f.faces)
}
