package theme

import (
	"github.com/jmylchreest/facegreeter/internal/config"
)

// Widget names and style classes shared between the UI and the stylesheet.
const (
	NameBackground = "background"
	NameMain       = "main"
	NamePassword   = "password"
	NameFeedback   = "error"

	ClassWithImage = "with-image"
)

// Priority orders style sources installed on a display.
type Priority int

const (
	// PriorityTheme is used for a user-supplied theme file.
	PriorityTheme Priority = iota
	// PriorityGreeter is used for the stylesheet generated from the config.
	// It sits above user-level styles so config values always win.
	PriorityGreeter
)

// Generate builds the greeter stylesheet from a configuration snapshot.
// The rule groups are emitted in a fixed order; #password overrides the
// border baseline shared with #main, so it must come last.
func Generate(cfg *config.Config) (*Stylesheet, error) {
	s := &Stylesheet{}

	s.Add("*").
		Set("font-family", FontFamily(cfg.Font)).
		Set("font-size", FontSize(cfg.FontSize)).
		Set("font-weight", Keyword(cfg.FontWeight)).
		Set("font-style", Keyword(cfg.FontStyle))

	s.Add("label").
		Set("color", ColorValue(cfg.TextColor))

	s.Add("label#" + NameFeedback).
		Set("color", ColorValue(cfg.ErrorColor))

	s.Add("#" + NameBackground).
		Set("background-color", ColorValue(cfg.BackgroundColor))

	withImage := s.Add("#" + NameBackground + "." + ClassWithImage)
	if cfg.HasBackgroundImage() {
		withImage.Set("background-image", URL(cfg.BackgroundImage))
	} else {
		withImage.Set("background-image", Literal("none"))
	}
	withImage.
		Set("background-size", Keyword(cfg.BackgroundImageSize)).
		Set("background-repeat", Literal("no-repeat")).
		Set("background-position", Literal("center"))

	s.Add("#"+NameMain, "#"+NamePassword).
		Set("border-width", Length(cfg.BorderWidth)).
		Set("border-color", ColorValue(cfg.BorderColor)).
		Set("border-style", Literal("solid"))

	s.Add("#" + NameMain).
		Set("background-color", ColorValue(cfg.WindowColor))

	s.Add("#"+NamePassword).
		Set("color", ColorValue(cfg.PasswordColor)).
		Set("caret-color", ColorValue(cfg.CaretColor())).
		Set("background-color", ColorValue(cfg.PasswordBackgroundColor)).
		Set("border-width", Length(cfg.PasswordBorderWidth)).
		Set("border-color", ColorValue(cfg.PasswordBorderColor)).
		Set("background-image", Literal("none")).
		Set("box-shadow", Literal("none")).
		Set("border-image-width", Literal("0"))

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
