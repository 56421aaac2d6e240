package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/facegreeter/internal/config"
)

// ErrInvalidValue is returned when a slot value fails its type check.
var ErrInvalidValue = errors.New("invalid stylesheet value")

// Kind is the type of a stylesheet slot.
type Kind int

const (
	KindLiteral Kind = iota
	KindColor
	KindLength
	KindFontSize
	KindKeyword
	KindFontFamily
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindLength:
		return "length"
	case KindFontSize:
		return "font-size"
	case KindKeyword:
		return "keyword"
	case KindFontFamily:
		return "font-family"
	case KindURL:
		return "url"
	default:
		return "literal"
	}
}

// Value is a typed value placed into a declaration slot.
type Value struct {
	Kind Kind
	Text string
}

// Literal is fixed template text such as "solid" or "none".
func Literal(s string) Value { return Value{Kind: KindLiteral, Text: s} }

// ColorValue serializes a configured color.
func ColorValue(c config.Color) Value { return Value{Kind: KindColor, Text: c.String()} }

// Length is a CSS length such as "2px" or "0".
func Length(s string) Value { return Value{Kind: KindLength, Text: strings.TrimSpace(s)} }

// FontSize is a length or an absolute/relative size keyword.
func FontSize(s string) Value { return Value{Kind: KindFontSize, Text: strings.TrimSpace(s)} }

// Keyword is a bare identifier such as "bold" or "cover".
func Keyword(s string) Value { return Value{Kind: KindKeyword, Text: strings.TrimSpace(s)} }

// FontFamily is a font family list, substituted verbatim.
func FontFamily(s string) Value { return Value{Kind: KindFontFamily, Text: strings.TrimSpace(s)} }

// URL is a file path rendered as url("...").
func URL(path string) Value { return Value{Kind: KindURL, Text: path} }

// Validate checks the value against its kind.
func (v Value) Validate() error {
	switch v.Kind {
	case KindLength:
		if !config.IsCSSLength(v.Text) {
			return fmt.Errorf("%w: %q is not a length", ErrInvalidValue, v.Text)
		}
	case KindFontSize:
		if !config.IsCSSFontSize(v.Text) {
			return fmt.Errorf("%w: %q is not a font size", ErrInvalidValue, v.Text)
		}
	case KindKeyword:
		if !config.IsCSSKeyword(v.Text) {
			return fmt.Errorf("%w: %q is not a keyword", ErrInvalidValue, v.Text)
		}
	case KindFontFamily:
		if !config.IsCSSFontFamily(v.Text) {
			return fmt.Errorf("%w: %q is not a font family", ErrInvalidValue, v.Text)
		}
	case KindURL:
		if v.Text == "" || strings.ContainsAny(v.Text, "\n\r") {
			return fmt.Errorf("%w: %q is not a file path", ErrInvalidValue, v.Text)
		}
	case KindColor, KindLiteral:
	}
	return nil
}

// String renders the value as CSS text.
func (v Value) String() string {
	if v.Kind == KindURL {
		escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v.Text)
		return `url("` + escaped + `")`
	}
	return v.Text
}

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    Value
}

// Rule is one rule group: a selector list and its declarations.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// Selector returns the rule's selector list as written in the stylesheet.
func (r Rule) Selector() string {
	return strings.Join(r.Selectors, ", ")
}

// Set appends a declaration and returns the rule for chaining.
func (r *Rule) Set(property string, value Value) *Rule {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
	return r
}

// Stylesheet is an ordered list of rule groups.
// Order is the cascade order: later rules override earlier ones.
type Stylesheet struct {
	Rules []*Rule
}

// Add appends a new rule group for the given selectors.
func (s *Stylesheet) Add(selectors ...string) *Rule {
	r := &Rule{Selectors: selectors}
	s.Rules = append(s.Rules, r)
	return r
}

// Validate type-checks every slot in the stylesheet.
func (s *Stylesheet) Validate() error {
	for _, r := range s.Rules {
		for _, d := range r.Declarations {
			if err := d.Value.Validate(); err != nil {
				return fmt.Errorf("%s { %s }: %w", r.Selector(), d.Property, err)
			}
		}
	}
	return nil
}

// String renders the stylesheet text.
func (s *Stylesheet) String() string {
	var b strings.Builder
	for _, r := range s.Rules {
		b.WriteString(r.Selector())
		b.WriteString(" {\n")
		for _, d := range r.Declarations {
			b.WriteString("\t")
			b.WriteString(d.Property)
			b.WriteString(": ")
			b.WriteString(d.Value.String())
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
