package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color read from the configuration file.
// Accepted forms: #rgb, #rrggbb, #rrggbbaa, rgb(r,g,b) and rgba(r,g,b,a).
type Color struct {
	R, G, B uint8
	A       float64 // 0.0-1.0
}

// ParseColor parses a color string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower)
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseFunctional(lower[len("rgba("):len(lower)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseFunctional(lower[len("rgb("):len(lower)-1], 3)
	default:
		return Color{}, fmt.Errorf("invalid color %q: must be #rgb, #rrggbb, #rrggbbaa, rgb() or rgba()", s)
	}
}

// MustParseColor is like ParseColor but panics on malformed input.
// Only meant for compiled-in defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunctional(body string, want int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("invalid color: expected %d components, got %d", want, len(parts))
	}

	var rgb [3]uint8
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("invalid color component %q: must be 0-255", strings.TrimSpace(parts[i]))
		}
		rgb[i] = uint8(v)
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("invalid alpha %q: must be 0.0-1.0", strings.TrimSpace(parts[3]))
		}
		alpha = a
	}

	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}

// String renders the color the way GDK serializes RGBA values:
// rgb(r,g,b) when opaque, rgba(r,g,b,a) otherwise.
func (c Color) String() string {
	if c.A > 0.999 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(math.Max(0, c.A), 'g', 6, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, a)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML and YAML parsing.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
