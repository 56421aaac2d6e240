// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EmptyImage is the value that disables the background image.
const EmptyImage = `""`

// Default configuration values.
const (
	DefaultFont               = "Sans"
	DefaultFontSize           = "1em"
	DefaultFontWeight         = "bold"
	DefaultFontStyle          = "normal"
	DefaultBorderWidth        = "2px"
	DefaultPasswordBorder     = "0px"
	DefaultImageSize          = "cover"
	DefaultPasswordInputWidth = 10
	DefaultLayoutSpacing      = 15
)

// DefaultFaces is the default feedback progression, from neutral to amused.
var DefaultFaces = []string{"🙂", "😐", "😟", "😢", "😭", "😂"}

// Config is the greeter configuration snapshot.
// Once handed to the UI it is treated as immutable.
type Config struct {
	Font       string `toml:"font" yaml:"font"`
	FontSize   string `toml:"font_size" yaml:"font_size"`
	FontWeight string `toml:"font_weight" yaml:"font_weight"`
	FontStyle  string `toml:"font_style" yaml:"font_style"`

	TextColor               Color `toml:"text_color" yaml:"text_color"`
	ErrorColor              Color `toml:"error_color" yaml:"error_color"`
	BackgroundColor         Color `toml:"background_color" yaml:"background_color"`
	WindowColor             Color `toml:"window_color" yaml:"window_color"`
	BorderColor             Color `toml:"border_color" yaml:"border_color"`
	PasswordColor           Color `toml:"password_color" yaml:"password_color"`
	PasswordBackgroundColor Color `toml:"password_background_color" yaml:"password_background_color"`
	PasswordBorderColor     Color `toml:"password_border_color" yaml:"password_border_color"`

	BorderWidth         string `toml:"border_width" yaml:"border_width"`
	PasswordBorderWidth string `toml:"password_border_width" yaml:"password_border_width"`

	BackgroundImage        string `toml:"background_image" yaml:"background_image"`
	BackgroundImageSize    string `toml:"background_image_size" yaml:"background_image_size"`
	ShowImageOnAllMonitors bool   `toml:"show_image_on_all_monitors" yaml:"show_image_on_all_monitors"`
	PrimaryMonitor         string `toml:"primary_monitor" yaml:"primary_monitor"` // Connector name, empty = first

	ShowInputCursor    bool    `toml:"show_input_cursor" yaml:"show_input_cursor"`
	PasswordAlignment  float32 `toml:"password_alignment" yaml:"password_alignment"` // 0.0 left .. 1.0 right
	PasswordInputWidth int     `toml:"password_input_width" yaml:"password_input_width"`
	LayoutSpacing      int     `toml:"layout_spacing" yaml:"layout_spacing"`

	ThemeFile   string `toml:"theme_file" yaml:"theme_file"`
	ColorScheme string `toml:"color_scheme" yaml:"color_scheme"`

	Feedback FeedbackConfig `toml:"feedback" yaml:"feedback"`
}

// FeedbackConfig holds the feedback indicator settings.
type FeedbackConfig struct {
	Faces []string `toml:"faces" yaml:"faces"`
}

// ColorScheme represents the color scheme preference.
type ColorScheme string

const (
	ColorSchemeSystem ColorScheme = "system"
	ColorSchemeLight  ColorScheme = "light"
	ColorSchemeDark   ColorScheme = "dark"
)

// ValidColorSchemes returns all valid color scheme values.
func ValidColorSchemes() []ColorScheme {
	return []ColorScheme{ColorSchemeSystem, ColorSchemeLight, ColorSchemeDark}
}

// ValidImageSizes returns the accepted background scaling modes.
func ValidImageSizes() []string {
	return []string{"auto", "cover", "contain"}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Font:       DefaultFont,
		FontSize:   DefaultFontSize,
		FontWeight: DefaultFontWeight,
		FontStyle:  DefaultFontStyle,

		TextColor:               MustParseColor("#080800"),
		ErrorColor:              MustParseColor("#f8f8f0"),
		BackgroundColor:         MustParseColor("#1b1d1e"),
		WindowColor:             MustParseColor("#f92672"),
		BorderColor:             MustParseColor("#080800"),
		PasswordColor:           MustParseColor("#f8f8f0"),
		PasswordBackgroundColor: MustParseColor("#1b1d1e"),
		PasswordBorderColor:     MustParseColor("#080800"),

		BorderWidth:         DefaultBorderWidth,
		PasswordBorderWidth: DefaultPasswordBorder,

		BackgroundImage:        EmptyImage,
		BackgroundImageSize:    DefaultImageSize,
		ShowImageOnAllMonitors: false,

		ShowInputCursor:    true,
		PasswordAlignment:  0,
		PasswordInputWidth: DefaultPasswordInputWidth,
		LayoutSpacing:      DefaultLayoutSpacing,

		ColorScheme: string(ColorSchemeSystem),

		Feedback: FeedbackConfig{
			Faces: append([]string(nil), DefaultFaces...),
		},
	}
}

// HasBackgroundImage reports whether a background image is configured.
func (c *Config) HasBackgroundImage() bool {
	return c.BackgroundImage != "" && c.BackgroundImage != EmptyImage
}

// CaretColor returns the caret color for the password field.
// A hidden input cursor is drawn in the field's background color.
func (c *Config) CaretColor() Color {
	if c.ShowInputCursor {
		return c.PasswordColor
	}
	return c.PasswordBackgroundColor
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "facegreeter", "facegreeter.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Decode overlays data onto cfg, picking the format from the file extension.
// YAML is used for .yaml and .yml, TOML for everything else.
func Decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return toml.Unmarshal(data, cfg)
	}
}

// normalize strips the quoting some greeter configs carry around image paths.
func (c *Config) normalize() {
	img := strings.TrimSpace(c.BackgroundImage)
	if img != EmptyImage && len(img) >= 2 {
		if (img[0] == '"' && img[len(img)-1] == '"') || (img[0] == '\'' && img[len(img)-1] == '\'') {
			img = img[1 : len(img)-1]
		}
	}
	if img == "" {
		img = EmptyImage
	}
	c.BackgroundImage = img
	c.ThemeFile = expandPath(c.ThemeFile)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Font) == "" {
		return errors.New("font cannot be empty")
	}
	if !IsCSSFontFamily(c.Font) {
		return fmt.Errorf("invalid font %q", c.Font)
	}
	if !IsCSSFontSize(c.FontSize) {
		return fmt.Errorf("invalid font_size %q, must be a CSS length or size keyword", c.FontSize)
	}
	for name, v := range map[string]string{"font_weight": c.FontWeight, "font_style": c.FontStyle} {
		if !IsCSSKeyword(v) {
			return fmt.Errorf("invalid %s %q, must be a CSS keyword", name, v)
		}
	}
	for name, v := range map[string]string{"border_width": c.BorderWidth, "password_border_width": c.PasswordBorderWidth} {
		if !IsCSSLength(v) {
			return fmt.Errorf("invalid %s %q, must be a CSS length", name, v)
		}
	}
	if c.PasswordAlignment < 0 || c.PasswordAlignment > 1 {
		return fmt.Errorf("password_alignment must be between 0.0 and 1.0, got %g", c.PasswordAlignment)
	}
	if c.PasswordInputWidth < 0 {
		return fmt.Errorf("password_input_width must not be negative, got %d", c.PasswordInputWidth)
	}
	if c.LayoutSpacing < 0 {
		return fmt.Errorf("layout_spacing must not be negative, got %d", c.LayoutSpacing)
	}

	validSize := false
	for _, s := range ValidImageSizes() {
		if c.BackgroundImageSize == s {
			validSize = true
			break
		}
	}
	if !validSize {
		return fmt.Errorf("invalid background_image_size %q, must be one of: %v", c.BackgroundImageSize, ValidImageSizes())
	}

	validScheme := false
	for _, s := range ValidColorSchemes() {
		if c.ColorScheme == string(s) {
			validScheme = true
			break
		}
	}
	if !validScheme {
		return fmt.Errorf("invalid color_scheme %q, must be one of: %v", c.ColorScheme, ValidColorSchemes())
	}

	if len(c.Feedback.Faces) == 0 {
		return errors.New("feedback.faces must contain at least one face")
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
