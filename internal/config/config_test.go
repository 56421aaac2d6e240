package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Sans", cfg.Font)
	assert.Equal(t, "1em", cfg.FontSize)
	assert.Equal(t, EmptyImage, cfg.BackgroundImage)
	assert.False(t, cfg.HasBackgroundImage())
	assert.True(t, cfg.ShowInputCursor)
	assert.Equal(t, 10, cfg.PasswordInputWidth)
	assert.Equal(t, 15, cfg.LayoutSpacing)
	assert.Equal(t, DefaultFaces, cfg.Feedback.Faces)
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfig_FacesAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Feedback.Faces[0] = "x"
	assert.Equal(t, "🙂", DefaultFaces[0])
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/facegreeter.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Font, cfg.Font)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facegreeter.toml")

	content := `
font = "Noto Sans"
font_size = "18px"
font_weight = "normal"
font_style = "italic"
text_color = "#ffffff"
error_color = "rgba(255,0,0,0.5)"
background_image = "\"/usr/share/backgrounds/login.png\""
background_image_size = "contain"
show_image_on_all_monitors = true
primary_monitor = "DP-2"
show_input_cursor = false
password_alignment = 0.5
password_input_width = 20
layout_spacing = 8
color_scheme = "dark"

[feedback]
faces = [":)", ":(", ":D"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Noto Sans", cfg.Font)
	assert.Equal(t, "18px", cfg.FontSize)
	assert.Equal(t, "italic", cfg.FontStyle)
	assert.Equal(t, Color{R: 255, G: 255, B: 255, A: 1}, cfg.TextColor)
	assert.Equal(t, "rgba(255,0,0,0.5)", cfg.ErrorColor.String())
	assert.Equal(t, "/usr/share/backgrounds/login.png", cfg.BackgroundImage)
	assert.True(t, cfg.HasBackgroundImage())
	assert.Equal(t, "contain", cfg.BackgroundImageSize)
	assert.True(t, cfg.ShowImageOnAllMonitors)
	assert.Equal(t, "DP-2", cfg.PrimaryMonitor)
	assert.False(t, cfg.ShowInputCursor)
	assert.InDelta(t, 0.5, cfg.PasswordAlignment, 0.0001)
	assert.Equal(t, 20, cfg.PasswordInputWidth)
	assert.Equal(t, 8, cfg.LayoutSpacing)
	assert.Equal(t, []string{":)", ":(", ":D"}, cfg.Feedback.Faces)

	// Untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().WindowColor, cfg.WindowColor)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facegreeter.yaml")

	content := `
font: Cantarell
window_color: "#336699"
layout_spacing: 4
feedback:
  faces: ["a", "b"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Cantarell", cfg.Font)
	assert.Equal(t, "rgb(51,102,153)", cfg.WindowColor.String())
	assert.Equal(t, 4, cfg.LayoutSpacing)
	assert.Equal(t, []string{"a", "b"}, cfg.Feedback.Faces)
}

func TestLoadConfig_EmptyImageNormalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facegreeter.toml")
	require.NoError(t, os.WriteFile(path, []byte(`background_image = ""`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, EmptyImage, cfg.BackgroundImage)
	assert.False(t, cfg.HasBackgroundImage())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facegreeter.toml")
	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnstylableValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unitless font size", `font_size = "12"`},
		{"border width keyword", `border_width = "thick"`},
		{"font style with semicolon", `font_style = "italic; color: red"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "facegreeter.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facegreeter.toml")
	require.NoError(t, os.WriteFile(path, []byte(`text_color = "not-a-color"`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "empty font", modify: func(c *Config) { c.Font = " " }, wantErr: true},
		{name: "alignment too high", modify: func(c *Config) { c.PasswordAlignment = 1.5 }, wantErr: true},
		{name: "alignment negative", modify: func(c *Config) { c.PasswordAlignment = -0.1 }, wantErr: true},
		{name: "negative width", modify: func(c *Config) { c.PasswordInputWidth = -1 }, wantErr: true},
		{name: "negative spacing", modify: func(c *Config) { c.LayoutSpacing = -1 }, wantErr: true},
		{name: "bad image size", modify: func(c *Config) { c.BackgroundImageSize = "stretch" }, wantErr: true},
		{name: "bad color scheme", modify: func(c *Config) { c.ColorScheme = "sepia" }, wantErr: true},
		{name: "unitless font size", modify: func(c *Config) { c.FontSize = "12" }, wantErr: true},
		{name: "keyword font size", modify: func(c *Config) { c.FontSize = "large" }},
		{name: "bad font weight", modify: func(c *Config) { c.FontWeight = "bold;" }, wantErr: true},
		{name: "bad font style", modify: func(c *Config) { c.FontStyle = "" }, wantErr: true},
		{name: "keyword border width", modify: func(c *Config) { c.BorderWidth = "thick" }, wantErr: true},
		{name: "bad password border width", modify: func(c *Config) { c.PasswordBorderWidth = "2" }, wantErr: true},
		{name: "zero border width", modify: func(c *Config) { c.PasswordBorderWidth = "0" }},
		{name: "font with brace", modify: func(c *Config) { c.Font = "Sans}" }, wantErr: true},
		{name: "no faces", modify: func(c *Config) { c.Feedback.Faces = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCaretColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PasswordColor = MustParseColor("#ff0000")
	cfg.PasswordBackgroundColor = MustParseColor("#0000ff")

	cfg.ShowInputCursor = true
	assert.Equal(t, cfg.PasswordColor, cfg.CaretColor())

	cfg.ShowInputCursor = false
	assert.Equal(t, cfg.PasswordBackgroundColor, cfg.CaretColor())
}

func TestConfigPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/facegreeter/facegreeter.toml", ConfigPath())
}
