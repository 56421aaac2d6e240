package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/facegreeter/internal/config"
)

type parsedRule struct {
	selector string
	props    map[string]string
	order    []string
}

// parseSheet splits rendered stylesheet text back into rules.
func parseSheet(t *testing.T, css string) []parsedRule {
	t.Helper()

	var rules []parsedRule
	for _, block := range strings.Split(css, "}\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		selector, body, ok := strings.Cut(block, "{")
		require.True(t, ok, "malformed block %q", block)

		r := parsedRule{selector: strings.TrimSpace(selector), props: map[string]string{}}
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSuffix(strings.TrimSpace(line), ";")
			if line == "" {
				continue
			}
			prop, value, ok := strings.Cut(line, ":")
			require.True(t, ok, "malformed declaration %q", line)
			prop = strings.TrimSpace(prop)
			require.NotContains(t, r.props, prop, "duplicate %s in %s", prop, r.selector)
			r.props[prop] = strings.TrimSpace(value)
			r.order = append(r.order, prop)
		}
		rules = append(rules, r)
	}
	return rules
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Font = "Noto Sans"
	cfg.FontSize = "14pt"
	cfg.FontWeight = "600"
	cfg.FontStyle = "italic"
	cfg.TextColor = config.MustParseColor("#010203")
	cfg.ErrorColor = config.MustParseColor("#040506")
	cfg.BackgroundColor = config.MustParseColor("#070809")
	cfg.WindowColor = config.MustParseColor("#0a0b0c")
	cfg.BorderColor = config.MustParseColor("#0d0e0f")
	cfg.PasswordColor = config.MustParseColor("#101112")
	cfg.PasswordBackgroundColor = config.MustParseColor("rgba(19,20,21,0.5)")
	cfg.PasswordBorderColor = config.MustParseColor("#161718")
	cfg.BorderWidth = "3px"
	cfg.PasswordBorderWidth = "1px"
	cfg.BackgroundImage = "/usr/share/backgrounds/login.png"
	cfg.BackgroundImageSize = "contain"
	return cfg
}

func TestGenerate_RuleOrder(t *testing.T) {
	sheet, err := Generate(testConfig())
	require.NoError(t, err)

	var selectors []string
	for _, r := range parseSheet(t, sheet.String()) {
		selectors = append(selectors, r.selector)
	}

	assert.Equal(t, []string{
		"*",
		"label",
		"label#error",
		"#background",
		"#background.with-image",
		"#main, #password",
		"#main",
		"#password",
	}, selectors)
}

func TestGenerate_RoundTrip(t *testing.T) {
	cfg := testConfig()
	sheet, err := Generate(cfg)
	require.NoError(t, err)

	rules := parseSheet(t, sheet.String())
	require.Len(t, rules, 8)

	assert.Equal(t, map[string]string{
		"font-family": "Noto Sans",
		"font-size":   "14pt",
		"font-weight": "600",
		"font-style":  "italic",
	}, rules[0].props)
	assert.Equal(t, map[string]string{"color": "rgb(1,2,3)"}, rules[1].props)
	assert.Equal(t, map[string]string{"color": "rgb(4,5,6)"}, rules[2].props)
	assert.Equal(t, map[string]string{"background-color": "rgb(7,8,9)"}, rules[3].props)
	assert.Equal(t, map[string]string{
		"background-image":    `url("/usr/share/backgrounds/login.png")`,
		"background-size":     "contain",
		"background-repeat":   "no-repeat",
		"background-position": "center",
	}, rules[4].props)
	assert.Equal(t, map[string]string{
		"border-width": "3px",
		"border-color": "rgb(13,14,15)",
		"border-style": "solid",
	}, rules[5].props)
	assert.Equal(t, map[string]string{"background-color": "rgb(10,11,12)"}, rules[6].props)
	assert.Equal(t, map[string]string{
		"color":              "rgb(16,17,18)",
		"caret-color":        "rgb(16,17,18)",
		"background-color":   "rgba(19,20,21,0.5)",
		"border-width":       "1px",
		"border-color":       "rgb(22,23,24)",
		"background-image":   "none",
		"box-shadow":         "none",
		"border-image-width": "0",
	}, rules[7].props)
}

func TestGenerate_ValuesAppearOnce(t *testing.T) {
	sheet, err := Generate(testConfig())
	require.NoError(t, err)
	css := sheet.String()

	for _, v := range []string{
		"Noto Sans", "14pt", "600", "italic",
		"rgb(1,2,3)", "rgb(4,5,6)", "rgb(7,8,9)", "rgb(10,11,12)",
		"rgb(13,14,15)", "rgb(22,23,24)", "rgba(19,20,21,0.5)",
		"3px", "1px", "/usr/share/backgrounds/login.png", "contain",
	} {
		assert.Equal(t, 1, strings.Count(css, v), "value %q", v)
	}
}

func TestGenerate_CaretColor(t *testing.T) {
	shown := testConfig()
	shown.ShowInputCursor = true
	hidden := testConfig()
	hidden.ShowInputCursor = false

	caret := func(cfg *config.Config) string {
		sheet, err := Generate(cfg)
		require.NoError(t, err)
		rules := parseSheet(t, sheet.String())
		return rules[len(rules)-1].props["caret-color"]
	}

	assert.Equal(t, shown.PasswordColor.String(), caret(shown))
	assert.Equal(t, hidden.PasswordBackgroundColor.String(), caret(hidden))
}

func TestGenerate_PasswordOverridesSharedBorder(t *testing.T) {
	sheet, err := Generate(testConfig())
	require.NoError(t, err)

	shared, password := -1, -1
	for i, r := range sheet.Rules {
		switch r.Selector() {
		case "#main, #password":
			shared = i
		case "#password":
			password = i
		}
	}
	require.NotEqual(t, -1, shared)
	require.NotEqual(t, -1, password)
	assert.Greater(t, password, shared)
}

func TestGenerate_NoImage(t *testing.T) {
	cfg := testConfig()
	cfg.BackgroundImage = config.EmptyImage

	sheet, err := Generate(cfg)
	require.NoError(t, err)

	rules := parseSheet(t, sheet.String())
	assert.Equal(t, "none", rules[4].props["background-image"])
	assert.NotContains(t, sheet.String(), "url(")
}

func TestGenerate_RejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"font injection", func(c *config.Config) { c.Font = "Sans; } * { color: red" }},
		{"bad font size", func(c *config.Config) { c.FontSize = "huge" }},
		{"bad weight", func(c *config.Config) { c.FontWeight = "bold;" }},
		{"bad border width", func(c *config.Config) { c.BorderWidth = "thick stuff" }},
		{"bad password border", func(c *config.Config) { c.PasswordBorderWidth = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(cfg)
			sheet, err := Generate(cfg)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Nil(t, sheet)
		})
	}
}
