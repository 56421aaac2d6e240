package config

import (
	"regexp"
	"strings"
)

var (
	lengthRegex  = regexp.MustCompile(`^(0|[0-9]*\.?[0-9]+(px|pt|pc|em|rem|ex|in|cm|mm|%))$`)
	keywordRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)
	fontSizes    = map[string]bool{
		"xx-small": true, "x-small": true, "small": true, "medium": true,
		"large": true, "x-large": true, "xx-large": true, "smaller": true, "larger": true,
	}
)

// IsCSSLength reports whether s is a CSS length such as "2px" or "0".
func IsCSSLength(s string) bool {
	return lengthRegex.MatchString(strings.TrimSpace(s))
}

// IsCSSFontSize reports whether s is a length or a font size keyword.
func IsCSSFontSize(s string) bool {
	s = strings.TrimSpace(s)
	return lengthRegex.MatchString(s) || fontSizes[strings.ToLower(s)]
}

// IsCSSKeyword reports whether s is a bare identifier such as "bold".
func IsCSSKeyword(s string) bool {
	return keywordRegex.MatchString(strings.TrimSpace(s))
}

// IsCSSFontFamily reports whether s can be substituted as a font family list.
func IsCSSFontFamily(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.ContainsAny(s, ";{}\n\r")
}
