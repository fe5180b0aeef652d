package naming

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danieljhkim/refolder/internal/fsops"
)

// Style is a folder suffix scheme.
type Style string

// Suffix styles
const (
	StyleNumbers Style = "numbers"
	StyleLetters Style = "letters"
	StyleNone    Style = "none"
)

// DefaultPrefix is the folder prefix used when none is configured.
const DefaultPrefix = "group"

var (
	// ErrUnknownStyle indicates an unrecognized suffix style string.
	ErrUnknownStyle = errors.New("unknown suffix style")

	// ErrNameCollision indicates that distinct indexes would share a folder name.
	ErrNameCollision = errors.New("folder names would collide")
)

// Styles lists the accepted suffix styles in help order.
func Styles() []Style {
	return []Style{StyleNumbers, StyleLetters, StyleNone}
}

// ParseStyle validates a suffix style string.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleNumbers:
		return StyleNumbers, nil
	case StyleLetters:
		return StyleLetters, nil
	case StyleNone:
		return StyleNone, nil
	default:
		return "", fmt.Errorf("%w %q: use numbers|letters|none", ErrUnknownStyle, s)
	}
}

// ValidatePrefix rejects prefixes that are not usable as a directory name.
func ValidatePrefix(prefix string) error {
	if err := fsops.ValidateIdentifier(prefix); err != nil {
		return fmt.Errorf("invalid prefix %q: %w", prefix, err)
	}
	return nil
}

// Validate checks that count folders can be named under prefix and style.
func Validate(prefix string, style Style, count int) error {
	if err := ValidatePrefix(prefix); err != nil {
		return err
	}
	if _, err := ParseStyle(string(style)); err != nil {
		return err
	}
	if style == StyleNone && count > 1 {
		return fmt.Errorf("%w: suffix style %q cannot name %d folders", ErrNameCollision, StyleNone, count)
	}
	return nil
}

// FolderName returns the folder name for a 0-based index.
func FolderName(prefix string, index int, style Style) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("invalid folder index %d", index)
	}
	switch style {
	case StyleNumbers:
		return prefix + "-" + strconv.Itoa(index+1), nil
	case StyleLetters:
		return prefix + "-" + Letters(index), nil
	case StyleNone:
		if index != 0 {
			return "", fmt.Errorf("%w: suffix style %q only names one folder", ErrNameCollision, StyleNone)
		}
		return prefix, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStyle, style)
	}
}

// Letters converts a 0-based index to its bijective base-26 spelling:
// 0 -> a, 25 -> z, 26 -> aa, 27 -> ab, 701 -> zz, 702 -> aaa.
func Letters(index int) string {
	var buf []byte
	for n := index + 1; n > 0; {
		n--
		buf = append(buf, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ParseLetters is the inverse of Letters.
func ParseLetters(s string) (int, bool) {
	if s == "" || len(s) > 12 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, false
		}
		n = n*26 + int(c-'a') + 1
	}
	return n - 1, true
}

// ParseFolderName reports the 0-based index encoded in name, if name is a
// folder that FolderName would produce for prefix and style.
func ParseFolderName(name, prefix string, style Style) (int, bool) {
	if style == StyleNone {
		if name == prefix {
			return 0, true
		}
		return 0, false
	}

	suffix, ok := strings.CutPrefix(name, prefix+"-")
	if !ok || suffix == "" {
		return 0, false
	}

	switch style {
	case StyleNumbers:
		if suffix[0] == '0' || len(suffix) > 9 {
			return 0, false
		}
		for i := 0; i < len(suffix); i++ {
			if suffix[i] < '0' || suffix[i] > '9' {
				return 0, false
			}
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return 0, false
		}
		return n - 1, true
	case StyleLetters:
		return ParseLetters(suffix)
	default:
		return 0, false
	}
}
