package agent

import (
	"runtime"
	"sort"
	"strings"

	"github.com/sddkit/sddkit/pkg/errors"
)

// Language codes with a template catalog. The set is closed: templates
// reference {{LANG_CODE}} and the guideline table must cover every code.
var languages = map[string]string{
	"en":    "English",
	"ja":    "Japanese",
	"zh-TW": "Traditional Chinese",
	"zh":    "Chinese",
	"es":    "Spanish",
	"pt":    "Portuguese",
	"de":    "German",
	"fr":    "French",
	"ru":    "Russian",
	"it":    "Italian",
	"ko":    "Korean",
	"ar":    "Arabic",
}

// ParseLang canonicalizes and validates a language code. Matching is
// case-insensitive, so "ZH-tw" resolves to "zh-TW".
func ParseLang(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for code := range languages {
		if strings.EqualFold(code, trimmed) {
			return code, nil
		}
	}
	return "", errors.Newf(errors.ErrLangUnknown, "unknown language %q (valid: %s)", s, strings.Join(Languages(), ", ")).
		WithDetail("lang", s)
}

// Languages returns the sorted supported language codes
func Languages() []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageName returns the English display name of a canonical code
func LanguageName(code string) string {
	return languages[code]
}

// Target platforms
const (
	OSMac     = "mac"
	OSLinux   = "linux"
	OSWindows = "windows"
)

// ParseOS validates a platform name. "darwin" and "macos" are accepted
// as aliases for mac.
func ParseOS(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case OSMac, "darwin", "macos":
		return OSMac, nil
	case OSLinux:
		return OSLinux, nil
	case OSWindows:
		return OSWindows, nil
	default:
		return "", errors.Newf(errors.ErrOSUnknown, "unknown os %q (valid: mac, linux, windows)", s).
			WithDetail("os", s)
	}
}

// DetectOS maps the running platform onto the target platform names
func DetectOS() string {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}
