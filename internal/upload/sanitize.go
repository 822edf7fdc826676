// Package upload stores listing images in a flat directory.
package upload

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

var separators = strings.NewReplacer("/", " ", `\`, " ")

// Sanitize reduces a client-supplied filename to [A-Za-z0-9_.-]. Accents
// are folded to ASCII, path separators and whitespace runs become a single
// "_", and leading or trailing dots and underscores are trimmed. The
// result may be empty.
func Sanitize(name string) string {
	name = norm.NFKD.String(name)
	name = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, name)
	name = separators.Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// AllowedExtension reports whether the text after the last dot of name is
// an accepted image extension, ignoring case.
func AllowedExtension(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(name[i+1:])]
	return ok
}
