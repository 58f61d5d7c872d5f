package terminal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Parse splits a line into a command token and its argument. The line is
// trimmed, the command token is case folded and the argument is everything
// after the first run of whitespace, kept verbatim.
func Parse(line string) (command, argument string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	token, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		token = line[:i]
		rest = strings.TrimLeftFunc(line[i:], unicode.IsSpace)
	}
	return cases.Fold().String(token), rest
}
