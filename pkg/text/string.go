package text

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf8"
)

// SquashBlankLines replaces successive blank lines by a single empty one.
func SquashBlankLines(text string) string {
	var result bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(text))

	previousLineEmpty := false
	for scanner.Scan() {
		line := scanner.Text()
		if IsBlank(line) {
			if previousLineEmpty {
				continue
			}
			previousLineEmpty = true
		} else {
			previousLineEmpty = false
		}
		result.WriteString(line)
		result.WriteRune('\n')
	}

	return result.String()
}

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// Abbreviate keeps the first line of a text and truncates it to maxChars runes (ellipsis included).
func Abbreviate(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexRune(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i]) + "…"
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	if maxChars <= 1 {
		return "…"
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxChars-1])) + "…"
}
