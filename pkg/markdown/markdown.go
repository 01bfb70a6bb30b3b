package markdown

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

var (
	reBoldAsterisks     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldUnderscores   = regexp.MustCompile(`__(.*?)__`)
	reItalicAsterisks   = regexp.MustCompile(`\*(.*?)\*`)
	reItalicUnderscores = regexp.MustCompile(`_(.*?)_`)
)

// IsHeading returns if a given line is a Markdown heading and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 6 || level >= len(line) || line[level] != ' ' {
		return false, "", 0
	}
	return true, strings.TrimSpace(line[level+1:]), level
}

// Heading formats a heading of the given level.
func Heading(level int, title string) string {
	level = min(max(level, 1), 6)
	return strings.Repeat("#", level) + " " + strings.TrimSpace(title)
}

// StripEmphasis removes bold and italic markers.
func StripEmphasis(md string) string {
	md = reBoldAsterisks.ReplaceAllString(md, "$1")
	md = reBoldUnderscores.ReplaceAllString(md, "$1")
	md = reItalicAsterisks.ReplaceAllString(md, "$1")
	md = reItalicUnderscores.ReplaceAllString(md, "$1")
	return md
}

// Slug generates a slug from one or more Markdown values. Blank values are ignored.
func Slug(values ...string) string {
	var parts []string
	for _, value := range values {
		if text.IsBlank(value) {
			continue
		}
		parts = append(parts, StripEmphasis(value))
	}
	return slug.Make(strings.Join(parts, " "))
}

// Hashtags converts free-form tags into a line of Markdown hashtags.
// Duplicated tags are only reported once.
func Hashtags(tags []string) string {
	var hashtags []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		s := Slug(tag)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		hashtags = append(hashtags, "#"+s)
	}
	return strings.Join(hashtags, " ")
}
