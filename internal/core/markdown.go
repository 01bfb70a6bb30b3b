package core

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julien-sobczak/the-moodwriter/pkg/filesystem"
	"github.com/julien-sobczak/the-moodwriter/pkg/markdown"
	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

// JournalPath returns the absolute path to the journal file for the given date.
func JournalPath(journalDir string, date time.Time) string {
	year, month, day := date.Date()
	dirPath := filepath.Join(journalDir, fmt.Sprintf("%04d", year))
	return filepath.Join(dirPath, fmt.Sprintf("%04d-%02d-%02d.md", year, month, day))
}

// CreateJournalFileIfMissing creates the journal file of the day with its top heading.
func CreateJournalFileIfMissing(journalDir string, date time.Time) (string, error) {
	entryPath := JournalPath(journalDir, date)
	if filesystem.Exists(entryPath) {
		return entryPath, nil
	}

	title := fmt.Sprintf("Journal: %s", date.Format(dateLayout))
	if err := filesystem.AppendString(entryPath, markdown.Heading(1, title)+"\n"); err != nil {
		return "", err
	}
	return entryPath, nil
}

// AppendToJournal completes a journal file with a new Markdown section.
func AppendToJournal(entryPath string, sectionTitle string, sectionContent string) error {
	section := fmt.Sprintf("\n%s\n\n%s\n", markdown.Heading(2, sectionTitle), strings.TrimSpace(sectionContent))
	if err := filesystem.AppendString(entryPath, section); err != nil {
		return fmt.Errorf("unable to write to file %q: %w", entryPath, err)
	}
	return nil
}

// ContainsMarkdownSection checks if a file contains a section whose heading contains the given substring.
func ContainsMarkdownSection(filePath, sectionTitle string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		ok, title, level := markdown.IsHeading(scanner.Text())
		if ok && level >= 2 && strings.Contains(title, sectionTitle) {
			return true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return false, err
	}

	return false, nil
}

// GenerateTodaySymlink creates or updates the symlink today.md inside the journal directory.
func GenerateTodaySymlink(journalDir string, entryPath string) error {
	todayPath := filepath.Join(journalDir, "today.md")
	if err := os.Symlink(entryPath, todayPath); err != nil {
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		if err := os.Remove(todayPath); err != nil {
			return err
		}
		return os.Symlink(entryPath, todayPath)
	}
	return nil
}

// EntrySection formats an entry as a journal section.
func EntrySection(entry *MoodEntry) (string, string) {
	at := entry.CreatedAt.Format("15:04")

	var title string
	switch entry.Kind {
	case KindDream:
		title = fmt.Sprintf("🌙 Dream at %s", at)
	case KindJournal:
		title = fmt.Sprintf("📝 Journal at %s", at)
	default:
		emoji := "🙂"
		if mood, err := ParseMoodLabel(entry.Mood); err == nil {
			emoji = mood.Emoji
		}
		title = fmt.Sprintf("%s Mood: %s at %s", emoji, entry.Mood, at)
	}

	var sb strings.Builder
	if entryText := strings.TrimSpace(entry.Text()); entryText != "" {
		sb.WriteString(strings.TrimSpace(text.SquashBlankLines(entryText)))
		sb.WriteString("\n\n")
	}
	if entry.Kind == KindDream {
		sb.WriteString(fmt.Sprintf("* Mood: %s\n", entry.Mood))
		for _, symbol := range entry.DreamSymbols {
			sb.WriteString(fmt.Sprintf("* Symbol: %s\n", symbol))
		}
	} else {
		sb.WriteString(fmt.Sprintf("* Score: %d/100\n", entry.EmotionalScore))
		sb.WriteString(fmt.Sprintf("* Stress: %d%%, Energy: %d%%, Anxiety: %d%%\n", entry.StressLevel, entry.EnergyLevel, entry.AnxietyLevel))
	}
	if entry.CrisisRisk {
		sb.WriteString("* Crisis risk detected\n")
	}
	if hashtags := markdown.Hashtags(entry.Tags); hashtags != "" {
		sb.WriteString("\n")
		sb.WriteString(hashtags)
		sb.WriteString("\n")
	}
	return title, sb.String()
}

// SessionSection formats a wellness session as a journal section.
func SessionSection(session Session) (string, string) {
	title := fmt.Sprintf("%s %s at %s", session.Emoji(), session.Title(), session.CompletedAt.Format("15:04"))
	content := fmt.Sprintf("* Duration: %d minutes\n* XP: +%d\n\n%s\n", session.Minutes, session.XP(), markdown.Hashtags([]string{"wellness", session.Activity}))
	return title, content
}
