// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// GenerateUnifiedDiff compares before and after line by line and renders the result
// in unified format under a single hunk. Identical input yields "".
// Output longer than 10,000 lines is truncated with a marker.
func GenerateUnifiedDiff(before, after []byte, beforeLabel, afterLabel string) string {
	out, _ := Unified(before, after, beforeLabel, afterLabel)
	return out
}

// Unified is GenerateUnifiedDiff that also reports line counts.
func Unified(before, after []byte, beforeLabel, afterLabel string) (string, Stats) {
	if bytes.Equal(before, after) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var (
		body  bytes.Buffer
		stats Stats
	)
	oldCount, newCount := 0, 0
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				body.WriteString(" ")
				oldCount++
				newCount++
			case diffmatchpatch.DiffDelete:
				body.WriteString("-")
				oldCount++
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				body.WriteString("+")
				newCount++
				stats.Added++
			}
			body.WriteString(line)
			body.WriteString("\n")
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -%s +%s @@\n", hunkRange(oldCount), hunkRange(newCount))
	buf.Write(body.Bytes())

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func hunkRange(count int) string {
	if count == 0 {
		return "0,0"
	}
	return fmt.Sprintf("1,%d", count)
}
