package batch

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WordEntry represents a word with the number of its stressed syllable
type WordEntry struct {
	Word   string
	Stress int
	// Line is the 1-based line number the entry was read from
	Line int
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - "счастье = 2"
// - "счастье 2"
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	var entries []WordEntry
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entry.Line = lineNo
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}

func parseLine(line string) (WordEntry, error) {
	var word, stress string

	if strings.Contains(line, "=") {
		parts := strings.SplitN(line, "=", 2)
		word = strings.TrimSpace(parts[0])
		stress = strings.TrimSpace(parts[1])
	} else {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return WordEntry{}, fmt.Errorf("expected \"word = stress\" or \"word stress\", got %q", line)
		}
		word, stress = fields[0], fields[1]
	}

	if word == "" {
		return WordEntry{}, fmt.Errorf("missing word in %q", line)
	}

	n, err := strconv.Atoi(stress)
	if err != nil {
		return WordEntry{}, fmt.Errorf("invalid stress %q for %q", stress, word)
	}

	return WordEntry{Word: word, Stress: n}, nil
}
