// Package decklist parses plain text decklists.
//
// Each line holds one card: an optional count ("4" or "4x"), the card name
// and an optional flavor name in brackets. Everything after a # is a
// comment.
//
//	4x Lightning Bolt
//	1 Forest Dryad [Tree Friend]  # sideboard
package decklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one decklist line.
type Entry struct {
	Count  int
	Name   string
	Flavor string
	// Line is the 1-based line number in the decklist.
	Line int
}

var (
	commentRe = regexp.MustCompile(`#.*$`)
	spacesRe  = regexp.MustCompile(` {2,}`)
	countRe   = regexp.MustCompile(`^([0-9]+)x?`)
	flavorRe  = regexp.MustCompile(`\[(.*?)\]`)
	nameRe    = regexp.MustCompile(`^(?:\d+x? )?(.*?)(?: \[.*?\])?$`)
)

// ParseLine parses one line. It reports false for blank and comment lines.
func ParseLine(line string) (Entry, bool) {
	line = commentRe.ReplaceAllString(line, "")
	line = spacesRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if line == "" {
		return Entry{}, false
	}

	e := Entry{Count: 1}
	if m := countRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			e.Count = n
		}
	}
	if m := flavorRe.FindStringSubmatch(line); m != nil {
		e.Flavor = m[1]
	}
	e.Name = nameRe.FindStringSubmatch(line)[1]
	return e, true
}

// Parse reads a decklist.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		e, ok := ParseLine(sc.Text())
		if !ok {
			continue
		}
		e.Line = n
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read decklist: %w", err)
	}
	return entries, nil
}

// ParseFile reads the decklist at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// DeckName is the name pages of the decklist at path are saved under: the
// file name up to its first dot.
func DeckName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	name, _, _ := strings.Cut(base, ".")
	return name
}
