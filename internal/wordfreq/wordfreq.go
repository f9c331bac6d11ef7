// Package wordfreq implements the word-frequency exercise: count how often
// each word appears in a text, ignoring case and punctuation.
package wordfreq

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
)

// Entry is one word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Count tallies word frequencies from r. Words are lowercased and stripped of
// punctuation before counting; a word that is all punctuation is dropped.
func Count(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := normalize(scanner.Text())
		if word == "" {
			continue
		}
		counts[word]++
	}
	return counts, scanner.Err()
}

// CountFile tallies word frequencies for a file on disk.
func CountFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Count(f)
}

// Rank orders the counts descending, ties broken lexicographically.
func Rank(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Top returns the first n ranked entries (all of them when n <= 0 or exceeds
// the vocabulary).
func Top(counts map[string]int, n int) []Entry {
	ranked := Rank(counts)
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

func normalize(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
