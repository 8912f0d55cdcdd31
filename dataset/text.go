package dataset

import (
	"container/heap"
	"maps"
	"slices"
	"strings"

	"numkit/tree"
)

// SplitString splits s on delimiter the way a line reader consumes tokens:
// empty fields between consecutive delimiters are kept, a single trailing
// delimiter does not open a new field, and an empty s has no tokens.
func SplitString(s string, delimiter rune) []string {
	if s == "" {
		return []string{}
	}
	tokens := strings.Split(s, string(delimiter))
	if last := len(tokens) - 1; tokens[last] == "" {
		tokens = tokens[:last]
	}
	return tokens
}

func JoinStrings(list []string, delimiter string) string {
	return strings.Join(list, delimiter)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// CountWords counts tokens separated by ASCII whitespace, case-insensitively.
// Unicode spaces such as U+00A0 do not separate words, and punctuation stays
// attached, so "end." and "end" are different words.
func CountWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.FieldsFunc(text, isASCIISpace) {
		counts[strings.ToLower(word)]++
	}
	return counts
}

// SortedWords returns the words of counts in alphabetical order.
func SortedWords(counts map[string]int) []string {
	return slices.Sorted(maps.Keys(counts))
}

type WordCount struct {
	Word  string
	Count int
}

// TopWords returns the n most frequent words, most frequent first and
// alphabetical among equal counts.
func TopWords(counts map[string]int, n int) []WordCount {
	if n <= 0 {
		return []WordCount{}
	}

	minHeap := tree.NewMinHeap(n)
	for word, count := range counts {
		minHeap.Offer(&tree.HeapItem{Word: word, Count: count}, n)
	}

	top := make([]WordCount, minHeap.Len())
	for i := len(top) - 1; i >= 0; i-- {
		item := heap.Pop(minHeap).(*tree.HeapItem)
		top[i] = WordCount{Word: item.Word, Count: item.Count}
	}
	return top
}
