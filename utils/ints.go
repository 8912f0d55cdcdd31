package utils

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ReverseInts returns a reversed copy of vec.
func ReverseInts(vec []int) []int {
	reversed := slices.Clone(vec)
	slices.Reverse(reversed)
	return reversed
}

// FormatInts renders vec as "[1, 2, 3]".
func FormatInts(vec []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func PrintInts(w io.Writer, vec []int) error {
	_, err := fmt.Fprintln(w, FormatInts(vec))
	return err
}
