package utils

import "strings"

func ToUpperCase(s string) string {
	return strings.ToUpper(s)
}

func ToLowerCase(s string) string {
	return strings.ToLower(s)
}

// Reverse reverses s rune by rune, so multi-byte characters stay intact.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Trim strips the ASCII space character from both ends of s. Tabs,
// newlines and other whitespace are left in place; use strings.TrimSpace
// for those.
func Trim(s string) string {
	return strings.Trim(s, " ")
}
