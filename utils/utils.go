package utils

import (
	"strings"
	"unicode"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings, -1 if it is not present
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// Title returns the word with its first letter in upper case and the rest in lower case, e.g. monday -> Monday
func Title(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
