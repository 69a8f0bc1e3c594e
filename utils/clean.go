package utils

import (
	"regexp"
	"strings"
)

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CleanDirName replaces characters that are not allowed in file names.
func CleanDirName(input string) string {
	cleaned := unsafeNameChars.ReplaceAllString(input, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
