package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// NormalizeDNI trims surrounding whitespace from a document number
func NormalizeDNI(dni string) string {
	return strings.TrimSpace(dni)
}

// FormatFullName joins a member's name and second name for display
func FormatFullName(name, secondName string) string {
	name = strings.TrimSpace(name)
	secondName = strings.TrimSpace(secondName)
	if secondName == "" {
		return name
	}
	return fmt.Sprintf("%s %s", secondName, name)
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
