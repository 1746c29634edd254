package config

import (
	"strings"
)

// GenerateConfigContent returns the example settings with every value
// commented out, suitable as a starting point for a new settings file.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetExampleConfigContent())
}

// commentOutConfigValues comments out every assignment and array-table
// header, keeping comments, blank lines and plain table headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
