package curate

import (
	"strings"
)

// subjectLabel is the header that names the role model in a raw file.
const subjectLabel = "role model:"

// InferSubjectName looks for the first "Role Model: <name>" header line in
// a raw source text (label matched case-insensitively, leading whitespace
// ignored) and returns the trimmed name. It reports false when there is no
// such line or the first one carries no name.
func InferSubjectName(text string) (string, bool) {
	for line := range strings.Lines(text) {
		line = strings.TrimLeft(line, " \t\ufeff")
		if len(line) < len(subjectLabel) || !strings.EqualFold(line[:len(subjectLabel)], subjectLabel) {
			continue
		}
		name := strings.TrimSpace(line[len(subjectLabel):])
		return name, name != ""
	}
	return "", false
}
