package insight

import "strings"

// SplitReport breaks a long report into delivery-sized parts. Lines are
// accumulated whole and never split mid-text; the buffer is flushed as one
// part whenever the next line would push it past the limit.
func SplitReport(report string, limit int) []string {
	var parts []string
	var current []string
	length := 0

	for _, line := range strings.Split(report, "\n") {
		if len(current) > 0 && length+len(line)+1 > limit {
			parts = append(parts, strings.Join(current, "\n"))
			current = []string{line}
			length = len(line)
			continue
		}
		current = append(current, line)
		length += len(line) + 1
	}
	if len(current) > 0 {
		parts = append(parts, strings.Join(current, "\n"))
	}

	return parts
}
