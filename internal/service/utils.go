package service

import "strings"

// cleanAnswer makes model output safe to return as a JSON string: invalid
// UTF-8 is dropped, and a reply wrapped in a single markdown fence is unwrapped.
func cleanAnswer(text string) string {
	s := strings.TrimSpace(strings.ToValidUTF8(text, ""))

	if rest, ok := strings.CutPrefix(s, "```"); ok && strings.HasSuffix(rest, "```") {
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			s = strings.TrimSpace(strings.TrimSuffix(rest[nl+1:], "```"))
		}
	}
	return s
}
