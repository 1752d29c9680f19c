package hcl

import (
	"fmt"
	"unicode/utf8"
)

// Input validation that sits outside the grammar proper: well-formed
// UTF-8 and the absence of stray control characters in string content.
// validateCommentText is defined here but the parser does not call it,
// so comment text is not checked. Ported from the teacher's validateUTF8/
// validateCommentText/isControlChar, narrowed to HCL's single quoting
// form (no '''/""" multiline strings — heredocs cover that role here).

func validateUTF8(data []byte) string {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Sprintf("invalid UTF-8 byte at position %d", i)
		}
		i += size
	}
	return ""
}

func isControlChar(r rune) bool {
	return (r >= 0 && r <= 0x1F) || r == 0x7F
}

// validateCommentText checks a `#`/`//` line comment's text (not
// including the leading marker or trailing line ending) for invalid
// control characters; tabs are allowed.
func validateCommentText(s string) string {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return "invalid UTF-8 in comment"
		}
		if r != '\t' && isControlChar(r) {
			return fmt.Sprintf("control character U+%04X in comment", r)
		}
		i += size
	}
	return ""
}

// validateStringText checks the unescaped content of a quoted string
// (the bytes between the quotes, escapes not yet processed) for
// invalid control characters; `\n`/`\t`/`\r` must appear as escapes,
// never literally, per spec.md §4.2.
func validateStringText(s string) string {
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			i += 2
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return "invalid UTF-8 in string"
		}
		if isControlChar(r) {
			return fmt.Sprintf("control character U+%04X in string", r)
		}
		i += size
	}
	return ""
}
