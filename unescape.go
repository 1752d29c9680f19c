package hcl

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape decoding: an opt-in pass over already-parsed literal text. The
// parser itself never decodes escapes — Value/Text on StringExpr and
// LiteralElement always return the raw bytes between the delimiters,
// escapes and all, so the lossless-cover invariant holds regardless of
// whether a caller ever calls Unescape. Ported from the teacher's
// parserProcessBasicEscapes (query.go/parser.go), extended per spec.md
// §9 with both `\uXXXX` and `\u{XXXX}` unicode escape forms and the
// `$${`/`%%{` literal-marker escapes unique to template strings.

// Unescape decodes the escape sequences in a plain quoted-string
// literal's value, returning the error `\u`/`\u{...}` hex or trailing
// backslash. It has no template-marker escapes to consider: a
// TemplateExpr, not a StringExpr, is what the parser produces whenever
// `${`/`%{` appear in the source.
func (s *StringExpr) Unescape() (string, error) {
	return unescapeLiteral(s.Value, false)
}

// Unescape decodes the escape sequences in one literal run of template
// text, additionally collapsing the `$${`/`%%{` marker escapes back to
// `${`/`%{`.
func (l *LiteralElement) Unescape() (string, error) {
	return unescapeLiteral(l.Value, true)
}

func unescapeLiteral(raw string, templateMarkers bool) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if templateMarkers {
			if strings.HasPrefix(raw[i:], "$${") {
				b.WriteString("${")
				i += 2
				continue
			}
			if strings.HasPrefix(raw[i:], "%%{") {
				b.WriteString("%{")
				i += 2
				continue
			}
		}
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("trailing backslash at end of literal")
		}
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'u':
			n, consumed, err := decodeUnicodeEscape(raw[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(n)
			i += consumed
		default:
			return "", fmt.Errorf("invalid escape sequence '\\%c'", raw[i])
		}
	}
	return b.String(), nil
}

// decodeUnicodeEscape decodes the hex digits following a `\u`, in
// either the fixed-width `XXXX` form or the braced `{XXXX...}` form,
// returning the decoded rune and how many bytes of s (after the `u`)
// it consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	if len(s) > 0 && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, fmt.Errorf("unterminated \\u{...} escape")
		}
		hex := s[1:end]
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid \\u{%s} escape: %w", hex, err)
		}
		return rune(n), end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, fmt.Errorf("incomplete \\u escape")
	}
	n, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid \\u%s escape: %w", s[:4], err)
	}
	return rune(n), 4, nil
}
