package msgpattern

import (
	"fmt"
	"strings"
)

// isPatternWhiteSpace tests membership in the Unicode Pattern_White_Space
// set used by the parser's whitespace skipper (spec section 4.1). This is
// a fixed set of 11 code points, not the general Unicode White_Space
// property, so it is hand-encoded rather than sourced from a library table.
func isPatternWhiteSpace(r rune) bool {
	switch r {
	case 0x0009, 0x000A, 0x000B, 0x000C, 0x000D, 0x0020,
		0x0085, 0x200E, 0x200F, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// isPatternSyntax tests membership in the Unicode Pattern_Syntax set used to
// delimit identifiers (spec section 4.1). ICU4J embeds the property ranges
// directly; we do the same rather than pull in a full Unicode property
// package for one derived set.
func isPatternSyntax(r rune) bool {
	switch {
	case r >= 0x21 && r <= 0x23: // ! " #
		return true
	case r >= 0x25 && r <= 0x2A: // % & ' ( ) *
		return true
	case r >= 0x2B && r <= 0x2F: // + , - . /
		return true
	case r == 0x3A || r == 0x3B: // : ;
		return true
	case r >= 0x3C && r <= 0x40: // < = > ? @
		return true
	case r >= 0x5B && r <= 0x5E: // [ \ ] ^
		return true
	case r == 0x60: // `
		return true
	case r >= 0x7B && r <= 0x7E: // { | } ~
		return true
	case r >= 0x00A1 && r <= 0x00A7:
		return true
	case r == 0x00A9 || r == 0x00AB || r == 0x00AC || r == 0x00AE:
		return true
	case r >= 0x00B0 && r <= 0x00B1:
		return true
	case r == 0x00B6 || r == 0x00BB || r == 0x00BF || r == 0x00D7 || r == 0x00F7:
		return true
	case r >= 0x2010 && r <= 0x2027:
		return true
	case r >= 0x2030 && r <= 0x205E:
		return true
	case r >= 0x2190 && r <= 0x2BFF:
		return true
	case r >= 0x2E00 && r <= 0x2E7F:
		return true
	case r >= 0x3001 && r <= 0x3003:
		return true
	case r >= 0x3008 && r <= 0x3020:
		return true
	case r == 0x3030:
		return true
	case r >= 0xFD3E && r <= 0xFD3F:
		return true
	case r >= 0xFE45 && r <= 0xFE46:
		return true
	default:
		return false
	}
}

// charAt returns the rune at index i of src, or the zero rune if i is out of
// range. Centralizing this keeps every call site safe without repeating a
// bounds check, the way the source's fixed-width index access is always
// range-checked before dereferencing.
func charAt(src []rune, i int) rune {
	if i < 0 || i >= len(src) {
		return 0
	}
	return src[i]
}

// skipWhitespace advances pos across a run of Pattern_White_Space.
func skipWhitespace(src []rune, pos int) int {
	for pos < len(src) && isPatternWhiteSpace(src[pos]) {
		pos++
	}
	return pos
}

// skipIdentifier advances pos across a run of characters that are neither
// Pattern_White_Space nor Pattern_Syntax.
func skipIdentifier(src []rune, pos int) int {
	for pos < len(src) {
		r := src[pos]
		if isPatternWhiteSpace(r) || isPatternSyntax(r) {
			break
		}
		pos++
	}
	return pos
}

// skipDouble advances pos across the character set a signed decimal/∞
// literal may be composed of: digits, sign, '.', 'e'/'E', and U+221E.
func skipDouble(src []rune, pos int) int {
	for pos < len(src) {
		r := src[pos]
		if (r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.' || r == 'e' || r == 'E' || r == infinityRune {
			pos++
			continue
		}
		break
	}
	return pos
}

const infinityRune = '∞'

// isArgTypeChar tests for an ASCII letter, used while scanning the SIMPLE
// argument type keyword span.
func isArgTypeChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// startsWithCI tests whether src[pos:] begins with keyword, compared
// case-insensitively, ASCII-only. Used solely for the fixed argument type
// keywords (choice/plural/select/selectordinal); "offset:" and "other" are
// matched literally, and this must never be used for general Unicode case
// folding.
func startsWithCI(src []rune, pos int, keyword string) bool {
	if pos+len(keyword) > len(src) {
		return false
	}
	for i := 0; i < len(keyword); i++ {
		if asciiLower(src[pos+i]) != asciiLower(rune(keyword[i])) {
			return false
		}
	}
	return true
}

func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// errorContextMaxPreview caps the quoted preview in an error message.
const errorContextMaxPreview = 24

// errorContext renders a short, quoted preview of pattern starting at pos,
// prefixed with the offending index when pos > 0. This mirrors the
// "%s:%d:%d %s" positional prefix the teacher's sqlparser.Error.Error()
// builds, simplified to a single-line scalar index since ICU patterns are
// not tracked by line/column.
func errorContext(pattern []rune, pos int) string {
	if pattern == nil {
		return ""
	}
	end := pos + errorContextMaxPreview
	if end > len(pattern) {
		end = len(pattern)
	}
	start := pos
	if start < 0 {
		start = 0
	}
	if start > len(pattern) {
		start = len(pattern)
	}
	preview := string(pattern[start:end])
	var b strings.Builder
	if pos > 0 {
		fmt.Fprintf(&b, "[at pattern index %d] ", pos)
	}
	b.WriteByte('"')
	b.WriteString(preview)
	b.WriteByte('"')
	b.WriteByte(' ')
	return b.String()
}
