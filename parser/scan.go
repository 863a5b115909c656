package parser

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Results of isSubChar that are not a new offset.
const (
	noMatch = -1
	newline = -2
)

// isSubChar checks the character at offset against pred. It returns
// noMatch, newline when the match was '\n', or the offset just past the
// matched character.
func isSubChar(pred func(rune) bool, offset int, source string) int {
	if offset >= len(source) {
		return noMatch
	}
	r, width := utf8.DecodeRuneInString(source[offset:])
	if !pred(r) {
		return noMatch
	}
	if r == '\n' {
		return newline
	}
	return offset + width
}

// isSubString matches needle at offset and returns the position after it.
// On a miss the offset is -1 and row and col are returned unchanged.
func isSubString(needle string, offset, row, col int, source string) (int, int, int) {
	if offset+len(needle) > len(source) || source[offset:offset+len(needle)] != needle {
		return -1, row, col
	}
	newOffset := offset + len(needle)
	nl := strings.LastIndexByte(needle, '\n')
	if nl < 0 {
		return newOffset, row, col + utf8.RuneCountInString(needle)
	}
	return newOffset, row + strings.Count(needle, "\n"), utf8.RuneCountInString(needle[nl:])
}

func isAsciiCode(code byte, offset int, source string) bool {
	return offset < len(source) && source[offset] == code
}

// consumeBase reads a run of digits in base 2, 8 or 10 starting at offset.
// It returns the offset after the run, its value, and whether the value
// overflowed int. The whole run is consumed even after an overflow.
func consumeBase(base, offset int, source string) (int, int, bool) {
	total, overflow := 0, false
	for ; offset < len(source); offset++ {
		digit := int(source[offset]) - '0'
		if digit < 0 || digit >= base {
			break
		}
		total, overflow = accumulate(total, base, digit, overflow)
	}
	return offset, total, overflow
}

func consumeBase16(offset int, source string) (int, int, bool) {
	total, overflow := 0, false
	for ; offset < len(source); offset++ {
		var digit int
		switch c := source[offset]; {
		case '0' <= c && c <= '9':
			digit = int(c - '0')
		case 'A' <= c && c <= 'F':
			digit = int(c-'A') + 10
		case 'a' <= c && c <= 'f':
			digit = int(c-'a') + 10
		default:
			return offset, total, overflow
		}
		total, overflow = accumulate(total, 16, digit, overflow)
	}
	return offset, total, overflow
}

func accumulate(total, base, digit int, overflow bool) (int, bool) {
	if overflow || total > (math.MaxInt-digit)/base {
		return 0, true
	}
	return base*total + digit, false
}

func chompBase10(offset int, source string) int {
	for offset < len(source) && '0' <= source[offset] && source[offset] <= '9' {
		offset++
	}
	return offset
}

// consumeDotAndExp scans an optional fraction and exponent after the
// integer run [start, offset). It returns the end of the literal, or
// ok=false with the offset of a marker that is missing its digits.
//
// An exponent only counts once the mantissa has a digit, so the scanned
// text is always a valid strconv.ParseFloat input.
func consumeDotAndExp(start, offset int, source string) (int, bool) {
	if isAsciiCode('.', offset, source) {
		end := chompBase10(offset+1, source)
		if end == offset+1 {
			return end, false
		}
		return consumeExp(end, source)
	}
	if offset == start {
		return offset, true
	}
	return consumeExp(offset, source)
}

func consumeExp(offset int, source string) (int, bool) {
	if !isAsciiCode('e', offset, source) && !isAsciiCode('E', offset, source) {
		return offset, true
	}
	expOffset := offset + 1
	if isAsciiCode('+', expOffset, source) || isAsciiCode('-', expOffset, source) {
		expOffset++
	}
	end := chompBase10(expOffset, source)
	if end == expOffset {
		return end, false
	}
	return end, true
}
