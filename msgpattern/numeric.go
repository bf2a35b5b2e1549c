package msgpattern

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// numberParseResult is the sentinel family returned by parseArgNumber.
type numberParseResult int

const (
	notNumber numberParseResult = iota
	notValid
	overflow
	validNumber
)

// parseArgNumber parses src[start:limit) as a non-negative integer argument
// number. A leading zero is only legal if the whole substring is exactly
// "0". Overflow is declared during left-to-right accumulation the moment
// the value leaves MaxValue's range, so a 20-digit run never wraps.
func parseArgNumber(src []rune, start, limit int) (int, numberParseResult) {
	if start >= limit {
		return 0, notNumber
	}
	for i := start; i < limit; i++ {
		if src[i] < '0' || src[i] > '9' {
			return 0, notNumber
		}
	}
	if limit-start > 1 && src[start] == '0' {
		return 0, notValid
	}
	if limit-start > 10 {
		// More than 10 digits is already beyond MaxValue's range; no need to
		// accumulate.
		return 0, overflow
	}
	value := 0
	for i := start; i < limit; i++ {
		value = value*10 + int(src[i]-'0')
		if value > MaxValue {
			return 0, overflow
		}
	}
	return value, validNumber
}

// signedNumericLiteral is the outcome of parsing a signed integer, double,
// or infinity literal (spec section 4.2, second entry point).
type signedNumericLiteral struct {
	isInt    bool
	intValue int
	dblValue float64
}

// parseSignedNumericLiteral consumes an optional sign, then either the
// infinity code point (if allowInfinity) or a decimal literal. Values that
// don't fit in a bounded int, or that contain a decimal point or exponent,
// are parsed as float64 and reported as doubles. shopspring/decimal is used
// first to validate the lexeme is a syntactically well-formed decimal
// number before the value is converted to the float64 the Part payload
// actually stores.
func parseSignedNumericLiteral(src []rune, start, limit int, allowInfinity bool) (signedNumericLiteral, error) {
	if start >= limit {
		return signedNumericLiteral{}, &Error{Kind: InvalidNumericValue, Pos: start, Message: "Missing numeric value"}
	}

	pos := start
	negative := false
	if src[pos] == '+' || src[pos] == '-' {
		negative = src[pos] == '-'
		pos++
	}
	if pos >= limit {
		return signedNumericLiteral{}, &Error{Kind: InvalidNumericValue, Pos: start, Message: "Missing numeric value after sign"}
	}

	if allowInfinity && src[pos] == infinityRune && pos+1 == limit {
		v := posInf
		if negative {
			v = negInf
		}
		return signedNumericLiteral{isInt: false, dblValue: v}, nil
	}

	lexeme := string(src[start:limit])

	// Fast path: a pure digit run that fits the bounded value becomes an
	// ArgInt. Unlike argument numbers, a leading zero is fine here ("007" is
	// the integer 7). Overflow and any non-digit (dot, exponent) fall
	// through to the double path below.
	magnitude, fitsInt := 0, true
	for i := pos; i < limit; i++ {
		if src[i] < '0' || src[i] > '9' {
			fitsInt = false
			break
		}
		magnitude = magnitude*10 + int(src[i]-'0')
		if magnitude > MaxValue {
			fitsInt = false
			break
		}
	}
	if fitsInt {
		if negative {
			magnitude = -magnitude
		}
		return signedNumericLiteral{isInt: true, intValue: magnitude}, nil
	}

	if _, err := decimal.NewFromString(lexeme); err != nil {
		return signedNumericLiteral{}, &Error{Kind: InvalidNumericValue, Pos: start, Message: "Invalid numeric value: " + lexeme}
	}

	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return signedNumericLiteral{}, &Error{Kind: InvalidNumericValue, Pos: start, Message: "Invalid numeric value: " + lexeme}
	}
	return signedNumericLiteral{isInt: false, dblValue: f}, nil
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)
