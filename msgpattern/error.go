package msgpattern

import "fmt"

// ErrorKind identifies which rule a parse violated. The two user-visible
// classifications from the taxonomy (invalid-argument syntax vs.
// out-of-bounds size/nesting caps) are exposed via Kind.Class.
type ErrorKind int

const (
	UnmatchedBrace ErrorKind = iota + 1
	BadArgumentSyntax
	NoStyleForComplexArg
	BadChoiceSyntax
	BadPluralSyntax
	BadSelectSyntax
	UnterminatedQuotedLiteral
	MissingOtherKeyword
	InvalidNumericValue
	OffsetNotFirst
	TooLarge
	IndexOutOfBounds
)

var errorKindName = map[ErrorKind]string{
	UnmatchedBrace:            "UnmatchedBrace",
	BadArgumentSyntax:         "BadArgumentSyntax",
	NoStyleForComplexArg:      "NoStyleForComplexArg",
	BadChoiceSyntax:           "BadChoiceSyntax",
	BadPluralSyntax:           "BadPluralSyntax",
	BadSelectSyntax:           "BadSelectSyntax",
	UnterminatedQuotedLiteral: "UnterminatedQuotedLiteral",
	MissingOtherKeyword:       "MissingOtherKeyword",
	InvalidNumericValue:       "InvalidNumericValue",
	OffsetNotFirst:            "OffsetNotFirst",
	TooLarge:                  "TooLarge",
	IndexOutOfBounds:          "IndexOutOfBounds",
}

func (k ErrorKind) String() string {
	return errorKindName[k]
}

// ErrorClass is the coarse classification every ErrorKind maps onto: a
// syntactically invalid argument, or a resource/size limit exceeded.
type ErrorClass int

const (
	InvalidArgument ErrorClass = iota
	OutOfBounds
)

// Class reports which of the two user-visible classifications this kind
// belongs to.
func (k ErrorKind) Class() ErrorClass {
	switch k {
	case TooLarge, IndexOutOfBounds:
		return OutOfBounds
	default:
		return InvalidArgument
	}
}

// Error is the error type returned by a failed parse. It carries the
// violated rule, the character position at which it was raised, and a
// one-line human message already prefixed with pattern context.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Message string

	patternForContext []rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s%s", errorContext(e.patternForContext, e.Pos), e.Message)
}

// withPattern sets patternForContext (session.errAt and Parser.run call it)
// so Error() can render errorContext without every call site plumbing the
// pattern through by hand.
func (e *Error) withPattern(pattern []rune) *Error {
	e.patternForContext = pattern
	return e
}

// ParseErrors aggregates failures across a batch of independently parsed
// patterns, the way sqlcode.SQLCodeParseErrors aggregates a document's
// parser errors for display.
type ParseErrors struct {
	Errors []error
}

func (e *ParseErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d pattern(s) failed to parse:\n", len(e.Errors))
	for _, err := range e.Errors {
		msg += "  " + err.Error() + "\n"
	}
	return msg
}
