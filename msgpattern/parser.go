package msgpattern

import (
	"fmt"
)

// Parser is a recursive-descent, single-pass parser for ICU MessageFormat
// pattern strings. A Parser holds only its apostrophe mode: every parse
// call builds its own session (rune vector and in-progress PartStore), so
// one Parser can be reused for any number of patterns, including from
// several goroutines at once.
type Parser struct {
	mode ApostropheMode
}

// NewParser constructs a Parser that applies the given apostrophe mode to
// every pattern it parses.
func NewParser(mode ApostropheMode) *Parser {
	return &Parser{mode: mode}
}

// session holds the mutable state of a single parse: the prescanned rune
// vector (positions are Unicode scalar offsets, never bytes) and the
// PartStore being built.
type session struct {
	src   []rune
	store *PartStore
}

func (p *Parser) newSession(pattern string) *session {
	src := []rune(pattern)
	return &session{src: src, store: newPartStore(src, p.mode)}
}

func (s *session) errAt(kind ErrorKind, pos int, format string, args ...any) error {
	return (&Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}).withPattern(s.src)
}

// Parse parses pattern and returns the resulting PartStore, or an error
// describing the first syntax/size violation encountered. On error the
// partial store must be discarded; there is nothing reusable in it.
func (p *Parser) Parse(pattern string) (*PartStore, error) {
	return p.run(pattern, func(s *session) error {
		_, _, err := s.parseMessage(0, 0, 0, ArgClassNone, false)
		return err
	})
}

// ParseChoiceStyle enters directly at the choice-style grammar (spec section
// 4.4's parseChoiceStyle), as if pattern were the style text following
// "{arg, choice,".
func (p *Parser) ParseChoiceStyle(pattern string) (*PartStore, error) {
	return p.run(pattern, func(s *session) error {
		_, err := s.parseChoiceStyle(0, 0, true)
		return err
	})
}

// ParsePluralStyle enters directly at the plural-style grammar, as if
// pattern were the style text following "{arg, plural,".
func (p *Parser) ParsePluralStyle(pattern string) (*PartStore, error) {
	return p.run(pattern, func(s *session) error {
		_, err := s.parsePluralOrSelectStyle(0, 0, ArgClassPlural, true)
		return err
	})
}

// ParseSelectStyle enters directly at the select-style grammar, as if
// pattern were the style text following "{arg, select,".
func (p *Parser) ParseSelectStyle(pattern string) (*PartStore, error) {
	return p.run(pattern, func(s *session) error {
		_, err := s.parsePluralOrSelectStyle(0, 0, ArgClassSelect, true)
		return err
	})
}

// run drives one parse entry point, converting the store's size-cap panics
// (part count, stored-double count) into ordinary returned errors so every
// failure reaches the caller through the same channel.
func (p *Parser) run(pattern string, parse func(*session) error) (store *PartStore, err error) {
	s := p.newSession(pattern)
	defer func() {
		if r := recover(); r != nil {
			if capErr, ok := r.(*Error); ok {
				store, err = nil, capErr.withPattern(s.src)
				return
			}
			panic(r)
		}
	}()
	if err := parse(s); err != nil {
		return nil, err
	}
	return s.store, nil
}

// parseMessage is the state-machine driver over plain message text: it
// recognizes quoting, argument openers, and the structural characters that
// are only meaningful in the enclosing argument's context (# for
// plural/selectordinal, | for choice, } for any enclosing argument).
//
// It returns the position just past whatever ended the message (except a
// '}' ending a choice branch, which is left unconsumed and whose position
// is returned), the character that ended it (0 for a natural end-of-input,
// '}' or '|' otherwise), and an error if the message was malformed.
//
// eofIsTerminal marks sub-messages entered through the direct
// ParseChoiceStyle entry point, where reaching end-of-input is the normal
// way the final branch ends rather than an unmatched-brace error. Plural
// and select branch bodies never set it: they are always brace-delimited,
// even when the style itself was entered directly.
func (s *session) parseMessage(pos, startLen, nesting int, parent ArgClass, eofIsTerminal bool) (int, rune, error) {
	if nesting > MaxNestingDepth {
		return 0, 0, s.errAt(TooLarge, pos, "Nesting level exceeds maximum")
	}
	s.store.append(Part{Type: MsgStart, Index: pos, Length: startLen, Value: nesting})
	pos += startLen

	for {
		if pos >= len(s.src) {
			if (nesting > 0 || parent != ArgClassNone) && !eofIsTerminal {
				return 0, 0, s.errAt(UnmatchedBrace, pos, "Unmatched '{' braces in message %s", quotePreview(s.src))
			}
			s.store.append(Part{Type: MsgLimit, Index: pos, Length: 0, Value: nesting})
			return pos, 0, nil
		}

		c := s.src[pos]
		switch {
		case c == '\'':
			newPos, err := s.handleApostrophe(pos)
			if err != nil {
				return 0, 0, err
			}
			pos = newPos

		case c == '{':
			argStartIdx := s.store.append(Part{Type: ArgStart, Index: pos, Length: 1, ArgType: ArgClassNone})
			newPos, err := s.parseArg(argStartIdx, pos+1, nesting)
			if err != nil {
				return 0, 0, err
			}
			pos = newPos

		case c == '}':
			if parent == ArgClassChoice {
				// Zero-length limit; the '}' is left unconsumed for the
				// choice style parser, which hands it to the enclosing
				// argument's ArgLimit.
				s.store.append(Part{Type: MsgLimit, Index: pos, Length: 0, Value: nesting})
				return pos, '}', nil
			}
			if nesting > 0 || parent != ArgClassNone {
				s.store.append(Part{Type: MsgLimit, Index: pos, Length: 1, Value: nesting})
				return pos + 1, '}', nil
			}
			// Unmatched '}' at the top level: ICU tolerates it as literal text.
			pos++

		case c == '#' && (parent == ArgClassPlural || parent == ArgClassSelectOrdinal):
			s.store.append(Part{Type: ReplaceNumber, Index: pos, Length: 1})
			pos++

		case c == '|' && parent == ArgClassChoice:
			s.store.append(Part{Type: MsgLimit, Index: pos, Length: 1, Value: nesting})
			return pos + 1, '|', nil

		default:
			pos++
		}
	}
}

// handleApostrophe processes a single apostrophe encountered while scanning
// plain message text, per spec section 4.4's apostrophe-mode table.
func (s *session) handleApostrophe(pos int) (int, error) {
	next := charAt(s.src, pos+1)

	if next == '\'' {
		// Doubled apostrophe: always a literal single apostrophe, in every
		// apostrophe mode and whether or not we're inside a quoted literal.
		// Length covers both consumed source characters (unlike the
		// zero-width INSERT_CHAR the end-of-string recovery below
		// synthesizes) so reconstruction never re-emits them as a gap.
		s.store.append(Part{Type: InsertChar, Index: pos, Length: 2, Value: '\''})
		return pos + 2, nil
	}

	mode := s.store.mode
	startsQuote := mode == DoubleRequired || (mode == DoubleOptional && isQuoteTrigger(next))
	if !startsQuote {
		return pos + 1, nil
	}

	s.store.append(Part{Type: SkipSyntax, Index: pos, Length: 1})
	pos++

	for {
		if pos >= len(s.src) {
			// Lenient recovery (spec section 4.4/4.5): an unterminated
			// quoted literal at end-of-string does not abort the parse.
			s.store.append(Part{Type: InsertChar, Index: pos, Length: 0, Value: '\''})
			return pos, nil
		}
		c := s.src[pos]
		if c == '\'' {
			if charAt(s.src, pos+1) == '\'' {
				s.store.append(Part{Type: InsertChar, Index: pos, Length: 2, Value: '\''})
				pos += 2
				continue
			}
			s.store.append(Part{Type: SkipSyntax, Index: pos, Length: 1})
			pos++
			return pos, nil
		}
		pos++
	}
}

func isQuoteTrigger(r rune) bool {
	return r == '{' || r == '}' || r == '#' || r == '|'
}

// parseArg parses an argument's contents, having already consumed the
// opening '{' (argStartIdx identifies the already-emitted ArgStart Part
// that this function will classify via patchArgType). pos is the position
// immediately after '{'.
func (s *session) parseArg(argStartIdx, pos, nesting int) (int, error) {
	pos = skipWhitespace(s.src, pos)
	nameStart := pos
	pos = skipIdentifier(s.src, pos)
	if pos == nameStart {
		return 0, s.errAt(BadArgumentSyntax, nameStart, "Expected an argument name or number")
	}
	if pos-nameStart > MaxLength {
		return 0, s.errAt(TooLarge, nameStart, "Argument name too long")
	}

	num, res := parseArgNumber(s.src, nameStart, pos)
	switch res {
	case validNumber:
		s.store.append(Part{Type: ArgNumber, Index: nameStart, Length: pos - nameStart, Value: num})
	case notNumber:
		s.store.append(Part{Type: ArgName, Index: nameStart, Length: pos - nameStart})
	case notValid:
		return 0, s.errAt(BadArgumentSyntax, nameStart, "Argument number must not have a leading zero")
	case overflow:
		return 0, s.errAt(TooLarge, nameStart, "Argument number overflows")
	}

	pos = skipWhitespace(s.src, pos)
	if pos >= len(s.src) {
		return 0, s.errAt(UnmatchedBrace, pos, "Unmatched '{' braces in message %s", quotePreview(s.src))
	}

	switch s.src[pos] {
	case '}':
		s.store.patchArgType(argStartIdx, ArgClassNone)
		s.store.append(Part{Type: ArgLimit, Index: pos, Length: 1, Value: int(ArgClassNone), ArgType: ArgClassNone})
		return pos + 1, nil

	case ',':
		pos = skipWhitespace(s.src, pos+1)
		kwStart := pos
		for pos < len(s.src) && isArgTypeChar(s.src[pos]) {
			pos++
		}
		class := classifyArgType(s.src, kwStart, pos)
		if class == ArgClassSimple {
			return s.finishSimpleArg(argStartIdx, kwStart, pos, nesting)
		}
		s.store.patchArgType(argStartIdx, class)
		return s.finishComplexArg(argStartIdx, pos, nesting, class)

	default:
		return 0, s.errAt(BadArgumentSyntax, pos, "Expected ',' or '}' after argument name")
	}
}

// classifyArgType maps the type-keyword span [kwStart,kwPos) to an argument
// classification. The four complex keywords are compared case-insensitively
// (ASCII only, like ICU); anything else, known sub-formatter or not, is
// SIMPLE and its keyword is kept verbatim for the consumer.
func classifyArgType(src []rune, kwStart, kwPos int) ArgClass {
	switch kwPos - kwStart {
	case len("choice"):
		// "choice", "plural" and "select" are all six characters.
		switch {
		case startsWithCI(src, kwStart, "choice"):
			return ArgClassChoice
		case startsWithCI(src, kwStart, "plural"):
			return ArgClassPlural
		case startsWithCI(src, kwStart, "select"):
			return ArgClassSelect
		}
	case len("selectordinal"):
		if startsWithCI(src, kwStart, "selectordinal") {
			return ArgClassSelectOrdinal
		}
	}
	return ArgClassSimple
}

// finishSimpleArg handles a SIMPLE argument: the [kwStart,kwPos) span is the
// (possibly empty) type keyword. An empty keyword is a syntax error; a
// non-empty one is always accepted (number/date/time/spellout/ordinal/
// duration/anything else all resolve to SIMPLE per spec section 4.4).
func (s *session) finishSimpleArg(argStartIdx, kwStart, kwPos, nesting int) (int, error) {
	if kwPos == kwStart {
		return 0, s.errAt(BadArgumentSyntax, kwStart, "Expected an argument type")
	}
	s.store.patchArgType(argStartIdx, ArgClassSimple)
	s.store.append(Part{Type: ArgTypeKeyword, Index: kwStart, Length: kwPos - kwStart})

	pos := skipWhitespace(s.src, kwPos)
	if pos >= len(s.src) {
		return 0, s.errAt(UnmatchedBrace, pos, "Unmatched '{' braces in message %s", quotePreview(s.src))
	}
	switch s.src[pos] {
	case '}':
		s.store.append(Part{Type: ArgLimit, Index: pos, Length: 1, Value: int(ArgClassSimple), ArgType: ArgClassSimple})
		return pos + 1, nil
	case ',':
		stylePos, err := s.parseSimpleStyle(skipWhitespace(s.src, pos+1))
		if err != nil {
			return 0, err
		}
		pos = skipWhitespace(s.src, stylePos)
		if pos >= len(s.src) || s.src[pos] != '}' {
			return 0, s.errAt(BadArgumentSyntax, pos, "Expected '}' after argument style")
		}
		s.store.append(Part{Type: ArgLimit, Index: pos, Length: 1, Value: int(ArgClassSimple), ArgType: ArgClassSimple})
		return pos + 1, nil
	default:
		return 0, s.errAt(BadArgumentSyntax, pos, "Expected ',' or '}' after argument type")
	}
}

// finishComplexArg handles the shared tail of CHOICE/PLURAL/SELECT/
// SELECTORDINAL: a style body is mandatory, introduced by ','.
func (s *session) finishComplexArg(argStartIdx, kwPos, nesting int, class ArgClass) (int, error) {
	pos := skipWhitespace(s.src, kwPos)
	if pos >= len(s.src) {
		return 0, s.errAt(UnmatchedBrace, pos, "Unmatched '{' braces in message %s", quotePreview(s.src))
	}
	if s.src[pos] == '}' {
		return 0, s.errAt(NoStyleForComplexArg, pos, "A style part is required for %s arguments", argClassToDescription[class])
	}
	if s.src[pos] != ',' {
		return 0, s.errAt(BadArgumentSyntax, pos, "Expected ',' before %s style", argClassToDescription[class])
	}
	pos = skipWhitespace(s.src, pos+1)

	var err error
	switch class {
	case ArgClassChoice:
		pos, err = s.parseChoiceStyle(pos, nesting, false)
	default:
		pos, err = s.parsePluralOrSelectStyle(pos, nesting, class, false)
	}
	if err != nil {
		return 0, err
	}

	pos = skipWhitespace(s.src, pos)
	if pos >= len(s.src) || s.src[pos] != '}' {
		return 0, s.errAt(BadArgumentSyntax, pos, "Expected '}' to close %s argument", argClassToDescription[class])
	}
	s.store.append(Part{Type: ArgLimit, Index: pos, Length: 1, Value: int(class), ArgType: class})
	return pos + 1, nil
}

// quotePreview renders the whole pattern quoted, for UnmatchedBrace messages
// that echo the full source the way ICU4J's message does.
func quotePreview(src []rune) string {
	return fmt.Sprintf("%q", string(src))
}
