package msgpattern

// parseSimpleStyle consumes a SIMPLE argument's style text: everything up to
// the matching '}', honoring apostrophe-quoting so a quoted brace does not
// count toward the balance. The whole span becomes a single ArgStyle Part;
// style text is opaque to MessageFormat itself, handed to a sub-formatter
// verbatim. Returns the position of the unconsumed closing '}'.
func (s *session) parseSimpleStyle(pos int) (int, error) {
	start := pos
	depth := 0
	inQuote := false
	for {
		if pos >= len(s.src) {
			if inQuote {
				return 0, s.errAt(UnterminatedQuotedLiteral, pos, "Unterminated quoted literal in argument style")
			}
			return 0, s.errAt(UnmatchedBrace, pos, "Unmatched '{' braces in message %s", quotePreview(s.src))
		}
		c := s.src[pos]
		if inQuote {
			if c == '\'' {
				inQuote = false
			}
			pos++
			continue
		}
		switch c {
		case '\'':
			inQuote = true
			pos++
		case '{':
			depth++
			pos++
		case '}':
			if depth == 0 {
				if pos-start > MaxLength {
					return 0, s.errAt(TooLarge, start, "Argument style too long")
				}
				s.store.append(Part{Type: ArgStyle, Index: start, Length: pos - start})
				return pos, nil
			}
			depth--
			pos++
		default:
			pos++
		}
	}
}

// styleName renders class the way it reads in a pattern, for error messages.
func styleName(class ArgClass) string {
	switch class {
	case ArgClassChoice:
		return "choice"
	case ArgClassPlural:
		return "plural"
	case ArgClassSelectOrdinal:
		return "selectordinal"
	default:
		return "select"
	}
}

func kindForComplexSelector(class ArgClass) ErrorKind {
	if class == ArgClassSelect {
		return BadSelectSyntax
	}
	return BadPluralSyntax
}

// parseChoiceStyle parses the body of a choice style: a '|'-separated list
// of "number separator submessage" branches, where separator is one of
// # < ≤. directEntry distinguishes the public ParseChoiceStyle entry point
// (the final branch's sub-message legitimately ends at end-of-input) from
// the normal "{arg, choice, ...}" path, where the style ends at the
// unconsumed outer '}' and end-of-input is an unmatched brace.
func (s *session) parseChoiceStyle(pos, msgNesting int, directEntry bool) (int, error) {
	pos = skipWhitespace(s.src, pos)
	if pos >= len(s.src) || s.src[pos] == '}' {
		return 0, s.errAt(BadChoiceSyntax, pos, "Missing choice argument pattern")
	}
	for {
		numStart := pos
		pos = skipDouble(s.src, pos)
		if pos == numStart {
			return 0, s.errAt(BadChoiceSyntax, numStart, "Bad choice pattern syntax")
		}
		if pos-numStart > MaxLength {
			return 0, s.errAt(TooLarge, numStart, "Choice number too long")
		}
		if err := s.emitNumericLiteral(numStart, pos, true); err != nil {
			return 0, err
		}

		pos = skipWhitespace(s.src, pos)
		if pos >= len(s.src) {
			return 0, s.errAt(BadChoiceSyntax, pos, "Bad choice pattern syntax")
		}
		switch s.src[pos] {
		case '#', '<', '≤':
			s.store.append(Part{Type: ArgSelector, Index: pos, Length: 1})
			pos++
		default:
			return 0, s.errAt(BadChoiceSyntax, pos, "Expected choice separator (#<≤) instead of %q", s.src[pos])
		}

		newPos, stop, err := s.parseMessage(pos, 0, msgNesting+1, ArgClassChoice, directEntry)
		if err != nil {
			return 0, err
		}
		pos = newPos
		switch stop {
		case 0:
			// Natural end of input; only reachable when directEntry.
			return pos, nil
		case '}':
			// Left unconsumed by parseMessage for the enclosing argument.
			if directEntry {
				return 0, s.errAt(BadChoiceSyntax, pos, "Bad choice pattern syntax")
			}
			return pos, nil
		default:
			// '|' was consumed by the sub-message's MsgLimit; next branch.
			pos = skipWhitespace(s.src, pos)
		}
	}
}

// parsePluralOrSelectStyle parses the body of a plural/select/selectordinal
// style: an optional leading "offset:" clause (plural/selectordinal only),
// then one or more "selector { submessage }" branches, requiring at least
// one selector that is literally "other".
func (s *session) parsePluralOrSelectStyle(pos, msgNesting int, class ArgClass, directEntry bool) (int, error) {
	isEmpty := true
	hasOther := false
	hasPluralStyle := class == ArgClassPlural || class == ArgClassSelectOrdinal

	for {
		pos = skipWhitespace(s.src, pos)
		eos := pos >= len(s.src)
		if eos || s.src[pos] == '}' {
			// An embedded style ends at '}' and a direct-entry style ends at
			// end-of-input; reaching the other terminator is malformed.
			if eos != directEntry {
				return 0, s.errAt(kindForComplexSelector(class), pos, "Bad %s pattern syntax", styleName(class))
			}
			if !hasOther {
				return 0, s.errAt(MissingOtherKeyword, pos, "Missing 'other' keyword in %s pattern", styleName(class))
			}
			return pos, nil
		}

		selStart := pos
		if hasPluralStyle && s.src[pos] == '=' {
			// Explicit-value selector "=number". The numeric Part lands
			// immediately before its ArgSelector; the selector span covers
			// the '=' and the number.
			pos = skipDouble(s.src, pos+1)
			if pos-selStart == 1 {
				return 0, s.errAt(kindForComplexSelector(class), selStart, "Bad %s pattern syntax", styleName(class))
			}
			if pos-selStart > MaxLength {
				return 0, s.errAt(TooLarge, selStart, "Argument selector too long")
			}
			if err := s.emitNumericLiteral(selStart+1, pos, false); err != nil {
				return 0, err
			}
			s.store.append(Part{Type: ArgSelector, Index: selStart, Length: pos - selStart})
		} else {
			pos = skipIdentifier(s.src, pos)
			length := pos - selStart
			if length == 0 {
				return 0, s.errAt(kindForComplexSelector(class), selStart, "Bad %s pattern syntax", styleName(class))
			}
			if hasPluralStyle && string(s.src[selStart:pos]) == "offset" && charAt(s.src, pos) == ':' {
				// Pseudo-selector "offset:"; the comparison is literal and
				// case-sensitive, unlike the argument type keywords.
				if !isEmpty {
					return 0, s.errAt(OffsetNotFirst, selStart, "Plural argument 'offset:' (if present) must precede key-message pairs")
				}
				valueStart := skipWhitespace(s.src, pos+1)
				pos = skipDouble(s.src, valueStart)
				if pos == valueStart {
					return 0, s.errAt(BadPluralSyntax, valueStart, "Missing value for plural 'offset:'")
				}
				if pos-valueStart > MaxLength {
					return 0, s.errAt(TooLarge, valueStart, "Plural offset value too long")
				}
				if err := s.emitNumericLiteral(valueStart, pos, false); err != nil {
					return 0, err
				}
				isEmpty = false
				continue // no message fragment after the offset
			}
			if length > MaxLength {
				return 0, s.errAt(TooLarge, selStart, "Argument selector too long")
			}
			s.store.append(Part{Type: ArgSelector, Index: selStart, Length: length})
			if string(s.src[selStart:pos]) == "other" {
				hasOther = true
			}
		}

		pos = skipWhitespace(s.src, pos)
		if pos >= len(s.src) || s.src[pos] != '{' {
			return 0, s.errAt(kindForComplexSelector(class), pos, "No message fragment after %s selector", styleName(class))
		}
		newPos, _, err := s.parseMessage(pos, 1, msgNesting+1, class, false)
		if err != nil {
			return 0, err
		}
		pos = newPos
		isEmpty = false
	}
}

// emitNumericLiteral parses src[start:limit) as a signed numeric literal and
// appends the resulting ArgInt or ArgDouble Part.
func (s *session) emitNumericLiteral(start, limit int, allowInfinity bool) error {
	lit, err := parseSignedNumericLiteral(s.src, start, limit, allowInfinity)
	if err != nil {
		if pe, ok := err.(*Error); ok {
			pe.withPattern(s.src)
		}
		return err
	}
	if lit.isInt {
		s.store.append(Part{Type: ArgInt, Index: start, Length: limit - start, Value: lit.intValue})
		return nil
	}
	idx := s.store.appendDouble(lit.dblValue)
	s.store.append(Part{Type: ArgDouble, Index: start, Length: limit - start, Value: idx})
	return nil
}
