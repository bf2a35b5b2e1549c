package msgpattern

import "strings"

// AutoQuoteApostropheDeep renders store's pattern in canonical
// DOUBLE_REQUIRED form: every lone apostrophe that was literal under
// DOUBLE_OPTIONAL becomes a doubled '' so the result parses identically
// under either apostrophe mode. This is the repair half of the lenient
// end-of-string recovery parseMessage performs for unterminated quoted
// literals (section on Auto-quote repair): the INSERT_CHAR Part that
// recovery appended is exactly what lets this function close the literal
// it never saw closed.
func AutoQuoteApostropheDeep(store *PartStore) string {
	var b strings.Builder
	appendAutoQuoted(store, 0, store.Count(), &b)
	return b.String()
}

// appendAutoQuoted walks Parts [start, limit) and writes out into out,
// copying ordinary spans and SkipSyntax quote marks verbatim, writing every
// InsertChar Part as a doubled '', and doubling every lone apostrophe in
// the literal text between Parts.
//
// An already-doubled '' in the source is a single InsertChar Part whose
// Length covers both consumed characters (unlike the zero-width InsertChar
// the end-of-string recovery in handleApostrophe synthesizes for a literal
// that was never closed) — that's what lets the gap-tracking below skip
// past both source characters instead of re-emitting them as plain text.
func appendAutoQuoted(store *PartStore, start, limit int, out *strings.Builder) {
	pattern := []rune(store.Pattern())
	pos := 0
	if start < store.Count() {
		pos = store.PatternIndex(start)
	}

	end := len(pattern)
	if limit < store.Count() {
		end = store.PatternIndex(limit)
	}

	writeLiteralRun := func(from, to int) {
		for _, r := range pattern[from:to] {
			if r == '\'' {
				out.WriteString("''")
			} else {
				out.WriteRune(r)
			}
		}
	}

	for i := start; i < limit; i++ {
		part := store.Part(i)
		if part.Index > pos {
			writeLiteralRun(pos, part.Index)
		}
		switch part.Type {
		case SkipSyntax:
			// An opening or closing quote mark that was already present;
			// copy verbatim rather than doubling it.
			out.WriteRune(pattern[part.Index])
		case InsertChar:
			out.WriteString("''")
		default:
			// Every other Part writes its own source span here. Names,
			// type keywords, selectors and numbers never contain an
			// apostrophe (it is Pattern_Syntax). ArgStyle text is copied
			// verbatim: parseSimpleStyle treats its apostrophes as quoting
			// for the sub-formatter, so they are not doubled. Spans that
			// overlap an already-written region (an explicit "=N" selector
			// covers its own numeric Part) only contribute their unwritten
			// tail.
			if part.Limit() > pos {
				from := part.Index
				if from < pos {
					from = pos
				}
				if part.Type == ArgStyle {
					out.WriteString(string(pattern[from:part.Limit()]))
				} else {
					writeLiteralRun(from, part.Limit())
				}
			}
		}
		if part.Limit() > pos {
			pos = part.Limit()
		}
	}
	if pos < end {
		writeLiteralRun(pos, end)
	}
}

// AppendReducedApostrophes collapses every doubled apostrophe in the scalar
// range [start, limit) of s to a single literal apostrophe and appends the
// result to out. It is the inverse primitive of the auto-quote rendering:
// consumers extracting literal text from a DOUBLE_REQUIRED pattern span use
// it to undo the '' escaping. Lone apostrophes are copied through
// unchanged; classifying them as quote syntax is the parser's job, not this
// helper's.
func AppendReducedApostrophes(s string, start, limit int, out *strings.Builder) {
	runes := []rune(s)
	if limit > len(runes) {
		limit = len(runes)
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < limit; i++ {
		r := runes[i]
		out.WriteRune(r)
		if r == '\'' && i+1 < limit && runes[i+1] == '\'' {
			i++
		}
	}
}
