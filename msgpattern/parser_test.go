package msgpattern

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, pattern string) *PartStore {
	t.Helper()
	store, err := NewParser(DoubleOptional).Parse(pattern)
	require.NoError(t, err)
	return store
}

func TestParseTrivialMessage(t *testing.T) {
	store := parseOK(t, "Hi")
	require.Equal(t, 2, store.Count())
	assert.Equal(t, MsgStart, store.PartType(0))
	assert.Equal(t, 0, store.Part(0).Index)
	assert.Equal(t, MsgLimit, store.PartType(1))
	assert.Equal(t, 2, store.Part(1).Index)
}

func TestParseSimpleNamedArgument(t *testing.T) {
	store := parseOK(t, "Hello, {name}!")
	require.Equal(t, 5, store.Count())

	assert.Equal(t, MsgStart, store.PartType(0))

	argStart := store.Part(1)
	assert.Equal(t, ArgStart, argStart.Type)
	assert.Equal(t, ArgClassNone, argStart.ArgType)
	assert.Equal(t, 7, argStart.Index)
	assert.True(t, store.PartSubstringMatches(argStart, "{"))

	name := store.Part(2)
	assert.Equal(t, ArgName, name.Type)
	assert.Equal(t, 8, name.Index)
	assert.True(t, store.PartSubstringMatches(name, "name"))

	limit := store.Part(3)
	assert.Equal(t, ArgLimit, limit.Type)
	assert.Equal(t, 12, limit.Index)
	assert.True(t, store.PartSubstringMatches(limit, "}"))

	assert.Equal(t, MsgLimit, store.PartType(4))
	assert.Equal(t, 14, store.Part(4).Index)
}

func TestParseChoiceStyleDirectEntry(t *testing.T) {
	store, err := NewParser(DoubleOptional).ParseChoiceStyle("0#no|1#one|2#two")
	require.NoError(t, err)
	require.Equal(t, 12, store.Count())

	first := store.Part(0)
	assert.Equal(t, ArgInt, first.Type)
	assert.Equal(t, 0.0, store.NumericValue(first))
}

func TestParsePluralArgument(t *testing.T) {
	store := parseOK(t, "{count, plural, one{# item} other{# items}}")

	var types []PartType
	for i := 0; i < store.Count(); i++ {
		types = append(types, store.PartType(i))
	}
	want := []PartType{
		MsgStart,
		ArgStart, ArgName,
		ArgSelector, MsgStart, ReplaceNumber, MsgLimit,
		ArgSelector, MsgStart, ReplaceNumber, MsgLimit,
		ArgLimit,
		MsgLimit,
	}
	require.Equal(t, want, types)

	argStart := store.Part(1)
	assert.Equal(t, ArgClassPlural, argStart.ArgType)
	assert.True(t, store.PartSubstringMatches(store.Part(2), "count"))
	assert.True(t, store.PartSubstringMatches(store.Part(3), "one"))
	assert.True(t, store.PartSubstringMatches(store.Part(7), "other"))

	argLimit := store.Part(11)
	assert.Equal(t, ArgClassPlural, argLimit.ArgType)
}

func TestParseUnmatchedBraceReportsInvalidArgument(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("Hi {name")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnmatchedBrace, pe.Kind)
	assert.Equal(t, InvalidArgument, pe.Kind.Class())
}

func TestArgumentNameLeadingZero(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{01}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadArgumentSyntax, pe.Kind)

	store := parseOK(t, "{0}")
	require.Equal(t, ArgNumber, store.Part(2).Type)
	assert.Equal(t, 0, store.Part(2).Value)
}

func TestApostropheModeDifference(t *testing.T) {
	optional := parseOK(t, "It's")
	require.Equal(t, 2, optional.Count(), "a lone apostrophe with no trigger char is plain text in DOUBLE_OPTIONAL")

	// DOUBLE_REQUIRED always treats a lone ' as opening a quote. With no
	// matching closer before end-of-string, the lenient end-of-string
	// recovery kicks in (section 4.4/4.5) rather than failing the parse.
	required, err := NewParser(DoubleRequired).Parse("It's fine")
	require.NoError(t, err)
	require.Equal(t, 4, required.Count())
	assert.Equal(t, SkipSyntax, required.PartType(1))
	assert.Equal(t, InsertChar, required.PartType(2))
}

func TestDoubledApostropheIsLiteralQuote(t *testing.T) {
	store := parseOK(t, "It''s")
	require.Equal(t, 3, store.Count())
	insert := store.Part(1)
	assert.Equal(t, InsertChar, insert.Type)
	assert.Equal(t, int('\''), insert.Value)
	assert.Equal(t, 2, insert.Length)
}

func TestMissingOtherKeywordIsRejected(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{count, plural, one{# item}}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MissingOtherKeyword, pe.Kind)
}

func TestInvalidSelectorKeywordAcceptedByParser(t *testing.T) {
	// "some" is not a valid CLDR category; §4.7 (msgvalidate) is what rejects
	// it as non-compliant, not the structural parser, which only requires a
	// syntactically valid identifier plus a final "other".
	store := parseOK(t, "{count, plural, some{# items} other{# items}}")
	assert.True(t, store.PartSubstringMatches(store.Part(3), "some"))
}

func TestOffsetParsedAndDistinctFromExplicitSelector(t *testing.T) {
	store := parseOK(t, "{count, plural, offset:1 =0{none} one{# left} other{# left}}")
	argStart := 1
	assert.Equal(t, 1.0, store.PluralOffset(argStart))

	// The explicit "=0" selector also carries its own ArgInt, which must not
	// be confused with the real offset.
	var sawExplicitSelectorValue bool
	for i := 0; i < store.Count(); i++ {
		p := store.Part(i)
		if p.Type == ArgSelector && store.PartSubstringMatches(p, "=0") {
			sawExplicitSelectorValue = true
			require.Equal(t, ArgInt, store.Part(i-1).Type)
			assert.Equal(t, 0, store.Part(i-1).Value)
		}
	}
	assert.True(t, sawExplicitSelectorValue)
}

func TestNumericValueRoundTripsInfinity(t *testing.T) {
	store, err := NewParser(DoubleOptional).ParseChoiceStyle("-∞#negInf|∞#posInf")
	require.NoError(t, err)
	assert.Equal(t, math.Inf(-1), store.NumericValue(store.Part(0)))
}

func TestParseIsDeterministic(t *testing.T) {
	p := NewParser(DoubleOptional)
	a, err := p.Parse("{n, select, yes{Yes} other{No}}")
	require.NoError(t, err)
	b, err := p.Parse("{n, select, yes{Yes} other{No}}")
	require.NoError(t, err)
	require.Equal(t, a.Count(), b.Count())
	for i := 0; i < a.Count(); i++ {
		assert.Equal(t, a.Part(i), b.Part(i))
	}
}

func TestEveryPartSpanWithinPattern(t *testing.T) {
	store := parseOK(t, "{count, plural, one{# item} other{# items}}")
	for i := 0; i < store.Count(); i++ {
		p := store.Part(i)
		assert.LessOrEqual(t, p.Limit(), len([]rune(store.Pattern())))
	}
}

func TestParseChoiceArgumentInsideMessage(t *testing.T) {
	store := parseOK(t, "{num, choice, 0#no files|1#one file|1<many files}")
	require.Equal(t, 17, store.Count())

	argStart := store.Part(1)
	assert.Equal(t, ArgClassChoice, argStart.ArgType)
	argLimit := store.Part(store.LimitPartIndex(1))
	assert.Equal(t, ArgClassChoice, argLimit.ArgType)
	assert.True(t, store.PartSubstringMatches(argLimit, "}"))

	var selectors []string
	for i := 0; i < store.Count(); i++ {
		if store.PartType(i) == ArgSelector {
			selectors = append(selectors, store.Substring(store.Part(i)))
		}
	}
	assert.Equal(t, []string{"#", "#", "<"}, selectors)
}

func TestChoiceLessThanOrEqualSeparator(t *testing.T) {
	store, err := NewParser(DoubleOptional).ParseChoiceStyle("0#none|1≤some")
	require.NoError(t, err)
	var seenLE bool
	for i := 0; i < store.Count(); i++ {
		p := store.Part(i)
		if p.Type == ArgSelector && store.PartSubstringMatches(p, "≤") {
			seenLE = true
		}
	}
	assert.True(t, seenLE)
}

func TestChoiceMissingSeparatorRejected(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, choice, 0 no files}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadChoiceSyntax, pe.Kind)
	assert.Contains(t, pe.Message, "Expected choice separator (#<≤)")
}

func TestNestingDepthCap(t *testing.T) {
	nested := func(depth int) string {
		return strings.Repeat("{a, select, other{", depth) + "x" + strings.Repeat("}}", depth)
	}

	_, err := NewParser(DoubleOptional).Parse(nested(MaxNestingDepth))
	require.NoError(t, err)

	_, err = NewParser(DoubleOptional).Parse(nested(MaxNestingDepth + 1))
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TooLarge, pe.Kind)
	assert.Equal(t, OutOfBounds, pe.Kind.Class())
}

func TestArgumentNumberBounds(t *testing.T) {
	store := parseOK(t, "{1073741822}")
	require.Equal(t, ArgNumber, store.Part(2).Type)
	assert.Equal(t, 1073741822, store.Part(2).Value)

	_, err := NewParser(DoubleOptional).Parse("{99999999999999999999}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TooLarge, pe.Kind)
}

func TestTopLevelUnmatchedCloseBraceIsLiteral(t *testing.T) {
	store := parseOK(t, "a}b")
	require.Equal(t, 2, store.Count())
	assert.Equal(t, 3, store.Part(1).Index)
}

func TestOtherKeywordIsCaseSensitive(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, plural, one{#} OTHER{#}}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MissingOtherKeyword, pe.Kind)
}

func TestArgTypeKeywordIsCaseInsensitive(t *testing.T) {
	store := parseOK(t, "{n, PLURAL, one{#} other{#}}")
	assert.Equal(t, ArgClassPlural, store.Part(1).ArgType)
}

func TestOffsetKeywordIsCaseSensitive(t *testing.T) {
	// "OFFSET" is an ordinary selector identifier, so the parser expects a
	// message fragment after it rather than a ':'.
	_, err := NewParser(DoubleOptional).Parse("{n, plural, OFFSET:1 other{#}}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadPluralSyntax, pe.Kind)
}

func TestOffsetAfterSelectorRejected(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, plural, other{#} offset:1}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OffsetNotFirst, pe.Kind)
}

func TestOffsetMissingValueRejected(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, plural, offset: other{#}}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadPluralSyntax, pe.Kind)
	assert.Contains(t, pe.Message, "Missing value for plural 'offset:'")
}

func TestExplicitSelectorSignedAndFractional(t *testing.T) {
	store := parseOK(t, "{n, plural, =-1{neg} =1.5{frac} other{#}}")

	var selectors []string
	for i := 0; i < store.Count(); i++ {
		p := store.Part(i)
		if p.Type != ArgSelector {
			continue
		}
		sel := store.Substring(p)
		selectors = append(selectors, sel)
		switch sel {
		case "=-1":
			require.Equal(t, ArgInt, store.Part(i-1).Type)
			assert.Equal(t, -1.0, store.NumericValue(store.Part(i-1)))
		case "=1.5":
			require.Equal(t, ArgDouble, store.Part(i-1).Type)
			assert.Equal(t, 1.5, store.NumericValue(store.Part(i-1)))
		}
	}
	assert.Equal(t, []string{"=-1", "=1.5", "other"}, selectors)
}

func TestSelectorLengthBounds(t *testing.T) {
	atCap := strings.Repeat("a", MaxLength)
	_, err := NewParser(DoubleOptional).Parse("{n, select, " + atCap + "{x} other{y}}")
	require.NoError(t, err)

	overCap := strings.Repeat("a", MaxLength+1)
	_, err = NewParser(DoubleOptional).Parse("{n, select, " + overCap + "{x} other{y}}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TooLarge, pe.Kind)
	assert.Contains(t, pe.Message, "Argument selector too long")
}

func TestSimpleArgumentWithStyle(t *testing.T) {
	store := parseOK(t, "{d, date, yyyy-MM-dd}")
	require.Equal(t, 7, store.Count())
	assert.Equal(t, ArgClassSimple, store.Part(1).ArgType)
	assert.True(t, store.PartSubstringMatches(store.Part(3), "date"))
	style := store.Part(4)
	assert.Equal(t, ArgStyle, style.Type)
	assert.True(t, store.PartSubstringMatches(style, "yyyy-MM-dd"))
}

func TestComplexArgWithoutStyleRejected(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, plural}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, NoStyleForComplexArg, pe.Kind)
}

func TestDirectStyleEntryPoints(t *testing.T) {
	_, err := NewParser(DoubleOptional).ParsePluralStyle("one{# item} other{# items}")
	require.NoError(t, err)

	_, err = NewParser(DoubleOptional).ParseSelectStyle("yes{Yes} other{No}")
	require.NoError(t, err)

	_, err = NewParser(DoubleOptional).ParsePluralStyle("one{# item}")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, MissingOtherKeyword, pe.Kind)

	// A '}' has no enclosing argument to close in a standalone style.
	_, err = NewParser(DoubleOptional).ParseSelectStyle("other{No}}")
	require.Error(t, err)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, BadSelectSyntax, pe.Kind)
}

func TestPluralBranchMissingCloseBrace(t *testing.T) {
	_, err := NewParser(DoubleOptional).Parse("{n, plural, one{x")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnmatchedBrace, pe.Kind)
}
