// Package msgvalidate checks that the plural/selectordinal arguments in a
// parsed message use CLDR-compliant selector keywords for a given locale.
package msgvalidate

import (
	"fmt"
	"strings"

	"github.com/smasher164/xid"

	"github.com/goicu/icumsg/msgpattern"
	"github.com/goicu/icumsg/pluralrules"
)

// PluralComplianceException is raised when a plural/selectordinal argument
// uses a selector keyword that is not a valid CLDR category name and is
// not a numeric (=N) selector. Unlike ArgumentWarning, this always aborts
// validation for the whole pattern: a structurally invalid selector can't
// be reasoned about locale-appropriateness at all.
type PluralComplianceException struct {
	ArgumentName string
	Locale       string
	Expected     []string
	Found        []string
	Invalid      []string
}

func (e *PluralComplianceException) Error() string {
	return fmt.Sprintf(
		"argument %q: selector(s) %v are not valid CLDR plural categories (locale %q expects %v, found %v)",
		e.ArgumentName, e.Invalid, e.Locale, e.Expected, e.Found,
	)
}

// ArgumentWarning reports a single plural/selectordinal argument whose
// selectors are syntactically valid CLDR categories but locale-
// inappropriate: categories the locale doesn't need (wrong locale), or
// categories the locale requires that the pattern is missing. Numeric
// (=N) selectors present on the argument are reported alongside, since
// CLDR never treats them as interchangeable with a category keyword —
// even =1 in English does not satisfy "one".
type ArgumentWarning struct {
	ArgumentName string
	Expected     []string
	Found        []string
	Missing      []string
	WrongLocale  []string
	Numeric      []string
	// NameLooksOdd is set when Options.CheckArgumentNames was given and
	// ArgumentName doesn't look like a normal identifier (a name like "1st"
	// is legal ICU syntax but reads as neither an identifier nor a
	// positional number). Pure digit strings such as "0" are positional
	// arguments and are not flagged.
	NameLooksOdd bool
}

// looksLikeIdentifier reports whether name reads as a conventional
// identifier: starts with a Unicode identifier-start character (or '_'),
// continues with identifier-continue characters. Pure digit strings (ICU's
// own positional-argument convention) are accepted too.
func looksLikeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if allDigits(runes) {
		return true
	}
	if !(xid.Start(runes[0]) || runes[0] == '_') {
		return false
	}
	for _, r := range runes[1:] {
		if !(xid.Continue(r) || r == '_') {
			return false
		}
	}
	return true
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ComplianceWarning aggregates every ArgumentWarning raised while walking
// one PartStore. A nil *ComplianceWarning (returned alongside a nil error)
// means the pattern is fully compliant.
type ComplianceWarning struct {
	Warnings []ArgumentWarning
}

func (w *ComplianceWarning) Error() string {
	var b strings.Builder
	for i, a := range w.Warnings {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "argument %q: missing=%v wrongLocale=%v numeric=%v", a.ArgumentName, a.Missing, a.WrongLocale, a.Numeric)
	}
	return b.String()
}

// Options controls the optional lint passes ValidateWithOptions runs on
// top of the CLDR category checks.
type Options struct {
	// CheckArgumentNames enables the NameLooksOdd lint: a warning for
	// plural/selectordinal arguments whose name doesn't read as a
	// conventional identifier. Off by default so a clean pattern
	// validates to nil regardless of how its arguments are named.
	CheckArgumentNames bool
}

// Validate walks store's Parts and checks every PLURAL/SELECTORDINAL
// argument's selectors against locale's CLDR categories. It returns a
// *PluralComplianceException the moment it finds a structurally invalid
// selector anywhere in the pattern; otherwise it returns the aggregate
// ComplianceWarning across all arguments (nil if every argument is fully
// compliant). Validate never mutates store.
func Validate(store *msgpattern.PartStore, locale string) (*ComplianceWarning, error) {
	return ValidateWithOptions(store, locale, Options{})
}

// ValidateWithOptions is Validate plus the opt-in lint passes in opts.
func ValidateWithOptions(store *msgpattern.PartStore, locale string, opts Options) (*ComplianceWarning, error) {
	var warnings []ArgumentWarning

	for i := 0; i < store.Count(); i++ {
		part := store.Part(i)
		if part.Type != msgpattern.ArgStart {
			continue
		}
		if part.ArgType != msgpattern.ArgClassPlural && part.ArgType != msgpattern.ArgClassSelectOrdinal {
			continue
		}

		name := store.Substring(store.Part(i + 1))
		limit := store.LimitPartIndex(i)

		var found []string
		var invalid []string
		for j := i + 2; j < limit; j++ {
			p := store.Part(j)
			if p.Type != msgpattern.ArgSelector {
				continue
			}
			sel := store.Substring(p)
			if strings.HasPrefix(sel, "=") {
				continue
			}
			found = append(found, sel)
			if !pluralrules.IsValidCategory(sel) {
				invalid = append(invalid, sel)
			}
		}

		var expected []string
		if part.ArgType == msgpattern.ArgClassPlural {
			expected = pluralrules.CardinalCategories(locale)
		} else {
			expected = pluralrules.OrdinalCategories(locale)
		}

		if len(invalid) > 0 {
			return nil, &PluralComplianceException{
				ArgumentName: name,
				Locale:       locale,
				Expected:     expected,
				Found:        found,
				Invalid:      invalid,
			}
		}

		missing := stringSetSubtract(expected, found, "other")
		wrongLocale := stringSetIntersectValidMinusExpected(found, expected)
		numeric := explicitValueSelectors(store, i, limit)
		nameLooksOdd := opts.CheckArgumentNames && !looksLikeIdentifier(name)

		if len(wrongLocale) > 0 || len(missing) > 0 || nameLooksOdd {
			warnings = append(warnings, ArgumentWarning{
				ArgumentName: name,
				Expected:     expected,
				Found:        found,
				Missing:      missing,
				WrongLocale:  wrongLocale,
				Numeric:      numeric,
				NameLooksOdd: nameLooksOdd,
			})
		}
	}

	if len(warnings) == 0 {
		return nil, nil
	}
	return &ComplianceWarning{Warnings: warnings}, nil
}

func explicitValueSelectors(store *msgpattern.PartStore, argStart, argLimit int) []string {
	var out []string
	for j := argStart + 2; j < argLimit; j++ {
		p := store.Part(j)
		if p.Type != msgpattern.ArgSelector {
			continue
		}
		sel := store.Substring(p)
		if strings.HasPrefix(sel, "=") {
			out = append(out, sel)
		}
	}
	return out
}

// stringSetSubtract returns expected minus found minus except, preserving
// expected's order.
func stringSetSubtract(expected, found []string, except string) []string {
	in := make(map[string]bool, len(found))
	for _, f := range found {
		in[f] = true
	}
	var out []string
	for _, e := range expected {
		if e == except || in[e] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// stringSetIntersectValidMinusExpected returns the valid-CLDR-category
// selectors in found that locale's expected set doesn't need, excluding
// "other" (always treated as valid and never locale-inappropriate).
func stringSetIntersectValidMinusExpected(found, expected []string) []string {
	want := make(map[string]bool, len(expected))
	for _, e := range expected {
		want[e] = true
	}
	var out []string
	for _, f := range found {
		if f == "other" {
			continue
		}
		if pluralrules.IsValidCategory(f) && !want[f] {
			out = append(out, f)
		}
	}
	return out
}
