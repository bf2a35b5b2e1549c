// Package msgcompare checks that a translated message keeps the same
// complex argument shape (plural/select/selectordinal/choice) as its
// source message, and optionally runs msgvalidate on each side.
package msgcompare

import (
	"fmt"

	"github.com/goicu/icumsg/msgpattern"
	"github.com/goicu/icumsg/msgvalidate"
)

// MissingComplexFormException is raised when a complex argument present in
// the source message is missing from the target, or present under an
// incompatible argument type. PLURAL and SELECTORDINAL are not considered
// interchangeable: they select on the same operand but enforce different
// CLDR category sets, so a translator swapping one for the other silently
// breaks every branch.
type MissingComplexFormException struct {
	ArgumentName string
	SourceType   msgpattern.ArgClass
	TargetType   msgpattern.ArgClass // ArgClassNone if the argument is absent entirely
}

func (e *MissingComplexFormException) Error() string {
	if e.TargetType == msgpattern.ArgClassNone {
		return fmt.Sprintf("argument %q (%s) is missing from the target message", e.ArgumentName, e.SourceType)
	}
	return fmt.Sprintf("argument %q is %s in the source message but %s in the target", e.ArgumentName, e.SourceType, e.TargetType)
}

// Result carries the outcome of a Compare call that didn't raise a
// MissingComplexFormException.
type Result struct {
	SourceWarnings *msgvalidate.ComplianceWarning
	TargetWarnings *msgvalidate.ComplianceWarning
}

// Options controls which optional validation passes Compare also runs.
type Options struct {
	ValidateSource bool
	ValidateTarget bool
}

// isComplex reports whether class is one of the argument types whose
// branches must be checked for a matching shape across translations.
func isComplex(class msgpattern.ArgClass) bool {
	switch class {
	case msgpattern.ArgClassPlural, msgpattern.ArgClassSelect, msgpattern.ArgClassChoice, msgpattern.ArgClassSelectOrdinal:
		return true
	default:
		return false
	}
}

// complexArgTypes returns a map from argument name to ArgClass for every
// top-level-or-nested complex argument in store. Only the first ArgStart
// seen for a given name is recorded, matching how ICU message bundles treat
// argument names as unique within one pattern.
func complexArgTypes(store *msgpattern.PartStore) map[string]msgpattern.ArgClass {
	out := make(map[string]msgpattern.ArgClass)
	for i := 0; i < store.Count(); i++ {
		part := store.Part(i)
		if part.Type != msgpattern.ArgStart || !isComplex(part.ArgType) {
			continue
		}
		name := store.Substring(store.Part(i + 1))
		if _, ok := out[name]; !ok {
			out[name] = part.ArgType
		}
	}
	return out
}

// Compare checks that every complex argument in source also appears in
// target with the same ArgClass, raising *MissingComplexFormException on
// the first mismatch found (scanning source's arguments in part order).
// When opts requests it, it also runs msgvalidate.Validate against
// sourceLocale/targetLocale and returns both sides' warnings in Result.
func Compare(sourceLocale, targetLocale string, source, target *msgpattern.PartStore, opts Options) (*Result, error) {
	sourceComplex := complexArgTypes(source)
	targetComplex := complexArgTypes(target)

	for i := 0; i < source.Count(); i++ {
		part := source.Part(i)
		if part.Type != msgpattern.ArgStart || !isComplex(part.ArgType) {
			continue
		}
		name := source.Substring(source.Part(i + 1))
		sourceType := sourceComplex[name]

		targetType, ok := targetComplex[name]
		if !ok {
			return nil, &MissingComplexFormException{ArgumentName: name, SourceType: sourceType, TargetType: msgpattern.ArgClassNone}
		}
		if targetType != sourceType {
			return nil, &MissingComplexFormException{ArgumentName: name, SourceType: sourceType, TargetType: targetType}
		}
	}

	result := &Result{}
	var err error
	if opts.ValidateSource {
		result.SourceWarnings, err = msgvalidate.Validate(source, sourceLocale)
		if err != nil {
			return nil, err
		}
	}
	if opts.ValidateTarget {
		result.TargetWarnings, err = msgvalidate.Validate(target, targetLocale)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
