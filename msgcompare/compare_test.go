package msgcompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goicu/icumsg/msgpattern"
)

func mustParse(t *testing.T, pattern string) *msgpattern.PartStore {
	t.Helper()
	store, err := msgpattern.NewParser(msgpattern.DoubleOptional).Parse(pattern)
	require.NoError(t, err)
	return store
}

func TestCompareIdenticalShapeSucceeds(t *testing.T) {
	source := mustParse(t, "{count, plural, one{1 item} other{# items}}")
	target := mustParse(t, "{count, plural, one{1 elemento} other{# elementos}}")

	result, err := Compare("en", "es", source, target, Options{})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCompareMissingArgumentInTargetRaises(t *testing.T) {
	source := mustParse(t, "{count, plural, one{1} other{#}}")
	target := mustParse(t, "no plural here")

	_, err := Compare("en", "es", source, target, Options{})
	require.Error(t, err)
	var exc *MissingComplexFormException
	require.ErrorAs(t, err, &exc)
	assert.Equal(t, "count", exc.ArgumentName)
	assert.Equal(t, msgpattern.ArgClassNone, exc.TargetType)
}

func TestComparePluralVsSelectOrdinalIsIncompatible(t *testing.T) {
	source := mustParse(t, "{rank, plural, one{1} other{#}}")
	target := mustParse(t, "{rank, selectordinal, one{1st} other{#th}}")

	_, err := Compare("en", "en", source, target, Options{})
	require.Error(t, err)
	var exc *MissingComplexFormException
	require.ErrorAs(t, err, &exc)
	assert.Equal(t, msgpattern.ArgClassPlural, exc.SourceType)
	assert.Equal(t, msgpattern.ArgClassSelectOrdinal, exc.TargetType)
}

func TestCompareRunsValidationOnBothSidesWhenRequested(t *testing.T) {
	source := mustParse(t, "{count, plural, one{1} other{#}}")
	target := mustParse(t, "{count, plural, one{1} few{x} two{y} other{#}}")

	result, err := Compare("en", "ru", source, target, Options{ValidateSource: true, ValidateTarget: true})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.SourceWarnings)
	require.NotNil(t, result.TargetWarnings)
}

func TestCompareSimpleArgumentsAreNotCompared(t *testing.T) {
	source := mustParse(t, "{name} is here")
	target := mustParse(t, "totally different text, no args")

	_, err := Compare("en", "fr", source, target, Options{})
	require.NoError(t, err)
}
