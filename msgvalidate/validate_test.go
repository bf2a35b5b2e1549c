package msgvalidate

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

func TestValidateEnglishCompletePluralIsClean(t *testing.T) {
	store := mustParse(t, "{count, plural, one{1 item} other{# items}}")
	warning, err := Validate(store, "en")
	require.NoError(t, err)
	assert.Nil(t, warning)
}

func TestValidateRussianMissingCategoriesWarnsWithoutNumericSelectors(t *testing.T) {
	store := mustParse(t, "{count, plural, one{# item} other{# items}}")
	warning, err := Validate(store, "ru")
	require.NoError(t, err)
	require.NotNil(t, warning)
	require.Len(t, warning.Warnings, 1)
	w := warning.Warnings[0]
	assert.Contains(t, w.Missing, "few")
	assert.Contains(t, w.Missing, "many")
	assert.Empty(t, w.Numeric)
}

func TestValidateRussianMissingFewAndManyWarns(t *testing.T) {
	store := mustParse(t, "{count, plural, one{1} =5{five} other{#}}")
	warning, err := Validate(store, "ru")
	require.NoError(t, err)
	require.NotNil(t, warning)
	require.Len(t, warning.Warnings, 1)
	w := warning.Warnings[0]
	assert.Equal(t, "count", w.ArgumentName)
	assert.Contains(t, w.Missing, "few")
	assert.Contains(t, w.Missing, "many")
	assert.Contains(t, w.Numeric, "=5")
}

func TestValidateInvalidSelectorRaisesException(t *testing.T) {
	store := mustParse(t, "{count, plural, some{x} other{y}}")
	warning, err := Validate(store, "en")
	assert.Nil(t, warning)
	require.Error(t, err)
	var exc *PluralComplianceException
	require.ErrorAs(t, err, &exc)
	assert.Equal(t, []string{"some"}, exc.Invalid)
	assert.Equal(t, "count", exc.ArgumentName)
}

func TestValidateWrongLocaleCategoryWarns(t *testing.T) {
	store := mustParse(t, "{count, plural, one{1} few{x} other{#}}")
	warning, err := Validate(store, "en")
	require.NoError(t, err)
	require.NotNil(t, warning)
	require.Len(t, warning.Warnings, 1)
	assert.Contains(t, warning.Warnings[0].WrongLocale, "few")
}

func TestValidateSelectOrdinalUsesOrdinalCategories(t *testing.T) {
	store := mustParse(t, "{rank, selectordinal, one{#st} two{#nd} few{#rd} other{#th}}")
	warning, err := Validate(store, "en")
	require.NoError(t, err)
	assert.Nil(t, warning)
}

func TestValidateNonPluralArgumentsAreIgnored(t *testing.T) {
	store := mustParse(t, "{name} {count, select, yes{y} other{n}}")
	warning, err := Validate(store, "en")
	require.NoError(t, err)
	assert.Nil(t, warning)
}

func TestValidateOddArgumentNameRequiresOptIn(t *testing.T) {
	// "1st" is a legal argument name to the parser (neither whitespace nor
	// Pattern_Syntax) but not a conventional identifier, and not a bare
	// positional digit string either. Default validation stays clean; the
	// name lint only fires when asked for.
	store := mustParse(t, "{0, plural, one{# item} other{# items}}")
	warning, err := Validate(store, "en")
	require.NoError(t, err)
	assert.Nil(t, warning, "digit-string names are conventional ICU positional arguments")

	store = mustParse(t, "{1st, plural, one{# item} other{# items}}")
	warning, err = Validate(store, "en")
	require.NoError(t, err)
	assert.Nil(t, warning)

	warning, err = ValidateWithOptions(store, "en", Options{CheckArgumentNames: true})
	require.NoError(t, err)
	require.NotNil(t, warning)
	require.Len(t, warning.Warnings, 1)
	assert.True(t, warning.Warnings[0].NameLooksOdd)
	assert.Equal(t, "1st", warning.Warnings[0].ArgumentName)
}
