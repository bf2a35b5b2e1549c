package pluralrules

// Cardinal rule groups. Each predicate is a pure function of the absolute
// value of a signed integer operand (CLDR's "n"); the core only needs
// integer behavior per spec. Group indices are stable storage keys, not an
// API surface — callers never see them, only the category name strings.
const (
	groupGermanic = iota
	groupFrench
	groupSlavic
	groupCzechSlovak
	groupIrish
	groupLithuanian
	groupSlovenian
	groupMacedonianCLDR48
	groupMaltese
	groupLatvian
	groupPolish
	groupRomanian
	groupArabic
	groupWelsh
	groupIcelandic
	groupScottishGaelic
	groupBreton
	groupManx
	groupHebrew
	groupItalian
	groupOtherOnly
)

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var cardinalCategories = [][]string{
	groupGermanic:         {"one", "other"},
	groupFrench:           {"one", "other"},
	groupSlavic:           {"one", "few", "many", "other"},
	groupCzechSlovak:      {"one", "few", "many", "other"},
	groupIrish:            {"one", "two", "few", "many", "other"},
	groupLithuanian:       {"one", "few", "many", "other"},
	groupSlovenian:        {"one", "two", "few", "other"},
	groupMacedonianCLDR48: {"one", "other"},
	groupMaltese:          {"one", "few", "many", "other"},
	groupLatvian:          {"zero", "one", "other"},
	groupPolish:           {"one", "few", "many", "other"},
	groupRomanian:         {"one", "few", "other"},
	groupArabic:           {"zero", "one", "two", "few", "many", "other"},
	groupWelsh:            {"zero", "one", "two", "few", "many", "other"},
	groupIcelandic:        {"one", "other"},
	groupScottishGaelic:   {"one", "two", "few", "other"},
	groupBreton:           {"one", "two", "few", "many", "other"},
	groupManx:             {"one", "two", "few", "many", "other"},
	groupHebrew:           {"one", "two", "many", "other"},
	groupItalian:          {"one", "many", "other"},
	groupOtherOnly:        {"other"},
}

var cardinalPredicate = []func(n int) int{
	groupGermanic: func(n int) int {
		if absInt(n) == 1 {
			return 0
		}
		return 1
	},
	groupFrench: func(n int) int {
		a := absInt(n)
		if a == 0 || a == 1 {
			return 0
		}
		return 1
	},
	groupSlavic: func(n int) int {
		a := absInt(n)
		n1, n2 := a%10, a%100
		switch {
		case n1 == 1 && n2 != 11:
			return 0
		case n1 >= 2 && n1 <= 4 && !(n2 >= 12 && n2 <= 14):
			return 1
		case n1 == 0 || (n1 >= 5 && n1 <= 9) || (n2 >= 11 && n2 <= 14):
			return 2
		default:
			return 3
		}
	},
	groupCzechSlovak: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1:
			return 0
		case a >= 2 && a <= 4:
			return 1
		default:
			return 3
		}
	},
	groupIrish: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1:
			return 0
		case a == 2:
			return 1
		case a >= 3 && a <= 6:
			return 2
		case a >= 7 && a <= 10:
			return 3
		default:
			return 4
		}
	},
	groupLithuanian: func(n int) int {
		a := absInt(n)
		n1, n2 := a%10, a%100
		switch {
		case n1 == 1 && !(n2 >= 11 && n2 <= 19):
			return 0
		case n1 >= 2 && n1 <= 9 && !(n2 >= 11 && n2 <= 19):
			return 1
		default:
			return 3
		}
	},
	groupSlovenian: func(n int) int {
		n2 := absInt(n) % 100
		switch {
		case n2 == 1:
			return 0
		case n2 == 2:
			return 1
		case n2 >= 3 && n2 <= 4:
			return 2
		default:
			return 3
		}
	},
	groupMacedonianCLDR48: func(n int) int {
		a := absInt(n)
		if a%10 == 1 && a%100 != 11 {
			return 0
		}
		return 1
	},
	groupMaltese: func(n int) int {
		a := absInt(n)
		n2 := a % 100
		switch {
		case a == 1:
			return 0
		case a == 0 || (n2 >= 2 && n2 <= 10):
			return 1
		case n2 >= 11 && n2 <= 19:
			return 2
		default:
			return 3
		}
	},
	groupLatvian: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		switch {
		case a == 0:
			return 0
		case n10 == 1 && n100 != 11:
			return 1
		default:
			return 2
		}
	},
	groupPolish: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		switch {
		case a == 1:
			return 0
		case n10 >= 2 && n10 <= 4 && !(n100 >= 12 && n100 <= 14):
			return 1
		case (a != 1 && n10 >= 0 && n10 <= 1) || (n10 >= 5 && n10 <= 9) || (n100 >= 12 && n100 <= 14):
			return 2
		default:
			return 3
		}
	},
	groupRomanian: func(n int) int {
		a := absInt(n)
		n100 := a % 100
		switch {
		case a == 1:
			return 0
		case a == 0 || (n100 >= 1 && n100 <= 19):
			return 1
		default:
			return 2
		}
	},
	groupArabic: func(n int) int {
		a := absInt(n)
		n100 := a % 100
		switch {
		case a == 0:
			return 0
		case a == 1:
			return 1
		case a == 2:
			return 2
		case n100 >= 3 && n100 <= 10:
			return 3
		case n100 >= 11 && n100 <= 99:
			return 4
		default:
			return 5
		}
	},
	groupWelsh: func(n int) int {
		switch absInt(n) {
		case 0:
			return 0
		case 1:
			return 1
		case 2:
			return 2
		case 3:
			return 3
		case 6:
			return 4
		default:
			return 5
		}
	},
	groupIcelandic: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		if n10 == 1 && n100 != 11 {
			return 0
		}
		return 1
	},
	groupScottishGaelic: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1 || a == 11:
			return 0
		case a == 2 || a == 12:
			return 1
		case (a >= 3 && a <= 10) || (a >= 13 && a <= 19):
			return 2
		default:
			return 3
		}
	},
	groupBreton: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		switch {
		case a == 0:
			return 3
		case n10 == 1 && n100 != 11 && n100 != 71 && n100 != 91:
			return 0
		case n10 == 2 && n100 != 12 && n100 != 72 && n100 != 92:
			return 1
		case (n10 == 3 || n10 == 4 || n10 == 9) &&
			!(n100 >= 10 && n100 <= 19) && !(n100 >= 70 && n100 <= 79) && !(n100 >= 90 && n100 <= 99):
			return 2
		case a != 0 && a%1000000 == 0:
			return 3
		default:
			return 4
		}
	},
	groupManx: func(n int) int {
		a := absInt(n)
		n10, n20 := a%10, a%20
		switch {
		case n10 == 1:
			return 0
		case n10 == 2:
			return 1
		case n20 == 0:
			return 2
		default:
			return 4
		}
	},
	groupHebrew: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1:
			return 0
		case a == 2:
			return 1
		case a != 0 && a%10 == 0:
			return 2
		default:
			return 3
		}
	},
	groupItalian: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1:
			return 0
		case a != 0 && a%1000000 == 0:
			return 1
		default:
			return 2
		}
	},
	groupOtherOnly: func(n int) int {
		return 0
	},
}

// Ordinal (selectordinal) rule groups: one per distinct CLDR ordinal rule
// set, named after a representative locale. Locales whose full CLDR rules
// differ only on non-integer operands share the group their integer
// projection collapses to.
const (
	ordinalGroupOther = iota
	ordinalGroupEnglish
	ordinalGroupSwedish
	ordinalGroupFrench
	ordinalGroupHungarian
	ordinalGroupNepali
	ordinalGroupBelarusian
	ordinalGroupUkrainian
	ordinalGroupTurkmen
	ordinalGroupKazakh
	ordinalGroupItalian
	ordinalGroupLigurian
	ordinalGroupGeorgian
	ordinalGroupAlbanian
	ordinalGroupCornish
	ordinalGroupMarathi
	ordinalGroupCatalan
	ordinalGroupScottishGaelic
	ordinalGroupMacedonian
	ordinalGroupAzerbaijani
	ordinalGroupHindi
	ordinalGroupBengali
	ordinalGroupOdia
	ordinalGroupWelsh
)

var ordinalCategories = [][]string{
	ordinalGroupOther:          {"other"},
	ordinalGroupEnglish:        {"one", "two", "few", "other"},
	ordinalGroupSwedish:        {"one", "other"},
	ordinalGroupFrench:         {"one", "other"},
	ordinalGroupHungarian:      {"one", "other"},
	ordinalGroupNepali:         {"one", "other"},
	ordinalGroupBelarusian:     {"few", "other"},
	ordinalGroupUkrainian:      {"few", "other"},
	ordinalGroupTurkmen:        {"few", "other"},
	ordinalGroupKazakh:         {"many", "other"},
	ordinalGroupItalian:        {"many", "other"},
	ordinalGroupLigurian:       {"many", "other"},
	ordinalGroupGeorgian:       {"one", "many", "other"},
	ordinalGroupAlbanian:       {"one", "many", "other"},
	ordinalGroupCornish:        {"one", "many", "other"},
	ordinalGroupMarathi:        {"one", "two", "few", "other"},
	ordinalGroupCatalan:        {"one", "two", "few", "other"},
	ordinalGroupScottishGaelic: {"one", "two", "few", "other"},
	ordinalGroupMacedonian:     {"one", "two", "many", "other"},
	ordinalGroupAzerbaijani:    {"one", "few", "many", "other"},
	ordinalGroupHindi:          {"one", "two", "few", "many", "other"},
	ordinalGroupBengali:        {"one", "two", "few", "many", "other"},
	ordinalGroupOdia:           {"one", "two", "few", "many", "other"},
	ordinalGroupWelsh:          {"zero", "one", "two", "few", "many", "other"},
}

var ordinalPredicate = []func(n int) int{
	ordinalGroupOther: func(n int) int {
		return 0
	},
	ordinalGroupEnglish: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		switch {
		case n10 == 1 && n100 != 11:
			return 0
		case n10 == 2 && n100 != 12:
			return 1
		case n10 == 3 && n100 != 13:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupSwedish: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		if (n10 == 1 || n10 == 2) && n100 != 11 && n100 != 12 {
			return 0
		}
		return 1
	},
	ordinalGroupFrench: func(n int) int {
		if absInt(n) == 1 {
			return 0
		}
		return 1
	},
	ordinalGroupHungarian: func(n int) int {
		a := absInt(n)
		if a == 1 || a == 5 {
			return 0
		}
		return 1
	},
	ordinalGroupNepali: func(n int) int {
		a := absInt(n)
		if a >= 1 && a <= 4 {
			return 0
		}
		return 1
	},
	ordinalGroupBelarusian: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		if (n10 == 2 || n10 == 3) && n100 != 12 && n100 != 13 {
			return 0
		}
		return 1
	},
	ordinalGroupUkrainian: func(n int) int {
		a := absInt(n)
		if a%10 == 3 && a%100 != 13 {
			return 0
		}
		return 1
	},
	ordinalGroupTurkmen: func(n int) int {
		a := absInt(n)
		n10 := a % 10
		if n10 == 6 || n10 == 9 || a == 10 {
			return 0
		}
		return 1
	},
	ordinalGroupKazakh: func(n int) int {
		a := absInt(n)
		n10 := a % 10
		if n10 == 6 || n10 == 9 || (n10 == 0 && a != 0) {
			return 0
		}
		return 1
	},
	ordinalGroupItalian: func(n int) int {
		switch absInt(n) {
		case 8, 11, 80, 800:
			return 0
		default:
			return 1
		}
	},
	ordinalGroupLigurian: func(n int) int {
		a := absInt(n)
		if a == 8 || a == 11 || (a >= 80 && a <= 89) || (a >= 800 && a <= 899) {
			return 0
		}
		return 1
	},
	ordinalGroupGeorgian: func(n int) int {
		a := absInt(n)
		n100 := a % 100
		switch {
		case a == 1:
			return 0
		case a == 0 || (n100 >= 2 && n100 <= 20) || n100 == 40 || n100 == 60 || n100 == 80:
			return 1
		default:
			return 2
		}
	},
	ordinalGroupAlbanian: func(n int) int {
		a := absInt(n)
		switch {
		case a == 1:
			return 0
		case a%10 == 4 && a%100 != 14:
			return 1
		default:
			return 2
		}
	},
	ordinalGroupCornish: func(n int) int {
		a := absInt(n)
		n100 := a % 100
		switch {
		case (a >= 1 && a <= 4) ||
			(n100 >= 1 && n100 <= 4) || (n100 >= 21 && n100 <= 24) ||
			(n100 >= 41 && n100 <= 44) || (n100 >= 61 && n100 <= 64) ||
			(n100 >= 81 && n100 <= 84):
			return 0
		case a == 5 || n100 == 5:
			return 1
		default:
			return 2
		}
	},
	ordinalGroupMarathi: func(n int) int {
		switch absInt(n) {
		case 1:
			return 0
		case 2, 3:
			return 1
		case 4:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupCatalan: func(n int) int {
		switch absInt(n) {
		case 1, 3:
			return 0
		case 2:
			return 1
		case 4:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupScottishGaelic: func(n int) int {
		switch absInt(n) {
		case 1, 11:
			return 0
		case 2, 12:
			return 1
		case 3, 13:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupMacedonian: func(n int) int {
		a := absInt(n)
		n10, n100 := a%10, a%100
		switch {
		case n10 == 1 && n100 != 11:
			return 0
		case n10 == 2 && n100 != 12:
			return 1
		case (n10 == 7 || n10 == 8) && n100 != 17 && n100 != 18:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupAzerbaijani: func(n int) int {
		a := absInt(n)
		n10, n100, n1000 := a%10, a%100, a%1000
		switch {
		case n10 == 1 || n10 == 2 || n10 == 5 || n10 == 7 || n10 == 8 ||
			n100 == 20 || n100 == 50 || n100 == 70 || n100 == 80:
			return 0
		case n10 == 3 || n10 == 4 || (n1000 != 0 && n1000%100 == 0):
			return 1
		case a == 0 || n10 == 6 || n100 == 40 || n100 == 60 || n100 == 90:
			return 2
		default:
			return 3
		}
	},
	ordinalGroupHindi: func(n int) int {
		switch absInt(n) {
		case 1:
			return 0
		case 2, 3:
			return 1
		case 4:
			return 2
		case 6:
			return 3
		default:
			return 4
		}
	},
	ordinalGroupBengali: func(n int) int {
		switch absInt(n) {
		case 1, 5, 7, 8, 9, 10:
			return 0
		case 2, 3:
			return 1
		case 4:
			return 2
		case 6:
			return 3
		default:
			return 4
		}
	},
	ordinalGroupOdia: func(n int) int {
		switch absInt(n) {
		case 1, 5, 7, 8, 9:
			return 0
		case 2, 3:
			return 1
		case 4:
			return 2
		case 6:
			return 3
		default:
			return 4
		}
	},
	ordinalGroupWelsh: func(n int) int {
		switch absInt(n) {
		case 0, 7, 8, 9:
			return 0
		case 1:
			return 1
		case 2:
			return 2
		case 3, 4:
			return 3
		case 5, 6:
			return 4
		default:
			return 5
		}
	},
}

func init() {
	if len(cardinalCategories) != len(cardinalPredicate) {
		panic("pluralrules: cardinal category/predicate table size mismatch")
	}
	if len(ordinalCategories) != len(ordinalPredicate) {
		panic("pluralrules: ordinal category/predicate table size mismatch")
	}
	for g, cats := range cardinalCategories {
		if cats[len(cats)-1] != "other" {
			panic("pluralrules: cardinal group missing trailing 'other' category")
		}
		_ = g
	}
	for g, cats := range ordinalCategories {
		if cats[len(cats)-1] != "other" {
			panic("pluralrules: ordinal group missing trailing 'other' category")
		}
		_ = g
	}
}
