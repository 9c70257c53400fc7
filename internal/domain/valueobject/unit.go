// Package valueobject contains immutable value objects used across the domain layer.
package valueobject

import "strings"

// UnitCategory groups units that can be converted into each other.
type UnitCategory string

const (
	UnitCategoryMass    UnitCategory = "mass"
	UnitCategoryVolume  UnitCategory = "volume"
	UnitCategoryUnknown UnitCategory = "unknown"
)

// massFactors holds canonical factors to grams.
var massFactors = map[string]float64{
	"gram":     1,
	"kilogram": 1000,
	"ounce":    28.3495,
	"pound":    453.592,
}

// volumeFactors holds canonical factors to milliliters.
var volumeFactors = map[string]float64{
	"ml":         1,
	"liter":      1000,
	"cup":        236.588,
	"tablespoon": 14.7868,
	"teaspoon":   4.92892,
	"gallon":     3785.41,
	"quart":      946.353,
	"pint":       473.176,
}

// unitAliases maps accepted spellings to the canonical table keys.
var unitAliases = map[string]string{
	"g":           "gram",
	"gr":          "gram",
	"gram":        "gram",
	"grams":       "gram",
	"kg":          "kilogram",
	"kgs":         "kilogram",
	"kilo":        "kilogram",
	"kilos":       "kilogram",
	"kilogram":    "kilogram",
	"kilograms":   "kilogram",
	"oz":          "ounce",
	"ounce":       "ounce",
	"ounces":      "ounce",
	"lb":          "pound",
	"lbs":         "pound",
	"pound":       "pound",
	"pounds":      "pound",
	"ml":          "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"l":           "liter",
	"lt":          "liter",
	"liter":       "liter",
	"liters":      "liter",
	"litre":       "liter",
	"litres":      "liter",
	"cup":         "cup",
	"cups":        "cup",
	"tbsp":        "tablespoon",
	"tablespoon":  "tablespoon",
	"tablespoons": "tablespoon",
	"tsp":         "teaspoon",
	"teaspoon":    "teaspoon",
	"teaspoons":   "teaspoon",
	"gal":         "gallon",
	"gallon":      "gallon",
	"gallons":     "gallon",
	"qt":          "quart",
	"quart":       "quart",
	"quarts":      "quart",
	"pt":          "pint",
	"pint":        "pint",
	"pints":       "pint",
}

// Conversion is the result of resolving a conversion factor between two units.
type Conversion struct {
	From       string
	To         string
	Factor     float64
	Category   UnitCategory
	Compatible bool
}

// NormalizeUnit lowercases and trims a unit token.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// CanonicalUnit returns the canonical table key for a unit token, or the
// normalized token itself when the unit is not known.
func CanonicalUnit(unit string) string {
	normalized := NormalizeUnit(unit)
	if canonical, ok := unitAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// CategoryOf returns the physical quantity category of a unit token.
func CategoryOf(unit string) UnitCategory {
	canonical := CanonicalUnit(unit)
	if _, ok := massFactors[canonical]; ok {
		return UnitCategoryMass
	}
	if _, ok := volumeFactors[canonical]; ok {
		return UnitCategoryVolume
	}
	return UnitCategoryUnknown
}

// IsKnownUnit reports whether the unit token is present in one of the tables.
func IsKnownUnit(unit string) bool {
	return CategoryOf(unit) != UnitCategoryUnknown
}

// ResolveConversion computes the factor relating from and to.
//
// The factor is massOrVolume(from) / massOrVolume(to), so a quantity in the
// recipe unit is converted back to the purchase unit by dividing by it.
// Units that span categories or are not recognized resolve to a factor of 1
// with Compatible set to false; callers treat that as "use raw quantities".
func ResolveConversion(from, to string) Conversion {
	conv := Conversion{
		From:     NormalizeUnit(from),
		To:       NormalizeUnit(to),
		Factor:   1,
		Category: UnitCategoryUnknown,
	}

	if conv.From == conv.To {
		conv.Compatible = true
		conv.Category = CategoryOf(conv.From)
		return conv
	}

	fromKey := CanonicalUnit(conv.From)
	toKey := CanonicalUnit(conv.To)

	if fromFactor, ok := massFactors[fromKey]; ok {
		if toFactor, ok := massFactors[toKey]; ok {
			conv.Factor = fromFactor / toFactor
			conv.Category = UnitCategoryMass
			conv.Compatible = true
			return conv
		}
	}

	if fromFactor, ok := volumeFactors[fromKey]; ok {
		if toFactor, ok := volumeFactors[toKey]; ok {
			conv.Factor = fromFactor / toFactor
			conv.Category = UnitCategoryVolume
			conv.Compatible = true
			return conv
		}
	}

	return conv
}

// ConversionFactor returns the multiplicative factor between two units.
// Incompatible or unknown pairs return exactly 1.
func ConversionFactor(from, to string) float64 {
	return ResolveConversion(from, to).Factor
}
