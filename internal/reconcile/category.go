package reconcile

import (
	"strconv"
	"strings"
)

// DefaultCategoryCode is the code of the "Other" category. Anything that
// cannot be resolved lands here.
const DefaultCategoryCode = 10

// OtherCategory is the display name of DefaultCategoryCode.
const OtherCategory = "Other"

var categoryNames = [...]string{
	1:  "Chinese/Language",
	2:  "Math",
	3:  "English",
	4:  "Physics",
	5:  "Chemistry",
	6:  "Biology",
	7:  "History",
	8:  "Geography",
	9:  "Civics",
	10: OtherCategory,
}

// legacy aliases seen in payloads written by older clients
var categoryAliases = map[string]int{
	"chinese":     1,
	"language":    1,
	"语文":          1,
	"数学":          2,
	"英语":          3,
	"物理":          4,
	"化学":          5,
	"生物":          6,
	"历史":          7,
	"地理":          8,
	"政治":          9,
	"politics":    9,
	"mathematics": 2,
	"其他":          10,
}

var categoryCodes = func() map[string]int {
	m := make(map[string]int, len(categoryNames)+len(categoryAliases))
	for code, name := range categoryNames {
		if name != "" {
			m[strings.ToLower(name)] = code
		}
	}
	for alias, code := range categoryAliases {
		m[alias] = code
	}
	return m
}()

// CategoryName returns the display name for code, or "Other" when code is
// outside 1..10.
func CategoryName(code int) string {
	if code < 1 || code >= len(categoryNames) {
		return OtherCategory
	}
	return categoryNames[code]
}

// CategoryCode returns the server code for a display name. Matching ignores
// case and surrounding space; unknown or empty names map to 10.
func CategoryCode(name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	if code, ok := categoryCodes[key]; ok {
		return code
	}
	return DefaultCategoryCode
}

// NormalizeCategoryCode parses a code sent as integer or float text
// ("2", "2.0", " 7 ") and falls back to 10 for anything else.
func NormalizeCategoryCode(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultCategoryCode
	}

	code, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return DefaultCategoryCode
		}
		code = int(f)
	}

	if code < 1 || code >= len(categoryNames) {
		return DefaultCategoryCode
	}
	return code
}

// CanonicalCategory resolves name through the table, so aliases and odd
// casing come back as the canonical display name.
func CanonicalCategory(name string) string {
	return CategoryName(CategoryCode(name))
}

// IsOther reports whether name resolves to the default category.
func IsOther(name string) bool {
	return CategoryCode(name) == DefaultCategoryCode
}
