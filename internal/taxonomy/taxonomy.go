// Package taxonomy declares the fixed tag taxonomy used by both prompt
// compilation and response validation, so taxonomy changes stay
// single-sourced.
package taxonomy

// Category is one group of allowed tag values with selection bounds.
type Category struct {
	Name      string   // registry name, e.g. "Style"
	Field     string   // JSON field name in the classification result
	Values    []string // ordered allowed literal values
	MinSelect int
	MaxSelect int
}

// Contains reports whether value is an allowed member of the category.
// Matching is case-sensitive exact.
func (c Category) Contains(value string) bool {
	for _, v := range c.Values {
		if v == value {
			return true
		}
	}
	return false
}

var (
	Style = Category{
		Name:  "Style",
		Field: "style_tags",
		Values: []string{
			"Minimal & Modern",
			"Romantic & Feminine",
			"Bold & Trend-Driven",
			"Relaxed & Effortless",
			"Eclectic & Individualistic",
		},
		MinSelect: 1,
		MaxSelect: 2,
	}

	Fitting = Category{
		Name:  "Fitting",
		Field: "fitting_tags",
		Values: []string{
			"Tailored",
			"Flowy",
			"Oversized",
			"Relaxed",
			"Form-Fitting",
		},
		MinSelect: 1,
		MaxSelect: 2,
	}

	Activity = Category{
		Name:  "Activity",
		Field: "activity_tags",
		Values: []string{
			"Work / Office",
			"Fitness / Active",
			"Event / Night Out",
			"Lounge / At Home",
			"Travel / On-the-Go",
			"Weekend Casual",
			"Date / Romantic",
			"Eclectic",
		},
		MinSelect: 1,
		MaxSelect: 3,
	}

	// Gender only participates when the quiz question itself is gender
	// related; see the prompt compiler.
	Gender = Category{
		Name:  "Gender",
		Field: "gender",
		Values: []string{
			"Female",
			"Male",
			"Non-binary",
			"Prefer not to say",
		},
		MinSelect: 0,
		MaxSelect: 1,
	}
)

// Registry returns the categories in prompt order.
func Registry() []Category {
	return []Category{Style, Fitting, Activity, Gender}
}

// Lookup finds a category by registry name.
func Lookup(name string) (Category, bool) {
	for _, c := range Registry() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
