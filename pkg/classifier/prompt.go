package classifier

import (
	"fmt"
	"strings"

	"personatag/internal/taxonomy"
)

// referenceGenderQuestion is the fixed phrase the gender-flow heuristic
// checks against. The check is containment of its key token, not an exact
// match; this is best-effort by design.
const referenceGenderQuestion = "what is your gender"

// IsGenderQuestion reports whether the quiz question asks for the user's
// gender. Pure function of the question text.
func IsGenderQuestion(question string) bool {
	if question == "" {
		return false
	}
	q := strings.ToLower(question)
	return strings.Contains(q, "gender") || strings.Contains(q, referenceGenderQuestion)
}

// BuildPrompt compiles the tagger instruction for the completion provider.
// The full taxonomy (values and bounds) is embedded so the provider cannot
// invent out-of-taxonomy values, and the user text is appended verbatim in
// a clearly delimited trailing section. Returns the prompt together with
// the gender-flow decision.
func BuildPrompt(req Request) (string, bool) {
	genderFlow := IsGenderQuestion(req.Question)

	var b strings.Builder
	b.WriteString("You are a fashion quiz tagger.\n\n")
	b.WriteString("Based on the user's single free-text answer to a style quiz question, ")
	b.WriteString("return the most appropriate tags from the following predefined tag lists:\n\n")

	for _, cat := range taxonomy.Registry() {
		if cat.Name == taxonomy.Gender.Name && !genderFlow {
			continue
		}
		b.WriteString(categoryHeading(cat))
		b.WriteString("\n")
		for _, v := range cat.Values {
			b.WriteString("- ")
			b.WriteString(v)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Return only the JSON output (no code blocks, no explanations). ")
	b.WriteString("Do not wrap it in markdown or backticks.\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"style_tags\": [...],\n")
	b.WriteString("  \"fitting_tags\": [...],\n")
	if genderFlow {
		b.WriteString("  \"activity_tags\": [...],\n")
		b.WriteString("  \"gender\": \"...\"\n")
	} else {
		b.WriteString("  \"activity_tags\": [...]\n")
	}
	b.WriteString("}\n\n")

	if req.Question != "" {
		b.WriteString("Here's the quiz question:\n")
		fmt.Fprintf(&b, "%q\n\n", req.Question)
	}
	b.WriteString("Here's the user's answer:\n")
	fmt.Fprintf(&b, "%q\n", req.Answer)

	return b.String(), genderFlow
}

func categoryHeading(cat taxonomy.Category) string {
	if cat.MinSelect == cat.MaxSelect {
		return fmt.Sprintf("%s Tags (choose exactly %d):", cat.Name, cat.MaxSelect)
	}
	if cat.Name == taxonomy.Gender.Name {
		return fmt.Sprintf("%s (choose 1):", cat.Name)
	}
	return fmt.Sprintf("%s Tags (choose %d–%d max):", cat.Name, cat.MinSelect, cat.MaxSelect)
}
