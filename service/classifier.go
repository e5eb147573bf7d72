package service

import (
	"sort"
	"strings"

	"nyaay-backend/models"
)

// categoryRule pairs a trigger set with a category and the secondary checks
// that run once that category is selected. Rules are evaluated in priority
// order and the first rule with any trigger present wins.
type categoryRule struct {
	category models.Category
	triggers []string
	refine   func(text string, c *classification)
}

// classification is the mutable working state of a single classify pass.
type classification struct {
	subCategory string
	tags        []string
}

var categoryRules = []categoryRule{
	{
		category: models.CategoryTenancy,
		triggers: []string{"tenant", "landlord", "rent", "lease", "evict", "eviction", "security deposit"},
		refine: func(text string, c *classification) {
			if containsAny(text, "evict", "eviction") {
				c.subCategory = "Illegal eviction"
				c.tags = append(c.tags, "illegal eviction")
			}
			if containsAny(text, "security deposit", "deposit") {
				c.tags = append(c.tags, "security deposit")
			}
		},
	},
	{
		category: models.CategoryConsumer,
		triggers: []string{"refund", "warranty", "defective", "service", "customer care", "product"},
		refine: func(text string, c *classification) {
			if containsAny(text, "defective", "damaged") {
				c.subCategory = "Defective product"
				c.tags = append(c.tags, "defective product")
			}
			if containsAny(text, "refund", "no refund") {
				c.tags = append(c.tags, "non-refund", "breach of contract")
			}
		},
	},
	{
		category: models.CategoryCybercrime,
		triggers: []string{"online", "cyber", "instagram", "facebook", "whatsapp", "otp", "upi", "fraud", "scam"},
		refine: func(text string, c *classification) {
			if containsAny(text, "harass", "abuse") {
				c.subCategory = "Online harassment"
				c.tags = append(c.tags, "harassment", "cyberbullying")
			}
			if containsAny(text, "fraud", "scam", "cheat") {
				if c.subCategory == "" {
					c.subCategory = "Online fraud"
				}
				c.tags = append(c.tags, "fraud", "cheating")
			}
		},
	},
	{
		category: models.CategoryDomestic,
		triggers: []string{"husband", "wife", "dowry", "domestic violence", "beat", "physical", "marriage"},
		refine: func(text string, c *classification) {
			if strings.Contains(text, "dowry") {
				c.tags = append(c.tags, "dowry")
			}
			if containsAny(text, "violence", "beat", "assault") {
				c.tags = append(c.tags, "domestic violence")
			}
		},
	},
	{
		category: models.CategoryEmployment,
		triggers: []string{"boss", "salary", "job", "company", "termination", "office", "hr"},
		refine: func(text string, c *classification) {
			if strings.Contains(text, "salary") && strings.Contains(text, "not paid") {
				c.subCategory = "Salary not paid"
				c.tags = append(c.tags, "salary not paid")
			}
			if containsAny(text, "termination", "fired") {
				if c.subCategory == "" {
					c.subCategory = "Wrongful termination"
				}
				c.tags = append(c.tags, "wrongful termination")
			}
		},
	},
	{
		category: models.CategoryBanking,
		triggers: []string{"loan", "emi", "bank", "cheque", "bounce", "recovery", "debt"},
		refine: func(text string, c *classification) {
			if strings.Contains(text, "cheque") && strings.Contains(text, "bounce") {
				c.subCategory = "Cheque bounce"
				c.tags = append(c.tags, "non-payment")
			}
		},
	},
	{
		category: models.CategoryCriminal,
		triggers: []string{"assault", "threat", "hit me", "kill", "murder", "abuse", "fight", "police"},
		refine: func(text string, c *classification) {
			if strings.Contains(text, "threat") {
				c.tags = append(c.tags, "threats")
			}
			if containsAny(text, "abuse", "defame") {
				c.tags = append(c.tags, "defamation")
			}
			if containsAny(text, "assault", "hit me") {
				c.tags = append(c.tags, "assault")
			}
		},
	},
}

// crossCuttingTags run regardless of which category was selected. They fire
// even when no category rule matched at all.
var crossCuttingTags = []struct {
	tag      string
	triggers []string
}{
	{tag: "fraud", triggers: []string{"fraud", "scam", "cheat"}},
	{tag: "harassment", triggers: []string{"harass", "abuse"}},
	{tag: "breach of contract", triggers: []string{"contract", "agreement"}},
}

// classifyIssue maps the query plus optional document text to a category,
// optional sub-category and a sorted, deduplicated tag set. It always
// returns a value; with no rule firing the category is Other.
func classifyIssue(userQuery, documentText string) models.Classification {
	text := strings.ToLower(userQuery + " " + documentText)

	category := models.CategoryOther
	state := classification{}

	for _, rule := range categoryRules {
		if containsAny(text, rule.triggers...) {
			category = rule.category
			rule.refine(text, &state)
			break
		}
	}

	for _, g := range crossCuttingTags {
		if containsAny(text, g.triggers...) {
			state.tags = append(state.tags, g.tag)
		}
	}

	result := models.Classification{
		Category: category,
		Tags:     sortedUnique(state.tags),
	}
	if state.subCategory != "" {
		sub := state.subCategory
		result.SubCategory = &sub
	}
	return result
}

// containsAny reports whether any of the substrings appears in text.
func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// sortedUnique returns the values deduplicated and sorted. Never nil, so
// the tag set marshals as an empty JSON array rather than null.
func sortedUnique(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	sort.Strings(result)
	return result
}
