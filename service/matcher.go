package service

import (
	"fmt"
	"sort"
	"strings"

	"nyaay-backend/catalog"
	"nyaay-backend/models"
)

const (
	statuteAct = "Indian Penal Code, 1860"

	// tagWeight is the scoring weight of a tag hit relative to a plain
	// text-token hit.
	tagWeight = 3

	maxStatuteMatches = 5
	maxDescriptionLen = 220
)

type scoredReference struct {
	score int
	ref   models.LawReference
}

// matchStatuteSections scores every catalog entry against the combined
// request text and tag set, then returns the top matches in descending
// score order. Ties keep dataset order (the sort is stable).
func matchStatuteSections(cat *catalog.Catalog, combinedText string, tags []string) []models.LawReference {
	if cat == nil || cat.Len() == 0 {
		return nil
	}

	textTokens := strings.Fields(strings.ToLower(combinedText))

	var matches []scoredReference
	for _, entry := range cat.Entries() {
		blob := strings.ToLower(entry.Offense + " " + entry.Description)

		score := 0
		for _, word := range textTokens {
			if strings.Contains(blob, word) {
				score++
			}
		}
		for _, tag := range tags {
			if strings.Contains(blob, strings.ToLower(tag)) {
				score += tagWeight
			}
		}
		if score <= 0 {
			continue
		}

		matches = append(matches, scoredReference{
			score: score,
			ref:   statuteReference(entry),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxStatuteMatches {
		matches = matches[:maxStatuteMatches]
	}

	refs := make([]models.LawReference, len(matches))
	for i, m := range matches {
		refs[i] = m.ref
	}
	return refs
}

// statuteReference converts a catalog row into a user-facing reference.
func statuteReference(entry models.StatuteEntry) models.LawReference {
	number := extractSectionNumber(entry.URL)

	section := "IPC Section"
	if number != "" {
		section = "Section " + number
	}

	title := entry.Offense
	if title == "" {
		if number != "" {
			title = fmt.Sprintf("IPC Section %s", number)
		} else {
			title = "IPC Section N/A"
		}
	}

	description := entry.Description
	if len(description) > maxDescriptionLen {
		description = description[:maxDescriptionLen] + "..."
	}

	return models.LawReference{
		Act:         statuteAct,
		Section:     section,
		Title:       title,
		Description: description,
		Nature:      models.NatureCriminal,
		Punishment:  optionalString(entry.Punishment),
		Cognizable:  optionalString(entry.Cognizable),
		Bailable:    optionalString(entry.Bailable),
		Court:       optionalString(entry.Court),
		URL:         optionalString(entry.URL),
	}
}

// extractSectionNumber pulls the section number out of a dataset URL such
// as https://lawrato.com/indian-kanoon/ipc/section-140. URLs without a
// "section-" marker yield an empty number.
func extractSectionNumber(url string) string {
	idx := strings.LastIndex(url, "section-")
	if idx == -1 {
		return ""
	}
	part := url[idx+len("section-"):]
	part = strings.TrimSpace(part)
	return strings.Trim(part, "/")
}

// genericReferencesForCategory returns the fixed act-level references for a
// category. At most one reference per category; Employment additionally
// requires a harassment tag.
func genericReferencesForCategory(category models.Category, tags []string) []models.LawReference {
	var refs []models.LawReference

	if category == models.CategoryConsumer {
		refs = append(refs, models.LawReference{
			Act:         "Consumer Protection Act, 2019",
			Section:     "General rights",
			Title:       "Right against unfair trade practices and defective goods/services",
			Description: "You can approach Consumer Commission if a product/service is defective, deficient, or unfair.",
			Nature:      models.NatureCivil,
		})
	}

	if category == models.CategoryCybercrime {
		refs = append(refs, models.LawReference{
			Act:         "Information Technology Act, 2000",
			Section:     "Sections 66C, 66D etc.",
			Title:       "Cyber offences like identity theft and cheating by personation",
			Description: "Covers unauthorised use of credentials, OTP fraud, online cheating and related cyber offences.",
			Nature:      models.NatureCriminal,
		})
	}

	if category == models.CategoryDomestic {
		refs = append(refs, models.LawReference{
			Act:         "Protection of Women from Domestic Violence Act, 2005",
			Section:     "General protection",
			Title:       "Protection from physical, verbal, emotional and economic abuse",
			Description: "You can seek protection orders, residence orders and monetary relief through the Magistrate.",
			Nature:      models.NatureCivilCriminal,
		})
	}

	if category == models.CategoryEmployment && (hasTag(tags, "harassment") || hasTag(tags, "sexual harassment")) {
		refs = append(refs, models.LawReference{
			Act:         "POSH Act, 2013",
			Section:     "Workplace sexual harassment",
			Title:       "Protection from sexual harassment at workplace",
			Description: "Employer must have an Internal Complaints Committee (ICC) to address such complaints.",
			Nature:      models.NatureCivil,
		})
	}

	return refs
}

// buildRightsAndLaws merges ranked statute matches with the category-level
// references, dropping any later reference whose (act, section, title)
// triple already occurred. Statute matches come first, so they win on
// collision.
func buildRightsAndLaws(cat *catalog.Catalog, category models.Category, tags []string, combinedText string) []models.LawReference {
	statuteRefs := matchStatuteSections(cat, combinedText, tags)
	genericRefs := genericReferencesForCategory(category, tags)

	type refKey struct {
		act, section, title string
	}

	seen := make(map[refKey]bool)
	result := make([]models.LawReference, 0, len(statuteRefs)+len(genericRefs))
	for _, ref := range append(statuteRefs, genericRefs...) {
		key := refKey{ref.Act, ref.Section, ref.Title}
		if !seen[key] {
			seen[key] = true
			result = append(result, ref)
		}
	}
	return result
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
