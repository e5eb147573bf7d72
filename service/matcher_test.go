package service

import (
	"strings"
	"testing"

	"nyaay-backend/catalog"
	"nyaay-backend/models"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]models.StatuteEntry{
		{
			URL:         "https://example.org/ipc/section-378",
			Description: "Theft of movable property out of the possession of any person.",
			Offense:     "Theft",
			Punishment:  "3 Years",
			Cognizable:  "Cognizable",
			Bailable:    "Non-Bailable",
			Court:       "Any Magistrate",
		},
		{
			URL:         "https://example.org/ipc/section-420",
			Description: "Cheating and dishonestly inducing delivery of property.",
			Offense:     "Cheating",
			Punishment:  "7 Years + Fine",
			Cognizable:  "Cognizable",
			Bailable:    "Non-Bailable",
			Court:       "Magistrate First Class",
		},
		{
			URL:         "https://example.org/ipc/section-503",
			Description: "Criminal intimidation by threatening injury to person or property.",
			Offense:     "Criminal intimidation",
			Punishment:  "2 Years",
			Cognizable:  "Non-Cognizable",
			Bailable:    "Bailable",
			Court:       "Any Magistrate",
		},
	})
}

func TestMatchStatuteSectionsScoring(t *testing.T) {
	// The fraud/cheating tags hit entry two at 3 points each; the query
	// tokens hit it too, so it must rank first.
	refs := matchStatuteSections(fixtureCatalog(), "he kept cheating me about the property", []string{"fraud", "cheating"})

	if len(refs) == 0 {
		t.Fatal("Expected at least one match")
	}
	if refs[0].Title != "Cheating" {
		t.Errorf("Expected Cheating ranked first, got %q", refs[0].Title)
	}
	if refs[0].Section != "Section 420" {
		t.Errorf("Expected Section 420, got %q", refs[0].Section)
	}
	if refs[0].Nature != models.NatureCriminal {
		t.Errorf("Expected Criminal nature, got %q", refs[0].Nature)
	}
	if refs[0].Punishment == nil || *refs[0].Punishment != "7 Years + Fine" {
		t.Errorf("Expected punishment carried over, got %v", refs[0].Punishment)
	}
}

func TestMatchStatuteSectionsLimit(t *testing.T) {
	// Build a catalog where every entry matches and verify the cap.
	entries := make([]models.StatuteEntry, 12)
	for i := range entries {
		entries[i] = models.StatuteEntry{
			URL:         "https://example.org/ipc/section-1",
			Description: "property dispute",
			Offense:     "Offense",
		}
	}

	refs := matchStatuteSections(catalog.New(entries), "property", nil)
	if len(refs) > 5 {
		t.Errorf("Expected at most 5 matches, got %d", len(refs))
	}
}

func TestMatchStatuteSectionsNoMatches(t *testing.T) {
	refs := matchStatuteSections(fixtureCatalog(), "zzz qqq", nil)
	if len(refs) != 0 {
		t.Errorf("Expected no matches for unrelated text, got %v", refs)
	}

	refs = matchStatuteSections(catalog.Empty(), "theft of property", []string{"theft"})
	if len(refs) != 0 {
		t.Errorf("Expected no matches from empty catalog, got %v", refs)
	}
}

func TestMatchStatuteSectionsStableOrderOnTies(t *testing.T) {
	// Two entries with identical scores keep catalog order.
	cat := catalog.New([]models.StatuteEntry{
		{URL: "https://example.org/ipc/section-1", Description: "theft", Offense: "First"},
		{URL: "https://example.org/ipc/section-2", Description: "theft", Offense: "Second"},
	})

	refs := matchStatuteSections(cat, "theft", nil)
	if len(refs) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(refs))
	}
	if refs[0].Title != "First" || refs[1].Title != "Second" {
		t.Errorf("Tie broke catalog order: %q, %q", refs[0].Title, refs[1].Title)
	}
}

func TestExtractSectionNumber(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://lawrato.com/indian-kanoon/ipc/section-140", "140"},
		{"https://lawrato.com/indian-kanoon/ipc/section-140/", "140"},
		{"https://example.org/acts/section-66/section-66a", "66a"},
		{"https://example.org/no-marker", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractSectionNumber(tt.url); got != tt.want {
			t.Errorf("extractSectionNumber(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestStatuteReferenceFallbacks(t *testing.T) {
	ref := statuteReference(models.StatuteEntry{
		URL:         "https://example.org/ipc/section-101",
		Description: strings.Repeat("d", 300),
	})

	if ref.Title != "IPC Section 101" {
		t.Errorf("Expected title fallback, got %q", ref.Title)
	}
	if len(ref.Description) != 220+len("...") {
		t.Errorf("Expected truncated description, got %d chars", len(ref.Description))
	}
	if !strings.HasSuffix(ref.Description, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", ref.Description)
	}

	ref = statuteReference(models.StatuteEntry{})
	if ref.Section != "IPC Section" {
		t.Errorf("Expected literal IPC Section label, got %q", ref.Section)
	}
	if ref.Title != "IPC Section N/A" {
		t.Errorf("Expected N/A title, got %q", ref.Title)
	}
	if ref.Punishment != nil || ref.URL != nil {
		t.Error("Expected empty optional fields to be omitted")
	}
}

func TestGenericReferencesForCategory(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		tags     []string
		wantActs []string
	}{
		{"consumer", models.CategoryConsumer, nil, []string{"Consumer Protection Act, 2019"}},
		{"cyber", models.CategoryCybercrime, nil, []string{"Information Technology Act, 2000"}},
		{"domestic", models.CategoryDomestic, nil, []string{"Protection of Women from Domestic Violence Act, 2005"}},
		{"employment with harassment", models.CategoryEmployment, []string{"harassment"}, []string{"POSH Act, 2013"}},
		{"employment without harassment", models.CategoryEmployment, []string{"wrongful termination"}, nil},
		{"other", models.CategoryOther, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := genericReferencesForCategory(tt.category, tt.tags)
			if len(refs) != len(tt.wantActs) {
				t.Fatalf("Expected %d refs, got %v", len(tt.wantActs), refs)
			}
			for i, act := range tt.wantActs {
				if refs[i].Act != act {
					t.Errorf("Ref %d act = %q, want %q", i, refs[i].Act, act)
				}
			}
		})
	}
}

func TestBuildRightsAndLawsDeduplicates(t *testing.T) {
	// Two dataset rows rendering to the same (act, section, title) triple
	// must be merged down to one reference.
	cat := catalog.New([]models.StatuteEntry{
		{URL: "https://example.org/ipc/section-420", Description: "Cheating and fraud.", Offense: "Cheating"},
		{URL: "https://example.org/ipc/section-420", Description: "Cheating and fraud.", Offense: "Cheating"},
	})

	refs := buildRightsAndLaws(cat, models.CategoryConsumer, []string{"fraud"}, "cheating about a refund")

	generic := 0
	seen := make(map[[3]string]bool)
	for _, ref := range refs {
		if ref.Act == "Consumer Protection Act, 2019" {
			generic++
		}
		key := [3]string{ref.Act, ref.Section, ref.Title}
		if seen[key] {
			t.Errorf("Duplicate reference triple %v", key)
		}
		seen[key] = true
	}
	if generic != 1 {
		t.Errorf("Expected Consumer Protection Act exactly once, got %d", generic)
	}
}

func TestBuildRightsAndLawsEmptyCatalog(t *testing.T) {
	refs := buildRightsAndLaws(catalog.Empty(), models.CategoryConsumer, nil, "defective refund")

	if len(refs) != 1 {
		t.Fatalf("Expected only the generic reference, got %v", refs)
	}
	if refs[0].Act != "Consumer Protection Act, 2019" {
		t.Errorf("Expected Consumer Protection Act, got %q", refs[0].Act)
	}
	if refs == nil {
		t.Error("Expected non-nil slice")
	}
}
