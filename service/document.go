package service

import (
	"strings"

	"nyaay-backend/models"
)

const (
	summaryChunkLimit = 140
	summaryMaxChunks  = 5
	summaryFallback   = 180
)

// documentTypeRules are checked in order; the first match wins.
var documentTypeRules = []struct {
	docType  string
	triggers []string
}{
	{docType: "Contract / Agreement", triggers: []string{"this agreement", "witnesseth", "party of the first part"}},
	{docType: "Invoice / Bill", triggers: []string{"invoice", "bill"}},
	{docType: "FIR", triggers: []string{"fir no", "first information report"}},
	{docType: "Legal Notice", triggers: []string{"legal notice", "through my advocate"}},
	{docType: "Letter / Email", triggers: []string{"dear sir", "dear madam"}},
}

// redFlagPatterns are independent checks; each contributes its label when
// any trigger phrase appears in the document.
var redFlagPatterns = []struct {
	label    string
	triggers []string
}{
	{label: "Penalty clause", triggers: []string{"penalty", "penal interest", "late fee"}},
	{label: "No-refund clause", triggers: []string{"non-refundable", "no refund", "refund shall not be given"}},
	{label: "One-sided obligations", triggers: []string{"sole discretion", "without prior notice", "you agree to indemnify"}},
	{label: "Jurisdiction heavily biased", triggers: []string{"exclusive jurisdiction", "only courts at", "sole jurisdiction"}},
	{label: "Unclear termination", triggers: []string{"may terminate at any time", "without assigning any reason"}},
	{label: "Unclear liability", triggers: []string{"no liability", "without any liability", "we shall not be responsible"}},
}

// analyzeDocument infers a document type, extracts summary points and flags
// risk patterns. Empty input yields an all-empty analysis.
func analyzeDocument(documentText string) models.DocumentAnalysis {
	if documentText == "" {
		return models.DocumentAnalysis{
			SummaryPoints: []string{},
			RedFlags:      []string{},
		}
	}

	docType := guessDocumentType(documentText)
	return models.DocumentAnalysis{
		DocumentType:  &docType,
		SummaryPoints: summarizeDocument(documentText),
		RedFlags:      detectRedFlags(documentText),
	}
}

func guessDocumentType(documentText string) string {
	text := strings.ToLower(documentText)
	for _, rule := range documentTypeRules {
		if containsAny(text, rule.triggers...) {
			return rule.docType
		}
	}
	return "General Document"
}

// summarizeDocument splits the normalized text on periods and greedily packs
// sentences into chunks. A chunk closes once appending the next sentence
// would reach summaryChunkLimit characters (strictly less-than packing), and
// at most summaryMaxChunks chunks are produced. When no chunk forms, the
// first summaryFallback characters plus an ellipsis are returned instead.
func summarizeDocument(documentText string) []string {
	text := strings.Join(strings.Fields(documentText), " ")

	var chunks []string
	current := ""
	for _, token := range strings.Split(text, ".") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if len(current)+len(token) < summaryChunkLimit {
			current = strings.TrimSpace(current + " " + token)
		} else {
			chunks = append(chunks, current+".")
			current = token
		}
		if len(chunks) >= summaryMaxChunks {
			break
		}
	}
	if current != "" && len(chunks) < summaryMaxChunks {
		chunks = append(chunks, current+".")
	}

	if len(chunks) == 0 {
		if len(text) > summaryFallback {
			text = text[:summaryFallback]
		}
		return []string{text + "..."}
	}
	return chunks
}

func detectRedFlags(documentText string) []string {
	text := strings.ToLower(documentText)

	var flags []string
	for _, p := range redFlagPatterns {
		if containsAny(text, p.triggers...) {
			flags = append(flags, p.label)
		}
	}
	return sortedUnique(flags)
}
