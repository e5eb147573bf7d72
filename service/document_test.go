package service

import (
	"sort"
	"strings"
	"testing"
)

func TestAnalyzeDocumentEmpty(t *testing.T) {
	a := analyzeDocument("")

	if a.DocumentType != nil {
		t.Errorf("Expected nil document type, got %q", *a.DocumentType)
	}
	if len(a.SummaryPoints) != 0 {
		t.Errorf("Expected no summary points, got %v", a.SummaryPoints)
	}
	if len(a.RedFlags) != 0 {
		t.Errorf("Expected no red flags, got %v", a.RedFlags)
	}
}

func TestGuessDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"agreement", "THIS AGREEMENT is made between the parties", "Contract / Agreement"},
		{"witnesseth", "WITNESSETH that the parties agree", "Contract / Agreement"},
		{"invoice", "Invoice No. 42 for services rendered", "Invoice / Bill"},
		{"fir", "FIR No 123/2024 under section 420", "FIR"},
		{"legal notice", "This LEGAL NOTICE is sent through my advocate", "Legal Notice"},
		{"letter", "Dear Sir, I write to complain", "Letter / Email"},
		{"fallback", "random notes about the matter", "General Document"},
		// "this agreement" outranks "invoice" because rules run in order
		{"order matters", "this agreement includes an invoice schedule", "Contract / Agreement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guessDocumentType(tt.text); got != tt.want {
				t.Errorf("guessDocumentType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSummarizeDocumentChunking(t *testing.T) {
	// Ten sentences of ~60 chars each: pairs pack under the 140 limit, so
	// the cap of 5 chunks is reached before the text runs out.
	sentence := strings.Repeat("x", 60)
	text := strings.Repeat(sentence+". ", 10)

	chunks := summarizeDocument(text)

	if len(chunks) > 5 {
		t.Fatalf("Expected at most 5 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if !strings.HasSuffix(chunk, ".") {
			t.Errorf("Chunk %d does not end with a period: %q", i, chunk)
		}
	}
	// Each packed chunk holds two 60-char sentences (60+60 < 140, a third
	// would not fit because 121+60 >= 140).
	wantChunk := sentence + " " + sentence + "."
	if chunks[0] != wantChunk {
		t.Errorf("Unexpected first chunk: %q", chunks[0])
	}
}

func TestSummarizeDocumentShortText(t *testing.T) {
	chunks := summarizeDocument("The landlord kept the deposit. He ignored all calls.")

	want := []string{"The landlord kept the deposit He ignored all calls."}
	if len(chunks) != len(want) || chunks[0] != want[0] {
		t.Errorf("summarizeDocument = %v, want %v", chunks, want)
	}
}

func TestSummarizeDocumentFallback(t *testing.T) {
	// Text with no sentence content at all falls back to a truncated echo.
	chunks := summarizeDocument("...")
	if len(chunks) != 1 {
		t.Fatalf("Expected single fallback chunk, got %v", chunks)
	}
	if !strings.HasSuffix(chunks[0], "...") {
		t.Errorf("Expected fallback ellipsis, got %q", chunks[0])
	}
}

func TestDetectRedFlags(t *testing.T) {
	text := `The vendor may terminate at any time without assigning any reason.
All payments are non-refundable and subject to penal interest.
Disputes fall under the exclusive jurisdiction of courts at Mumbai.`

	flags := detectRedFlags(text)

	want := []string{
		"Jurisdiction heavily biased",
		"No-refund clause",
		"Penalty clause",
		"Unclear termination",
	}
	if len(flags) != len(want) {
		t.Fatalf("Expected %d flags, got %v", len(want), flags)
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("Flag %d = %q, want %q", i, flags[i], want[i])
		}
	}
	if !sort.StringsAreSorted(flags) {
		t.Errorf("Red flags not sorted: %v", flags)
	}
}

func TestDetectRedFlagsNone(t *testing.T) {
	flags := detectRedFlags("a perfectly reasonable agreement between equals")
	if len(flags) != 0 {
		t.Errorf("Expected no red flags, got %v", flags)
	}
}
