package service

import (
	"context"
	"errors"
	"strings"

	"nyaay-backend/catalog"
	"nyaay-backend/models"
)

// Disclaimer is appended to every analysis result.
const Disclaimer = "This is an AI-generated informational response based on Indian law and your inputs. " +
	"It is NOT legal advice. Consult a qualified advocate for any real legal action."

const maxIssueSummaryLen = 450

var (
	// ErrEmptyInput is returned when both the user query and the document
	// text are empty. The only user-visible failure of the pipeline.
	ErrEmptyInput = errors.New("either user_query or document_text is required")
)

// AnalysisService runs the grievance analysis pipeline: classification,
// document analysis, reference matching, action planning and template
// rendering. It holds no mutable state beyond the read-only catalog, so a
// single instance serves concurrent requests without locking.
type AnalysisService struct {
	catalog *catalog.Catalog
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// WithCatalog sets the statute catalog used for reference matching
func WithCatalog(c *catalog.Catalog) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.catalog = c
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{
		catalog: catalog.Empty(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeRequest represents a request to analyze a grievance
type AnalyzeRequest struct {
	UserQuery    string
	DocumentText string
}

// AnalyzeResult represents the result of analyzing a grievance
type AnalyzeResult struct {
	Analysis *models.AnalysisResult
}

// Analyze runs the full pipeline over the query and optional document text.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if req.UserQuery == "" && req.DocumentText == "" {
		return nil, ErrEmptyInput
	}

	issueSummary := summarizeIssue(req.UserQuery, req.DocumentText)
	classification := classifyIssue(req.UserQuery, req.DocumentText)

	var documentAnalysis *models.DocumentAnalysis
	if req.DocumentText != "" {
		analysis := analyzeDocument(req.DocumentText)
		documentAnalysis = &analysis
	}

	combinedText := req.UserQuery + " " + req.DocumentText
	rightsAndLaws := buildRightsAndLaws(s.catalog, classification.Category, classification.Tags, combinedText)

	actions := generateActions(classification.Category, classification.Tags)

	templateType := guessTemplateType(classification.Category)
	complaintTemplate := generateComplaintTemplate(templateType, issueSummary, classification)

	return &AnalyzeResult{
		Analysis: &models.AnalysisResult{
			IssueSummary:      issueSummary,
			Classification:    classification,
			DocumentAnalysis:  documentAnalysis,
			RightsAndLaws:     rightsAndLaws,
			Actions:           actions,
			ComplaintTemplate: complaintTemplate,
			Disclaimer:        Disclaimer,
		},
	}, nil
}

// FillTemplateRequest represents a request to fill a rendered template
type FillTemplateRequest struct {
	TemplateText string
	Data         FillData
}

// FillTemplateResult represents the result of filling a template
type FillTemplateResult struct {
	FilledTemplate string
}

// FillTemplate substitutes the user-supplied field values into a template.
func (s *AnalysisService) FillTemplate(ctx context.Context, req FillTemplateRequest) (*FillTemplateResult, error) {
	return &FillTemplateResult{
		FilledTemplate: fillTemplateText(req.TemplateText, req.Data),
	}, nil
}

// summarizeIssue condenses the request into a display summary: trimmed
// query plus trimmed document text, whitespace collapsed, capped at
// maxIssueSummaryLen characters with an ellipsis.
func summarizeIssue(userQuery, documentText string) string {
	text := strings.TrimSpace(userQuery)
	if documentText != "" {
		text += " " + strings.TrimSpace(documentText)
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxIssueSummaryLen {
		return text[:maxIssueSummaryLen] + "..."
	}
	return text
}
