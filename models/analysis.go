package models

// Category represents the top-level legal issue category
type Category string

const (
	CategoryTenancy    Category = "Tenancy / Housing"
	CategoryConsumer   Category = "Consumer"
	CategoryCybercrime Category = "Cybercrime / Online Harassment / Online Fraud"
	CategoryDomestic   Category = "Domestic Violence / Matrimonial"
	CategoryEmployment Category = "Employment / Workplace"
	CategoryBanking    Category = "Banking / Loan / Money Recovery"
	CategoryCriminal   Category = "IPC – General Criminal Offence"
	CategoryOther      Category = "Other"
)

// Nature indicates whether a law reference is civil, criminal or both
type Nature string

const (
	NatureCivil         Nature = "Civil"
	NatureCriminal      Nature = "Criminal"
	NatureCivilCriminal Nature = "Civil/Criminal"
)

// TemplateType represents one of the fixed complaint template families
type TemplateType string

const (
	TemplatePoliceComplaint   TemplateType = "police_complaint"
	TemplateConsumerComplaint TemplateType = "consumer_complaint"
	TemplateLegalNotice       TemplateType = "legal_notice"
	TemplateGeneralComplaint  TemplateType = "general_complaint"
)

// Classification is the outcome of the keyword classifier. Tags are
// deduplicated and sorted lexicographically.
type Classification struct {
	Category    Category `json:"category"`
	SubCategory *string  `json:"sub_category,omitempty"`
	Tags        []string `json:"tags"`
}

// DocumentAnalysis holds the inferred document type, salient summary
// points (at most 5) and detected risk patterns for a source document
type DocumentAnalysis struct {
	DocumentType  *string  `json:"document_type,omitempty"`
	SummaryPoints []string `json:"summary_points"`
	RedFlags      []string `json:"red_flags"`
}

// LawReference is a single statutory or act-level reference surfaced to
// the user. Derived either from a StatuteEntry or a fixed category rule.
type LawReference struct {
	Act         string  `json:"act"`
	Section     string  `json:"section"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Nature      Nature  `json:"nature"`
	Punishment  *string `json:"punishment,omitempty"`
	Cognizable  *string `json:"cognizable,omitempty"`
	Bailable    *string `json:"bailable,omitempty"`
	Court       *string `json:"court,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// AnalysisResult aggregates everything produced for one analyze request.
// Entirely request-scoped; nothing here is persisted.
type AnalysisResult struct {
	IssueSummary      string            `json:"issue_summary"`
	Classification    Classification    `json:"classification"`
	DocumentAnalysis  *DocumentAnalysis `json:"document_analysis,omitempty"`
	RightsAndLaws     []LawReference    `json:"rights_and_laws"`
	Actions           []string          `json:"actions"`
	ComplaintTemplate string            `json:"complaint_template"`
	Disclaimer        string            `json:"disclaimer"`
}
