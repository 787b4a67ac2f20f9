// Package models defines the record schema produced by a curation session.
package models

// Record is one curated story about a role model.
// Field order is the serialized key order and must not change.
type Record struct {
	RoleModelName        string   `json:"Role_Model_Name"`
	RoleModelContext     string   `json:"Role_Model_Context"`
	SituationFaced       string   `json:"Situation_Faced"`
	ChallengeNarrative   string   `json:"Challenge_Narrative"`
	MentalHealthThemes   []string `json:"Mental_Health_Themes"`
	CopingStrategies     []string `json:"Coping_Strategies_Used"`
	KeyActionTaken       string   `json:"Key_Action_Taken"`
	KeyQuote             string   `json:"Key_Quote_or_Insight"`
	SummaryPsychological string   `json:"Summary_Psychological"`
	OutcomeResolution    string   `json:"Outcome_Resolution"`
	SourceReference      string   `json:"Source_Reference"`
}

// Minimum trimmed lengths (in characters) of the free-text fields.
const (
	MinNameLen       = 2
	MinContextLen    = 10
	MinSituationLen  = 10
	MinNarrativeLen  = 20
	MinStrategiesLen = 5
	MinActionLen     = 5
	MinQuoteLen      = 10
	MinLessonLen     = 20
	MinOutcomeLen    = 10
)

// Bounds on the number of themes a record carries.
const (
	MinThemes = 2
	MaxThemes = 4
)

// Bounds on how many records may be created from one source file in a row.
const (
	MinRecordsPerFile = 1
	MaxRecordsPerFile = 3
)

// SequenceKey scopes story numbering: one counter per sanitized subject
// name and operator identifier.
type SequenceKey struct {
	Subject  string // sanitized, see SanitizeName
	Operator string
}

// DefaultThemes returns the built-in mental health theme vocabulary.
// Selection prompts address themes by their 1-based position.
func DefaultThemes() []string {
	return []string{
		"anxiety",
		"depression",
		"stress_management",
		"burnout",
		"grief",
		"addiction_recovery",
		"imposter_syndrome",
		"self_esteem",
		"relationship_challenges",
		"public_pressure",
	}
}
