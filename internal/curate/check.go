package curate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"github.com/raphaelgruber/rolemodel-curate/internal/store"
	"github.com/raphaelgruber/rolemodel-curate/internal/validate"
)

// Finding lists what is wrong with one persisted record.
type Finding struct {
	FileName string
	Problems []string
}

// OK reports whether the record passed every check.
func (f Finding) OK() bool { return len(f.Problems) == 0 }

// CheckRecords re-validates every record in the output directory against
// the same rules the prompts enforce, and verifies each quote against the
// source file it references. It returns one finding per record file.
func CheckRecords(st *store.Store, vocabulary []string) ([]Finding, error) {
	entries, err := st.List()
	if err != nil {
		return nil, err
	}

	sources := make(map[string]sourceText)
	readSource := func(name string) sourceText {
		if src, ok := sources[name]; ok {
			return src
		}
		data, err := os.ReadFile(st.SourcePath(name))
		src := sourceText{text: string(data), err: err}
		sources[name] = src
		return src
	}

	findings := make([]Finding, 0, len(entries))
	for _, e := range entries {
		findings = append(findings, Finding{
			FileName: e.FileName,
			Problems: checkRecord(e, vocabulary, readSource),
		})
	}
	return findings, nil
}

type sourceText struct {
	text string
	err  error
}

// checkRecord returns the problems found in one record file.
func checkRecord(e store.Entry, vocabulary []string, readSource func(name string) sourceText) []string {
	if e.Err != nil {
		return []string{e.Err.Error()}
	}

	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	rec := e.Record

	if _, err := validate.Name(rec.RoleModelName); err != nil {
		add("Role_Model_Name: %v", err)
	} else if got := models.SanitizeName(rec.RoleModelName); got != e.Key.Subject {
		add("Role_Model_Name %q does not match file name subject %q", rec.RoleModelName, e.Key.Subject)
	}

	for _, field := range []struct {
		key   string
		value string
		min   int
	}{
		{"Role_Model_Context", rec.RoleModelContext, models.MinContextLen},
		{"Situation_Faced", rec.SituationFaced, models.MinSituationLen},
		{"Challenge_Narrative", rec.ChallengeNarrative, models.MinNarrativeLen},
		{"Key_Action_Taken", rec.KeyActionTaken, models.MinActionLen},
		{"Key_Quote_or_Insight", rec.KeyQuote, models.MinQuoteLen},
		{"Summary_Psychological", rec.SummaryPsychological, models.MinLessonLen},
		{"Outcome_Resolution", rec.OutcomeResolution, models.MinOutcomeLen},
	} {
		got, err := validate.MinLength(field.min)(field.value)
		switch {
		case err != nil:
			add("%s: %v", field.key, err)
		case got != field.value:
			add("%s has leading or trailing whitespace", field.key)
		}
	}

	if err := validate.ThemeSet(vocabulary, rec.MentalHealthThemes); err != nil {
		add("Mental_Health_Themes: %v", err)
	}

	if len(rec.CopingStrategies) == 0 {
		add("Coping_Strategies_Used is empty")
	}
	for i, item := range rec.CopingStrategies {
		if item == "" || strings.TrimSpace(item) != item {
			add("Coping_Strategies_Used[%d] is blank or untrimmed", i)
		}
	}

	switch ref := rec.SourceReference; {
	case ref == "":
		add("Source_Reference is empty")
	case filepath.Base(ref) != ref:
		add("Source_Reference %q is not a plain file name", ref)
	default:
		src := readSource(ref)
		if src.err != nil {
			add("Source_Reference %q does not match a raw file", ref)
		} else if rec.KeyQuote != "" && !validate.QuoteInSource(rec.KeyQuote, src.text) {
			add("Key_Quote_or_Insight not found in %s", ref)
		}
	}

	return problems
}
