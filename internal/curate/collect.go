package curate

import (
	"fmt"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"github.com/raphaelgruber/rolemodel-curate/internal/validate"
)

// Fields are the operator-supplied parts of a record.
type Fields struct {
	Context    string
	Situation  string
	Narrative  string
	Themes     []string
	Strategies []string
	Action     string
	Quote      string
	Lesson     string
	Outcome    string
}

// BuildRecord assembles a record from the role model name, the collected
// fields and the source file name.
func BuildRecord(name string, f Fields, sourceName string) models.Record {
	return models.Record{
		RoleModelName:        name,
		RoleModelContext:     f.Context,
		SituationFaced:       f.Situation,
		ChallengeNarrative:   f.Narrative,
		MentalHealthThemes:   f.Themes,
		CopingStrategies:     f.Strategies,
		KeyActionTaken:       f.Action,
		KeyQuote:             f.Quote,
		SummaryPsychological: f.Lesson,
		OutcomeResolution:    f.Outcome,
		SourceReference:      sourceName,
	}
}

// collectFields asks for every record field in schema order.
func (s *Session) collectFields(name, source string) (Fields, error) {
	var (
		f   Fields
		err error
	)

	s.p.println(s.p.theme.hint("\nExample: 'American singer, actress, and mental health advocate'"))
	if f.Context, err = s.CollectField(fmt.Sprintf("Enter %s's context (1 sentence): ", name), models.MinContextLen); err != nil {
		return f, err
	}

	s.p.println(s.p.theme.hint("\nExample: 'Struggles with anxiety and depression while maintaining a public career'"))
	if f.Situation, err = s.CollectField("What specific situation did they face?: ", models.MinSituationLen); err != nil {
		return f, err
	}

	s.p.println("\nEnter a 2-3 sentence factual summary (derived from raw text):")
	if f.Narrative, err = s.CollectField("Challenge Narrative: ", models.MinNarrativeLen); err != nil {
		return f, err
	}

	if f.Themes, err = s.CollectThemeSelection(s.cfg.Themes); err != nil {
		return f, err
	}

	if f.Strategies, err = s.CollectStrategyList(); err != nil {
		return f, err
	}

	s.p.println(s.p.theme.hint("\nExamples: 'Entered rehab facility', 'Started therapy', 'Took a break from work'"))
	if f.Action, err = s.CollectField("Key Action Taken: ", models.MinActionLen); err != nil {
		return f, err
	}

	if f.Quote, err = s.CollectQuote(source); err != nil {
		return f, err
	}

	s.p.println("\nWhat psychological or life lesson can we draw from this story?")
	s.p.println("(2-3 sentences):")
	if f.Lesson, err = s.CollectField("Psychological Lesson: ", models.MinLessonLen); err != nil {
		return f, err
	}

	s.p.println("\nWhat was the behavioral or ethical resolution?")
	if f.Outcome, err = s.CollectField("Outcome/Resolution: ", models.MinOutcomeLen); err != nil {
		return f, err
	}

	return f, nil
}

// ResolveSubjectName offers the name found in the source header for
// confirmation (Enter) or override, and falls back to asking for it.
func (s *Session) ResolveSubjectName(source string) (string, error) {
	inferred, ok := InferSubjectName(source)
	if ok {
		if _, err := validate.Name(inferred); err != nil {
			ok = false
		}
	}
	if !ok {
		return ask(s.p, "\nEnter Role Model Name (full name, e.g., 'Selena Gomez'): ", validate.Name)
	}

	s.p.printf("\nDetected role model name from raw file header: '%s'\n", inferred)
	return ask(s.p, "Press Enter to confirm, or type a different name to override: ", func(raw string) (string, error) {
		if raw == "" {
			return inferred, nil
		}
		return validate.Name(raw)
	})
}

// CollectField asks prompt until the trimmed answer has at least minLength
// characters.
func (s *Session) CollectField(prompt string, minLength int) (string, error) {
	return ask(s.p, prompt, validate.MinLength(minLength))
}

// CollectThemeSelection shows the vocabulary and asks for 2-4 theme numbers.
func (s *Session) CollectThemeSelection(vocabulary []string) ([]string, error) {
	s.showThemes(vocabulary)
	return ask(s.p, "\nEnter theme numbers (comma-separated, e.g., '1,3,5'): ", validate.Themes(vocabulary))
}

// CollectStrategyList asks for comma-separated coping strategies.
func (s *Session) CollectStrategyList() ([]string, error) {
	s.p.println(s.p.theme.hint("\nExamples: therapy, meditation, taking breaks, medication, exercise, journaling"))
	s.p.println("Enter coping strategies (comma-separated):")
	return ask(s.p, "Coping Strategies: ", validate.Strategies)
}

// CollectQuote asks for a direct quote and checks it against the source
// text. A quote that cannot be found is kept only if the operator confirms
// it; otherwise the operator is asked again.
func (s *Session) CollectQuote(source string) (string, error) {
	s.banner("EXTRACT A DIRECT QUOTE FROM RAW TEXT")
	s.p.println("\nReview the content preview above and find a powerful, relevant quote.")
	s.p.println("Enter the exact quote (must be from the raw text):")

	for {
		quote, err := ask(s.p, "\nDirect Quote: ", validate.MinLength(models.MinQuoteLen))
		if err != nil {
			return "", err
		}
		if validate.QuoteInSource(quote, source) {
			return quote, nil
		}

		answer, err := s.p.readLine(s.p.theme.warning("\n⚠ Quote not found in raw text.") + " Continue anyway? (y/n): ")
		if err != nil {
			return "", err
		}
		if validate.Confirm(answer) {
			s.logger.Info("unverified quote accepted", "quote_len", len(quote))
			return quote, nil
		}
	}
}
