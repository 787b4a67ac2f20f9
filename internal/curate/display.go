package curate

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/raphaelgruber/rolemodel-curate/internal/metrics"
	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"github.com/raphaelgruber/rolemodel-curate/internal/store"
)

const ruleWidth = 80

var (
	rule     = strings.Repeat("=", ruleWidth)
	hashRule = strings.Repeat("#", ruleWidth)
)

// writeBanner prints a title between two rules.
func writeBanner(w io.Writer, t Theme, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, t.heading(title), rule)
}

func (s *Session) banner(title string) {
	writeBanner(s.p.out, s.p.theme, title)
}

// showFiles lists the source files with their 1-based selection numbers.
func (s *Session) showFiles(files []store.SourceFile) {
	s.banner("AVAILABLE RAW DATA FILES")
	for i, f := range files {
		s.p.printf("%d. %s (%.1f KB)\n", i+1, f.Name, float64(f.Size)/1024)
	}
}

// showPreview prints the first PreviewLength characters of a source text.
func (s *Session) showPreview(name, content string) {
	s.banner("CONTENT PREVIEW: " + name)
	s.p.println()

	limit := s.cfg.PreviewLength
	total := utf8.RuneCountInString(content)
	if total <= limit {
		s.p.println(content)
	} else {
		s.p.println(string([]rune(content)[:limit]))
		s.p.printf("\n%s\n", s.p.theme.hint(fmt.Sprintf("... (%d more characters)", total-limit)))
	}

	s.p.printf("\n%s\n", rule)
}

// showThemes prints the vocabulary with 1-based selection numbers.
func (s *Session) showThemes(vocabulary []string) {
	s.banner(fmt.Sprintf("SELECT MENTAL HEALTH THEMES (Choose %d-%d)", models.MinThemes, models.MaxThemes))
	s.p.println()
	for i, theme := range vocabulary {
		s.p.printf("%d. %s\n", i+1, theme)
	}
}

// WriteSummary prints the short form of a record shown after it is saved.
func WriteSummary(w io.Writer, t Theme, rec models.Record) {
	writeBanner(w, t, "JSON ENTRY SUMMARY")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Role Model: %s\n", rec.RoleModelName)
	fmt.Fprintf(w, "Context: %s\n", rec.RoleModelContext)
	fmt.Fprintf(w, "Situation: %s\n", rec.SituationFaced)
	fmt.Fprintf(w, "\nThemes: %s\n", strings.Join(rec.MentalHealthThemes, ", "))
	fmt.Fprintf(w, "Strategies: %s\n", strings.Join(rec.CopingStrategies, ", "))
	fmt.Fprintf(w, "\nKey Action: %s\n", rec.KeyActionTaken)
	fmt.Fprintf(w, "\nQuote: \"%s\"\n", rec.KeyQuote)
	fmt.Fprintf(w, "\nSource: %s\n", rec.SourceReference)
	fmt.Fprintf(w, "%s\n\n", rule)
}

// showReport prints the end-of-session totals and the manual checklist.
func (s *Session) showReport(stats metrics.Snapshot) {
	s.banner("CURATION COMPLETE")
	s.p.printf("Total JSON entries created: %d\n", s.total)
	s.p.printf("Saved in: %s/\n", s.store.OutputDir())
	if stats.Record != nil {
		s.p.printf("Average time per entry: %s\n", stats.Record.Average.Round(time.Second))
	}
	if stats.RejectedAnswers > 0 {
		s.p.printf("Answers re-entered: %d\n", stats.RejectedAnswers)
	}
	s.p.println("\nVerify each JSON file:")
	for _, item := range []string{
		"All quotes are from raw text files",
		"Source_Reference matches actual filenames",
		"Mental health themes are from the provided list",
		"All required fields are filled",
	} {
		s.p.println(s.p.theme.success("✓") + " " + item)
	}
	s.p.println(s.p.theme.hint("Run 'curate check' to verify them automatically."))
	s.p.printf("%s\n\n", rule)
}
