// Package curate runs the interactive curation session: the operator picks
// a raw source file, answers one prompt per record field, and each finished
// record is written to the output directory under the next free story
// number for its role model and roll number.
//
// Every prompt repeats until its answer validates. The only ways out of a
// session are the exit choices at file selection (0) and at the
// "another file?" question, or the input stream ending.
package curate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/rolemodel-curate/internal/config"
	"github.com/raphaelgruber/rolemodel-curate/internal/metrics"
	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"github.com/raphaelgruber/rolemodel-curate/internal/store"
	"github.com/raphaelgruber/rolemodel-curate/internal/validate"
)

// persistAttempts bounds how often a record is renumbered when its file
// appears on disk between numbering and writing.
const persistAttempts = 3

// Session is one curator's run through the raw data folder.
type Session struct {
	cfg    config.Config
	store  *store.Store
	p      *prompter
	logger *slog.Logger
	stats  *metrics.Collector
	total  int
}

// New creates a session reading answers from in and writing the dialogue to
// out. Output is styled only when out is a terminal and cfg.NoColor is unset.
func New(cfg config.Config, st *store.Store, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	stats := metrics.NewCollector()
	return &Session{
		cfg:    cfg,
		store:  st,
		p:      newPrompter(in, out, OutputTheme(out, cfg.NoColor), stats),
		logger: logger.With("session_id", uuid.NewString()),
		stats:  stats,
	}
}

// Stats returns timing and retry statistics for the session so far.
func (s *Session) Stats() metrics.Snapshot { return s.stats.Snapshot() }

// Run asks for the operator's roll number and then loops over source files
// until the operator exits. It returns the number of records written; on
// error, records written before the error remain on disk.
func (s *Session) Run() (int, error) {
	s.banner("ROLEMODELSCONNECT - PHASE 2: DATA CURATION PIPELINE")

	if err := s.store.EnsureOutputDir(); err != nil {
		return 0, err
	}

	operator, err := ask(s.p, "\nEnter your Roll Number: ", validate.OperatorID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("session started", "operator", operator, "raw_dir", s.store.RawDir(), "output_dir", s.store.OutputDir())

	for {
		files, err := s.store.ListSourceFiles()
		if err != nil {
			return s.total, err
		}
		if len(files) == 0 {
			s.p.warn(fmt.Sprintf("\n⚠ No files found in %s/ folder", s.store.RawDir()))
			s.p.println("Please run Phase 1 (data collection) first.")
			break
		}
		s.showFiles(files)

		file, ok, err := s.SelectSourceFile(files)
		if err != nil {
			return s.total, err
		}
		if !ok {
			break
		}
		s.logger.Info("source file selected", "file", file.Name)

		count, err := ask(s.p,
			fmt.Sprintf("\nHow many JSON entries from this file? (%d-%d): ", models.MinRecordsPerFile, models.MaxRecordsPerFile),
			validate.Count(models.MinRecordsPerFile, models.MaxRecordsPerFile))
		if err != nil {
			return s.total, err
		}

		for range count {
			rec, _, err := s.CreateRecord(file, operator)
			if err != nil {
				return s.total, err
			}
			s.total++
			WriteSummary(s.p.out, s.p.theme, rec)

			if _, err := s.p.readLine("\nPress Enter to continue..."); err != nil {
				return s.total, err
			}
		}

		again, err := s.p.readLine("\nCreate entries from another file? (y/n): ")
		if err != nil {
			return s.total, err
		}
		if !validate.Confirm(again) {
			break
		}
	}

	stats := s.stats.Snapshot()
	s.showReport(stats)
	s.logger.Info("session finished",
		"records_created", s.total,
		"elapsed", stats.Elapsed.Round(time.Second).String(),
		"rejected_answers", stats.RejectedAnswers,
		"renumbered", stats.Renumbered)
	return s.total, nil
}

// SelectSourceFile asks for a 1-based file number. It reports false when
// the operator enters 0 to exit.
func (s *Session) SelectSourceFile(files []store.SourceFile) (store.SourceFile, bool, error) {
	n, err := ask(s.p, "\nEnter file number to curate (or 0 to exit): ", validate.Choice(len(files)))
	if err != nil {
		return store.SourceFile{}, false, err
	}
	if n == 0 {
		return store.SourceFile{}, false, nil
	}
	return files[n-1], true, nil
}

// CreateRecord runs the full dialogue for one record from file and writes
// it. It returns the record and the path it was written to. Nothing is
// written unless every field was collected.
func (s *Session) CreateRecord(file store.SourceFile, operator string) (models.Record, string, error) {
	done := s.stats.Start(metrics.OpRecord)

	source, err := s.store.ReadSource(file)
	if err != nil {
		return models.Record{}, "", err
	}
	s.showPreview(file.Name, source)

	name, err := s.ResolveSubjectName(source)
	if err != nil {
		return models.Record{}, "", err
	}

	number, err := s.store.NextSequenceNumber(name, operator)
	if err != nil {
		return models.Record{}, "", err
	}
	s.logger.Info("story number assigned", "subject", name, "operator", operator, "number", number)

	s.p.printf("\n\n%s\n", hashRule)
	s.p.println(s.p.theme.heading(fmt.Sprintf("# CREATING JSON ENTRY #%d for %s", number, name)))
	s.p.println(hashRule)

	fields, err := s.collectFields(name, source)
	if err != nil {
		return models.Record{}, "", err
	}
	s.p.printf("\n%s Source Reference: %s\n", s.p.theme.success("✓"), file.Name)

	rec := BuildRecord(name, fields, file.Name)

	path, err := s.persist(rec, name, number, operator)
	if err != nil {
		return models.Record{}, "", err
	}

	done()
	s.banner("✓ JSON ENTRY CREATED SUCCESSFULLY")
	s.p.printf("Saved to: %s\n", path)
	return rec, path, nil
}

// persist writes rec, renumbering if the chosen file name was taken in the
// meantime. A retry always uses a higher number than the one that failed,
// since the rescan does not see names held by directories or by files
// differing only in case.
func (s *Session) persist(rec models.Record, name string, number int, operator string) (string, error) {
	for attempt := 1; ; attempt++ {
		path, err := s.store.Persist(rec, name, number, operator)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, store.ErrRecordExists) || attempt == persistAttempts {
			return "", err
		}
		s.stats.Increment(metrics.CountRenumbered)
		s.logger.Warn("record number taken, renumbering", "subject", name, "operator", operator, "number", number)

		next, err := s.store.NextSequenceNumber(name, operator)
		if err != nil {
			return "", err
		}
		number = max(next, number+1)
	}
}
