// Package store manages the curation directories: raw source text files on
// the input side and one JSON file per curated record on the output side.
//
// Story numbers are never cached. NextSequenceNumber rescans the output
// directory on every call, which keeps numbering correct after files are
// moved or deleted by hand but does not protect against two curators
// writing the same subject and roll number at the same time.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
)

// SourceExt is the extension of raw source text files.
const SourceExt = ".txt"

// Store reads source files and reads/writes record files.
type Store struct {
	rawDir    string
	outputDir string
	logger    *slog.Logger
}

// SourceFile is a raw text file available for curation.
type SourceFile struct {
	Name string
	Path string
	Size int64
}

// Entry is a record file found in the output directory.
// Err is set when the file name matched but the content could not be loaded.
type Entry struct {
	FileName string
	Path     string
	Key      models.SequenceKey
	Number   int
	Record   models.Record
	Err      error
}

// New creates a store over the given directories.
// If logger is nil, slog.Default() is used.
func New(rawDir, outputDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{rawDir: rawDir, outputDir: outputDir, logger: logger}
}

// RawDir returns the source directory.
func (s *Store) RawDir() string { return s.rawDir }

// OutputDir returns the record directory.
func (s *Store) OutputDir() string { return s.outputDir }

// EnsureOutputDir creates the record directory if it does not exist.
func (s *Store) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// ListSourceFiles returns the .txt files in the source directory sorted by
// name. A missing directory yields an empty list.
func (s *Store) ListSourceFiles() ([]SourceFile, error) {
	entries, err := os.ReadDir(s.rawDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("source directory does not exist", "dir", s.rawDir)
			return nil, nil
		}
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var files []SourceFile
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), SourceExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable source file", "file", e.Name(), "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, SourceFile{
			Name: e.Name(),
			Path: filepath.Join(s.rawDir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ReadSource returns the full text of a source file.
func (s *Store) ReadSource(f SourceFile) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(data), nil
}

// SourcePath returns the path of a source file referenced by name.
func (s *Store) SourcePath(name string) string {
	return filepath.Join(s.rawDir, filepath.Base(name))
}

// NextSequenceNumber returns one more than the highest story number already
// persisted for (subject, operator), or 1 if there is none. Files that do
// not follow the record naming pattern are ignored.
func (s *Store) NextSequenceNumber(subject, operator string) (int, error) {
	key := models.SequenceKey{Subject: models.SanitizeName(subject), Operator: operator}

	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 1, nil
		}
		return 0, fmt.Errorf("read output directory: %w", err)
	}

	highest := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		k, n, err := ParseFileName(e.Name())
		if err != nil {
			s.logger.Debug("ignoring file in output directory", "file", e.Name())
			continue
		}
		if k == key && n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

// Persist writes rec as <subject>_<number>_<operator>.json in the output
// directory and returns the file path. The write is atomic and never
// replaces an existing record; ErrRecordExists is returned instead.
func (s *Store) Persist(rec models.Record, subject string, number int, operator string) (string, error) {
	name, err := FileName(models.SequenceKey{Subject: models.SanitizeName(subject), Operator: operator}, number)
	if err != nil {
		return "", err
	}
	if err := s.EnsureOutputDir(); err != nil {
		return "", err
	}

	data, err := Encode(rec)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.outputDir, name)
	if _, err := os.Lstat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrRecordExists, name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat record file: %w", err)
	}

	if err := writeAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	s.logger.Info("record persisted", "file", name, "subject", rec.RoleModelName, "number", number, "operator", operator)
	return path, nil
}

// Encode serializes rec as indented JSON in field order, without escaping
// HTML or non-ASCII characters.
func Encode(rec models.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a serialized record. Unknown keys are rejected.
func Decode(data []byte) (models.Record, error) {
	var rec models.Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return models.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Load reads and decodes the record file at path.
func (s *Store) Load(path string) (models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Record{}, fmt.Errorf("read record: %w", err)
	}
	return Decode(data)
}

// RecordPath resolves a record reference: a bare file name is looked up in
// the output directory, anything else is used as given.
func (s *Store) RecordPath(ref string) string {
	if filepath.Base(ref) == ref {
		return filepath.Join(s.outputDir, ref)
	}
	return ref
}

// List returns every record file in the output directory ordered by
// subject, operator and number. Files whose names do not match the record
// pattern are skipped; files that match but fail to load are returned with
// Err set.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.outputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		key, n, err := ParseFileName(de.Name())
		if err != nil {
			continue
		}
		e := Entry{
			FileName: de.Name(),
			Path:     filepath.Join(s.outputDir, de.Name()),
			Key:      key,
			Number:   n,
		}
		e.Record, e.Err = s.Load(e.Path)
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Key.Subject != b.Key.Subject {
			return a.Key.Subject < b.Key.Subject
		}
		if a.Key.Operator != b.Key.Operator {
			return a.Key.Operator < b.Key.Operator
		}
		return a.Number < b.Number
	})
	return entries, nil
}
