package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphaelgruber/rolemodel-curate/internal/curate"
	"github.com/raphaelgruber/rolemodel-curate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeSource = "Role Model: Jane Doe\nShe said \"It's OK to not be OK\" in an interview.\n"

type fixture struct {
	rawDir    string
	outputDir string
	store     *store.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		rawDir:    filepath.Join(dir, "raw"),
		outputDir: filepath.Join(dir, "out"),
	}
	require.NoError(t, os.MkdirAll(f.rawDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.rawDir, "jane_doe.txt"), []byte(janeSource), 0644))
	f.store = store.New(f.rawDir, f.outputDir, nil)

	t.Setenv("CURATE_LOG_FILE", filepath.Join(dir, "curate.log"))
	t.Setenv("CURATE_CONFIG", "")
	return f
}

func (f fixture) persist(t *testing.T, subject string, n int, operator string) {
	t.Helper()
	rec := curate.BuildRecord(subject, curate.Fields{
		Context:    "American singer and advocate",
		Situation:  "Panic attacks after a world tour",
		Narrative:  "She cancelled shows to recover and spoke about it publicly.",
		Themes:     []string{"anxiety", "burnout"},
		Strategies: []string{"therapy", "rest"},
		Action:     "Took a break",
		Quote:      "It's OK to not be OK",
		Lesson:     "Rest is a legitimate response to overload.",
		Outcome:    "Returned to touring a year later.",
	}, "jane_doe.txt")
	_, err := f.store.Persist(rec, subject, n, operator)
	require.NoError(t, err)
}

// run executes the root command with fresh flag state and returns stdout.
func (f fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	verbose, noColor, configFile, rawDir, outputDir = false, false, "", "", ""
	listSubject, listOperator = "", ""
	nextSubject, nextOperator = "", ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--raw-dir", f.rawDir, "--output-dir", f.outputDir))

	err := Execute()
	return out.String(), err
}

func TestNext(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "", "next", "--subject", "Jane Doe", "--operator", "42")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	f.persist(t, "Jane Doe", 1, "42")
	f.persist(t, "Jane Doe", 3, "42")
	f.persist(t, "Jane Doe", 7, "43")

	out, err = f.run(t, "", "next", "--subject", "Jane Doe", "--operator", "42")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestNext_InvalidOperator(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "next", "--subject", "Jane Doe", "--operator", "4_2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operator")
}

func TestList(t *testing.T) {
	f := newFixture(t)
	f.persist(t, "Jane Doe", 1, "42")
	f.persist(t, "John Roe", 1, "42")
	f.persist(t, "Jane Doe", 1, "43")

	out, err := f.run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "JaneDoe_1_42.json")
	assert.Contains(t, out, "JohnRoe_1_42.json")
	assert.Contains(t, out, "3 record(s)")

	out, err = f.run(t, "", "list", "--subject", "Jane Doe", "--operator", "43")
	require.NoError(t, err)
	assert.Contains(t, out, "JaneDoe_1_43.json")
	assert.NotContains(t, out, "JaneDoe_1_42.json")
	assert.Contains(t, out, "1 record(s)")
}

func TestList_Empty(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found.")
}

func TestShow(t *testing.T) {
	f := newFixture(t)
	f.persist(t, "Jane Doe", 1, "42")

	out, err := f.run(t, "", "show", "JaneDoe_1_42.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "It's OK to not be OK")

	out, err = f.run(t, "", "show", "--no-color", "JaneDoe_1_42.json")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON ENTRY SUMMARY")

	_, err = f.run(t, "", "show", "Missing_1_42.json")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	f := newFixture(t)
	f.persist(t, "Jane Doe", 1, "42")

	out, err := f.run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "All 1 records passed.")

	require.NoError(t, os.WriteFile(filepath.Join(f.outputDir, "JaneDoe_2_42.json"), []byte("{}"), 0644))

	out, err = f.run(t, "", "check")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 records failed checks", err.Error())
	assert.Contains(t, out, "FAIL  JaneDoe_2_42.json")
}

func TestSession_InputClosed(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, curate.ErrInputClosed)
}

func TestSession_ReportsSavedRecordsWhenInputEnds(t *testing.T) {
	f := newFixture(t)

	answers := []string{
		"42", // roll number
		"1",  // file
		"1",  // one record
		"",   // confirm "Jane Doe"
		"American singer and advocate",
		"Panic attacks after a world tour",
		"She cancelled shows to recover and spoke about it publicly.",
		"1,2",
		"therapy, rest",
		"Took a break",
		"It's OK to not be OK",
		"Rest is a legitimate response to overload.",
		"Returned to touring a year later.",
		"", // press enter
	}

	out, err := f.run(t, strings.Join(answers, "\n")+"\n", "session")
	require.ErrorIs(t, err, curate.ErrInputClosed)
	assert.Contains(t, out, "1 record(s) were saved to "+f.outputDir+" before the session stopped.")

	_, err = f.store.Load(filepath.Join(f.outputDir, "JaneDoe_1_42.json"))
	require.NoError(t, err)
}

func TestSession_ExitImmediately(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "42\n0\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "jane_doe.txt")
}
