package curate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/metrics"
	"github.com/raphaelgruber/rolemodel-curate/internal/validate"
)

// ErrInputClosed is returned when the operator's input ends mid-dialogue.
var ErrInputClosed = errors.New("input closed")

// prompter reads operator answers line by line.
type prompter struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme
	stats *metrics.Collector
}

func newPrompter(in io.Reader, out io.Writer, theme Theme, stats *metrics.Collector) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, theme: theme, stats: stats}
}

// readLine prints prompt and returns the next line of input, trimmed.
// A final line without a newline is returned before ErrInputClosed.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *prompter) warn(msg string) {
	fmt.Fprintln(p.out, p.theme.warning(msg))
}

// ask repeats prompt until check accepts the answer. Validation errors are
// shown to the operator; read errors and any other error from check end the
// loop.
func ask[T any](p *prompter, prompt string, check validate.Func[T]) (T, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := check(raw)
		if err == nil {
			return v, nil
		}
		if !validate.IsValidationError(err) {
			var zero T
			return zero, err
		}
		p.stats.Increment(metrics.CountRejectedAnswer)
		p.warn(err.Error())
	}
}
