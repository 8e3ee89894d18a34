package tracks

import (
	"fmt"
	"io"
	"sync"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/mgutz/ansi"
)

// Row is a rendered table row.
type Row struct {
	Title  string
	Artist string
	Length string
}

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	width  int

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	bold   func(string) string
}

// NewOutput creates a new Output with optional color support. A positive
// width renders tables aligned to that many columns; zero renders them
// tab-separated for scripts.
func NewOutput(stdout, stderr io.Writer, colorize bool, width int) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		width:  width,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
		bold:   color("white+b"),
	}
}

// Table writes the track rows, followed by a total row if total is non-empty.
func (o *Output) Table(rows []Row, total string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	tp := tableprinter.New(o.stdout, o.width > 0, o.width)
	tp.AddHeader([]string{"TITLE", "ARTIST", "LENGTH"}, tableprinter.WithColor(o.bold))

	for _, row := range rows {
		tp.AddField(row.Title, tableprinter.WithColor(o.white))
		tp.AddField(row.Artist, tableprinter.WithColor(o.cyan))
		tp.AddField(row.Length, tableprinter.WithColor(o.green))
		tp.EndRow()
	}

	if total != "" {
		tp.AddField("Total")
		tp.AddField("")
		tp.AddField(total, tableprinter.WithColor(o.green))
		tp.EndRow()
	}

	return tp.Render()
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
