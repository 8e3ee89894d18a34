package tracks

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewOutput(t *testing.T) {
	tests := []struct {
		name     string
		colorize bool
	}{
		{name: "with colors", colorize: true},
		{name: "without colors", colorize: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, tt.colorize, 0)
			colorFuncs := []struct {
				name string
				fn   func(string) string
			}{
				{"cyan", output.cyan},
				{"green", output.green},
				{"white", output.white},
				{"yellow", output.yellow},
				{"bold", output.bold},
			}
			for _, cf := range colorFuncs {
				if cf.fn == nil {
					t.Errorf("NewOutput() %s color func is nil", cf.name)
				}
				s := cf.fn("test")
				if tt.colorize {
					if s == "test" {
						t.Errorf("NewOutput() expected %s color func to return ANSI codes", cf.name)
					}
				} else {
					if s != "test" {
						t.Errorf("NewOutput() expected %s color func to return plain string, got %q", cf.name, s)
					}
				}
			}
		})
	}
}

func TestTable(t *testing.T) {
	rows := []Row{
		{Title: "Dirty", Artist: "Me", Length: "1 min 52 secs"},
		{Title: "SnakeBit", Artist: "Me", Length: "2 mins 38 secs"},
	}

	tests := []struct {
		name      string
		width     int
		total     string
		wantLines []string
		notWant   string
	}{
		{
			name:      "tab separated",
			wantLines: []string{"Dirty\tMe\t1 min 52 secs", "SnakeBit\tMe\t2 mins 38 secs"},
			notWant:   "Total",
		},
		{
			name:      "with total",
			total:     "4 mins 30 secs",
			wantLines: []string{"Dirty\tMe\t1 min 52 secs", "Total\t\t4 mins 30 secs"},
		},
		{
			name:      "aligned",
			width:     80,
			wantLines: []string{"TITLE", "Dirty", "SnakeBit", "2 mins 38 secs"},
			notWant:   "\t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			output := NewOutput(stdout, &bytes.Buffer{}, false, tt.width)

			if err := output.Table(rows, tt.total); err != nil {
				t.Fatalf("Table() unexpected error: %v", err)
			}

			got := stdout.String()
			for _, line := range tt.wantLines {
				if !strings.Contains(got, line) {
					t.Errorf("Table() output missing %q, got:\n%s", line, got)
				}
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("Table() output contains %q, got:\n%s", tt.notWant, got)
			}
		})
	}
}

func TestWarningf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{
			name:   "simple warning",
			format: "something happened",
			want:   "Warning: something happened\n",
		},
		{
			name:   "formatted warning",
			format: "%s: %v",
			args:   []any{"song.mp3", "unsupported format"},
			want:   "Warning: song.mp3: unsupported format\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			output := NewOutput(&bytes.Buffer{}, stderr, false, 0)

			output.Warningf(tt.format, tt.args...)

			if got := stderr.String(); got != tt.want {
				t.Errorf("Warningf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfof(t *testing.T) {
	stderr := &bytes.Buffer{}
	output := NewOutput(&bytes.Buffer{}, stderr, false, 0)

	output.Infof("Skipped %d of %d files", 1, 4)

	if got, want := stderr.String(), "Skipped 1 of 4 files\n"; got != want {
		t.Errorf("Infof() = %q, want %q", got, want)
	}
}

func TestOutputConcurrentWarnings(t *testing.T) {
	stderr := &bytes.Buffer{}
	output := NewOutput(&bytes.Buffer{}, stderr, false, 0)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output.Warningf("file%d", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "Warning: file") {
			t.Errorf("interleaved output: %q", line)
		}
	}
}

func TestReadMetadataInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFiles(t, dir, "empty.mp3")[0]

	if _, err := ReadMetadata(context.Background(), path); err == nil {
		t.Errorf("ReadMetadata(%q) expected error for empty file, got nil", path)
	}
	if _, err := ReadMetadata(context.Background(), filepath.Join(dir, "missing.mp3")); err == nil {
		t.Error("ReadMetadata() expected error for missing file, got nil")
	}
}

func TestNew(t *testing.T) {
	l := New(&bytes.Buffer{}, &bytes.Buffer{}, false, 0)
	if l.output == nil || l.read == nil {
		t.Errorf("New() = %+v, want output and reader set", l)
	}
}
