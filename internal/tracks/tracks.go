// Package tracks lists audio files with their metadata and human-readable lengths.
package tracks

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/juration/internal/juration"
	"github.com/simonhull/audiometa"
	"golang.org/x/sync/semaphore"
)

// MetadataReader reads the track metadata for a single file.
type MetadataReader func(ctx context.Context, path string) (Track, error)

// Lister orchestrates reading and rendering track listings.
type Lister struct {
	output *Output
	read   MetadataReader
}

// New creates a new Lister that reads metadata with audiometa.
func New(stdout, stderr io.Writer, colorize bool, width int) *Lister {
	return &Lister{
		output: NewOutput(stdout, stderr, colorize, width),
		read:   ReadMetadata,
	}
}

// ReadMetadata reads a track's title, artist, and length from an audio file.
func ReadMetadata(ctx context.Context, path string) (Track, error) {
	file, err := audiometa.OpenContext(ctx, path)
	if err != nil {
		return Track{}, fmt.Errorf("failed to read metadata: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only, nothing to flush

	return Track{
		Path:   path,
		Title:  file.Tags.Title,
		Artist: file.Tags.Artist,
		Length: file.Audio.Duration,
	}, nil
}

// List expands the patterns, reads every matching file, and writes a table
// of tracks in the order the files were matched.
func (l *Lister) List(ctx context.Context, opts *Options) error {
	paths, err := expandPatterns(opts.Patterns)
	if err != nil {
		return err
	}

	paths = filterByExtension(paths, opts.Extensions, opts.IgnoreCase)
	paths, err = filterByExcludes(paths, opts.Excludes, opts.IgnoreCase)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		l.output.Warningf("No files match the pattern")
		return nil
	}

	// Read metadata concurrently with bounded parallelism. Results are
	// stored by index so output follows the input order.
	results := make([]*Track, len(paths))
	var wg sync.WaitGroup
	var errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(max(opts.Jobs, 1)))

	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			track, err := l.read(ctx, path)
			if err != nil {
				errorCount.Add(1)
				l.output.Warningf("%s: %v", path, err)
				return
			}
			if track.Title == "" {
				track.Title = titleFromPath(path)
			}
			results[i] = &track
		}(i, path)
	}

	wg.Wait()

	if n := int(errorCount.Load()); n == len(paths) {
		return fmt.Errorf("failed to read all %d files", len(paths))
	} else if n > 0 {
		l.output.Infof("Skipped %d of %d files", n, len(paths))
	}

	stringifyOpts := juration.Options{Format: opts.Format, Units: opts.Units}

	var rows []Row
	var total time.Duration
	for _, track := range results {
		if track == nil {
			continue
		}

		length, err := formatLength(track.Length, stringifyOpts)
		if err != nil {
			return fmt.Errorf("%s: %w", track.Path, err)
		}
		rows = append(rows, Row{Title: track.Title, Artist: track.Artist, Length: length})
		total += track.Length
	}

	var totalLength string
	if opts.Total {
		totalLength, err = formatLength(total, stringifyOpts)
		if err != nil {
			return err
		}
	}

	return l.output.Table(rows, totalLength)
}

// formatLength renders whole seconds of d.
func formatLength(d time.Duration, opts juration.Options) (string, error) {
	return juration.Stringify(float64(d/time.Second), opts)
}

// expandPatterns globs each pattern against the filesystem, returning
// regular files only. Duplicates are removed while preserving order.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	return paths, nil
}

func filterByExtension(paths []string, extensions []string, ignoreCase bool) []string {
	if len(extensions) == 0 {
		return paths
	}

	normalized := make([]string, len(extensions))
	for i, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ignoreCase {
			ext = strings.ToLower(ext)
		}
		normalized[i] = ext
	}

	var filtered []string
	for _, path := range paths {
		ext := filepath.Ext(path)
		if ignoreCase {
			ext = strings.ToLower(ext)
		}
		if ext != "" && slices.Contains(normalized, ext) {
			filtered = append(filtered, path)
		}
	}

	return filtered
}

func filterByExcludes(paths []string, excludes []string, ignoreCase bool) ([]string, error) {
	if len(excludes) == 0 {
		return paths, nil
	}

	if ignoreCase {
		normalized := make([]string, len(excludes))
		for i, exclude := range excludes {
			normalized[i] = strings.ToLower(exclude)
		}
		excludes = normalized
	}

	var filtered []string
	for _, path := range paths {
		name := filepath.Base(path)
		if ignoreCase {
			name = strings.ToLower(name)
		}

		excluded := false
		for _, excludePattern := range excludes {
			isExcluded, err := doublestar.Match(excludePattern, name)
			if err != nil {
				return nil, fmt.Errorf("exclude pattern %q failed to match path %q: %w",
					excludePattern, path, err)
			}
			if isExcluded {
				excluded = true
				break
			}
		}

		if !excluded {
			filtered = append(filtered, path)
		}
	}

	return filtered, nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
