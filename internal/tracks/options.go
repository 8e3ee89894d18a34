package tracks

import (
	"time"

	"github.com/jparise/juration/internal/juration"
)

// DefaultPattern matches the audio files audiometa can read.
const DefaultPattern = "**/*.{mp3,m4a,m4b,flac,ogg,opus}"

// Track holds the metadata shown for a single audio file.
type Track struct {
	Path   string
	Title  string // Falls back to the file name without its extension
	Artist string
	Length time.Duration
}

// Options contains all listing parameters.
type Options struct {
	Patterns   []string // Glob patterns (doublestar syntax) for the files to list
	Excludes   []string // Exclude patterns, matched against base names
	Extensions []string // Only list files with these extensions (e.g. ".mp3")
	IgnoreCase bool     // Case-insensitive exclude and extension matching
	Format     juration.Format
	Units      int  // Maximum number of length components (0 = no cap)
	Total      bool // Append a row with the summed length
	Jobs       int  // Maximum concurrent metadata reads
}
