package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/yoch/ahocora/internal/pkg/ahocorasick"
	"github.com/yoch/ahocora/internal/pkg/dictionary"
	"github.com/yoch/ahocora/internal/pkg/logger"
)

var ScanCmd = &cobra.Command{
	Use:   "scan [file ...]",
	Short: "Scan files or stdin for pattern occurrences",
	Long: `Scan the given files (or stdin when none are given) for every occurrence
of every pattern, overlapping occurrences included. Matches are printed one
per line as input:offset:pattern, with 0-indexed byte offsets.`,
	RunE: runScan,
}

var (
	patterns      []string
	patternFile   string
	deterministic bool
)

func init() {
	ScanCmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "pattern to search for (repeatable)")
	ScanCmd.Flags().StringVarP(&patternFile, "file", "f", "", "pattern dictionary file, plain text or YAML")
	ScanCmd.Flags().BoolVarP(&deterministic, "deterministic", "d", false, "pre-compute all transitions: faster scans, more memory")
}

func runScan(cmd *cobra.Command, args []string) error {
	words := slices.Clone(patterns)
	if patternFile != "" {
		loaded, err := dictionary.Load(patternFile)
		if err != nil {
			return err
		}
		words = append(words, loaded...)
	}
	if len(words) == 0 {
		return errors.New("no patterns given, use --pattern or --file")
	}

	ac := ahocorasick.New[byte]()
	for _, w := range words {
		if err := ac.Insert([]byte(w)); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", w, err)
		}
	}

	start := time.Now()
	if err := ac.Compile(deterministic); err != nil {
		return err
	}
	stats := ac.Stats()
	logger.Debug("automaton compiled",
		"patterns", stats.Patterns,
		"states", stats.States,
		"transitions", stats.Transitions,
		"deterministic", stats.Deterministic,
		"duration", time.Since(start))

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return scanStream(ac, "stdin", cmd.InOrStdin(), out)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		err = scanStream(ac, path, f, out)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// scanStream feeds the input to the automaton byte by byte and prints
// matches as they are found. The input is never buffered whole; matching
// keeps pace with reading.
func scanStream(ac *ahocorasick.Automaton[byte], name string, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)

	var readErr error
	symbols := func(yield func(byte) bool) {
		for {
			b, err := br.ReadByte()
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				return
			}
			if !yield(b) {
				return
			}
		}
	}

	seq, err := ac.SearchSeq(symbols)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	count := 0
	for m := range seq {
		count++
		fmt.Fprintf(bw, "%s:%d:%s\n", name, m.Pos, m.Pattern)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write matches: %w", err)
	}
	if readErr != nil {
		return fmt.Errorf("failed to read %s: %w", name, readErr)
	}

	logger.Debug("scan finished", "input", name, "matches", count)
	return nil
}
