package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/sync/errgroup"

	"github.com/stripe/sortedcontainers/internal/util"
)

// loadOperandFiles reads both operand files concurrently, one element per
// line. Empty lines are skipped.
func loadOperandFiles(ctx context.Context, path1, path2 string) ([]string, []string, error) {
	var lines1, lines2 []string
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		lines1, err = readLines(path1)
		return err
	})
	group.Go(func() error {
		var err error
		lines2, err = readLines(path2)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return lines1, lines2, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return lines, nil
}

func parseNumbers(path string, lines []string) ([]float64, error) {
	numbers := make([]float64, len(lines))
	for i, line := range lines {
		number, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q line %d: %w", path, i+1, err)
		}
		numbers[i] = number
	}
	return numbers, nil
}

// withOutput runs write against stdout or, if an output path is set, against
// that file. Overwriting an existing file requires confirmation unless
// --skip-confirm-prompt is set. On a write error the partially written file is
// closed via util.DoOnErrOrPanic before the error is surfaced.
func withOutput(flags *outputFlags, write func(w io.Writer) error) (returnErr error) {
	if *flags.output == "" {
		return write(os.Stdout)
	}

	if _, err := os.Stat(*flags.output); err == nil && !*flags.skipConfirmPrompt {
		if err := mustContinuePrompt(fmt.Sprintf("%q already exists. Overwrite?", *flags.output)); err != nil {
			return err
		}
	}

	file, err := os.Create(*flags.output)
	if err != nil {
		return fmt.Errorf("creating %q: %w", *flags.output, err)
	}
	defer util.DoOnErrOrPanic(&returnErr, func() {
		file.Close()
	})

	if err := write(file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", *flags.output, err)
	}
	return nil
}

func writeElements[T any](w io.Writer, format outputFormat, elements []T) error {
	switch format {
	case outputFormatLogfmt:
		encoder := logfmt.NewEncoder(w)
		for _, element := range elements {
			if err := encoder.EncodeKeyvals("element", element); err != nil {
				return fmt.Errorf("encoding element %v: %w", element, err)
			}
			if err := encoder.EndRecord(); err != nil {
				return fmt.Errorf("ending record: %w", err)
			}
		}
		return nil
	default:
		for _, element := range elements {
			if _, err := fmt.Fprintln(w, element); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeEntries[T any](w io.Writer, format outputFormat, entries []bagEntry[T]) error {
	switch format {
	case outputFormatLogfmt:
		encoder := logfmt.NewEncoder(w)
		for _, entry := range entries {
			if err := encoder.EncodeKeyvals("element", entry.element, "count", entry.count); err != nil {
				return fmt.Errorf("encoding entry %v: %w", entry.element, err)
			}
			if err := encoder.EndRecord(); err != nil {
				return fmt.Errorf("ending record: %w", err)
			}
		}
		return nil
	default:
		for _, entry := range entries {
			if _, err := fmt.Fprintf(w, "%v %d\n", entry.element, entry.count); err != nil {
				return err
			}
		}
		return nil
	}
}
