package main

import (
	"context"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/log"
	"github.com/stripe/sortedcontainers/pkg/sortedbag"
	"github.com/stripe/sortedcontainers/pkg/sortedset"
)

type setOperation string

const (
	setOperationUnion        setOperation = "union"
	setOperationIntersection setOperation = "intersection"
	setOperationDifference   setOperation = "difference"
)

func buildUnionCmd() *cobra.Command {
	return buildSetOperationCmd(
		setOperationUnion,
		"Elements present in FILE1 or FILE2 (counts add up with --bag)",
	)
}

func buildIntersectionCmd() *cobra.Command {
	return buildSetOperationCmd(
		setOperationIntersection,
		"Elements present in both FILE1 and FILE2 (minimum counts with --bag)",
	)
}

func buildDifferenceCmd() *cobra.Command {
	return buildSetOperationCmd(
		setOperationDifference,
		"Elements present in FILE1 but not in FILE2 (counts subtracted with --bag)",
	)
}

func buildSetOperationCmd(op setOperation, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s FILE1 FILE2", op),
		Short: short,
		Args:  cobra.ExactArgs(2),
	}

	operandFlags := createOperandFlags(cmd)
	outputFlags := createOutputFlags(cmd)
	verbose := cmd.Flags().Bool("verbose", false, "Print a summary of the parsed operands")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := outputFlags.parseFormat()
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		lines1, lines2, err := loadOperandFiles(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		logEmptyOperands(log.SimpleLogger(), args, lines1, lines2)
		if *verbose {
			fmt.Printf("%s\n%s\n", header("Operands"), pretty.Sprint(summarizeOperands(args, lines1, lines2)))
		}

		return withOutput(outputFlags, func(w io.Writer) error {
			if *operandFlags.numeric {
				numbers1, err := parseNumbers(args[0], lines1)
				if err != nil {
					return err
				}
				numbers2, err := parseNumbers(args[1], lines2)
				if err != nil {
					return err
				}
				return runSetOperation(w, format, op, *operandFlags.bag, numbers1, numbers2)
			}
			return runSetOperation(w, format, op, *operandFlags.bag, lines1, lines2)
		})
	}

	return cmd
}

// runSetOperation builds the operand containers with the canonical natural
// comparator for T (shared instances, so the operands are always
// algebra-compatible) and writes the result of op to w.
func runSetOperation[T compare.Ordered](w io.Writer, format outputFormat, op setOperation, bagMode bool, elements1, elements2 []T) error {
	if bagMode {
		bag1 := sortedbag.NewArrayNatural(elements1...)
		bag2 := sortedbag.NewArrayNatural(elements2...)

		var result *sortedbag.ArrayBag[T]
		var err error
		switch op {
		case setOperationUnion:
			result, err = sortedbag.Union[T](bag1, bag2)
		case setOperationIntersection:
			result, err = sortedbag.Intersection[T](bag1, bag2)
		case setOperationDifference:
			result, err = sortedbag.Difference[T](bag1, bag2)
		default:
			err = fmt.Errorf("unknown operation %q", op)
		}
		if err != nil {
			return err
		}
		return writeEntries(w, format, bagEntries[T](result))
	}

	set1 := sortedset.NewNatural(elements1...)
	set2 := sortedset.NewNatural(elements2...)

	var result *sortedset.ArraySet[T]
	var err error
	switch op {
	case setOperationUnion:
		result, err = sortedset.Union[T](set1, set2)
	case setOperationIntersection:
		result, err = sortedset.Intersection[T](set1, set2)
	case setOperationDifference:
		result, err = sortedset.Difference[T](set1, set2)
	default:
		err = fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return err
	}
	return writeElements(w, format, result.Slice())
}

type bagEntry[T any] struct {
	element T
	count   int
}

// bagEntries groups a sorted bag's ascending iteration into one entry per
// distinct element.
func bagEntries[T comparable](bag sortedbag.SortedBag[T]) []bagEntry[T] {
	var entries []bagEntry[T]
	it := bag.Iterator()
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		if len(entries) > 0 && entries[len(entries)-1].element == element {
			entries[len(entries)-1].count++
			continue
		}
		entries = append(entries, bagEntry[T]{element: element, count: 1})
	}
	return entries
}

type operandSummary struct {
	File     string
	Lines    int
	Distinct int
}

func summarizeOperands(paths []string, lines1, lines2 []string) []operandSummary {
	return []operandSummary{
		{File: paths[0], Lines: len(lines1), Distinct: countDistinct(lines1)},
		{File: paths[1], Lines: len(lines2), Distinct: countDistinct(lines2)},
	}
}

func countDistinct(lines []string) int {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		seen[line] = struct{}{}
	}
	return len(seen)
}

func logEmptyOperands(logger log.Logger, paths []string, lines1, lines2 []string) {
	if len(lines1) == 0 {
		logger.Warnf("%q has no elements", paths[0])
	}
	if len(lines2) == 0 {
		logger.Warnf("%q has no elements", paths[1])
	}
}
