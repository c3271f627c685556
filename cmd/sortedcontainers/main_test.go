package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/sortedcontainers/pkg/sortedbag"
)

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		name           string
		format         string
		expectedFormat outputFormat
		expectErr      bool
	}{
		{name: "plain", format: "plain", expectedFormat: outputFormatPlain},
		{name: "logfmt", format: "logfmt", expectedFormat: outputFormatLogfmt},
		{name: "unknown", format: "json", expectErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			format := tt.format
			flags := outputFlags{format: &format}
			parsed, err := flags.parseFormat()
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFormat, parsed)
		})
	}
}

func TestBagEntries(t *testing.T) {
	entries := bagEntries[string](sortedbag.NewArrayNatural("b", "a", "b", "b"))
	assert.Equal(t, []bagEntry[string]{
		{element: "a", count: 1},
		{element: "b", count: 3},
	}, entries)

	assert.Empty(t, bagEntries[string](sortedbag.NewArrayNatural[string]()))
}

func TestWriteElements(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, writeElements(&plain, outputFormatPlain, []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", plain.String())

	var logfmtOut bytes.Buffer
	require.NoError(t, writeElements(&logfmtOut, outputFormatLogfmt, []string{"a", "b c"}))
	assert.Equal(t, "element=a\nelement=\"b c\"\n", logfmtOut.String())
}

func TestWriteEntries(t *testing.T) {
	entries := []bagEntry[string]{{element: "a", count: 2}, {element: "b", count: 1}}

	var plain bytes.Buffer
	require.NoError(t, writeEntries(&plain, outputFormatPlain, entries))
	assert.Equal(t, "a 2\nb 1\n", plain.String())

	var logfmtOut bytes.Buffer
	require.NoError(t, writeEntries(&logfmtOut, outputFormatLogfmt, entries))
	assert.Equal(t, "element=a count=2\nelement=b count=1\n", logfmtOut.String())
}

func TestRunSetOperation(t *testing.T) {
	for _, tt := range []struct {
		name     string
		op       setOperation
		bagMode  bool
		expected string
	}{
		{name: "set union", op: setOperationUnion, expected: "1\n3\n4\n5\n6\n7\n"},
		{name: "set intersection", op: setOperationIntersection, expected: "3\n5\n"},
		{name: "set difference", op: setOperationDifference, expected: "1\n7\n"},
		{name: "bag union", op: setOperationUnion, bagMode: true, expected: "1 1\n3 2\n4 1\n5 2\n6 1\n7 1\n"},
		{name: "bag intersection", op: setOperationIntersection, bagMode: true, expected: "3 1\n5 1\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runSetOperation(&out, outputFormatPlain, tt.op, tt.bagMode,
				[]int{1, 3, 5, 7}, []int{3, 4, 5, 6})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestLoadOperandFiles(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "first")
	path2 := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(path1, []byte("a\n\nb\n"), 0o600))
	require.NoError(t, os.WriteFile(path2, []byte("c"), 0o600))

	lines1, lines2, err := loadOperandFiles(context.Background(), path1, path2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines1)
	assert.Equal(t, []string{"c"}, lines2)

	_, _, err = loadOperandFiles(context.Background(), path1, filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestParseNumbers(t *testing.T) {
	numbers, err := parseNumbers("input", []string{"1", "2.5", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, numbers)

	_, err = parseNumbers("input", []string{"1", "oops"})
	require.ErrorContains(t, err, "line 2")
}
