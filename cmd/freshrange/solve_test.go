package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

const example = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolve(t *testing.T) {
	good := writeInput(t, "05.txt", example)
	bad := writeInput(t, "bad.txt", "1-x\n\n3\n")

	cases := map[string]struct {
		args           []string
		expectedOutput string
		expectedStatus subcommands.ExitStatus
	}{
		"BothParts": {
			args:           []string{good},
			expectedOutput: "part 1: 3\npart 2: 14\n",
			expectedStatus: subcommands.ExitSuccess,
		},
		"PartTwo": {
			args:           []string{"-part", "2", good},
			expectedOutput: "part 2: 14\n",
			expectedStatus: subcommands.ExitSuccess,
		},
		"MultipleFiles": {
			args:           []string{"-part", "1", good, good},
			expectedOutput: good + " part 1: 3\n" + good + " part 1: 3\n",
			expectedStatus: subcommands.ExitSuccess,
		},
		"BadPart": {
			args:           []string{"-part", "3", good},
			expectedStatus: subcommands.ExitUsageError,
		},
		"NoFiles": {
			expectedStatus: subcommands.ExitUsageError,
		},
		"ParseError": {
			args:           []string{bad},
			expectedStatus: subcommands.ExitFailure,
		},
		"MissingFile": {
			args:           []string{filepath.Join(t.TempDir(), "missing.txt")},
			expectedStatus: subcommands.ExitFailure,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			s := &Solve{out: &out}
			f := flag.NewFlagSet(s.Name(), flag.ContinueOnError)
			f.SetOutput(&bytes.Buffer{})
			s.SetFlags(f)
			assert.NoError(t, f.Parse(tc.args))

			status := s.Execute(context.Background(), f)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedOutput, out.String())
		})
	}
}
