package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/henderiw/freshrange/pkg/input"
	"github.com/henderiw/freshrange/pkg/rangeset"
	"github.com/sirupsen/logrus"
)

// Solve implements subcommands.Command for the "solve" command.
type Solve struct {
	part    int
	verbose bool
	out     io.Writer
}

// Name implements subcommands.Command.Name.
func (*Solve) Name() string {
	return "solve"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Solve) Synopsis() string {
	return "Print the covered point count and the consolidated range size."
}

// Usage implements subcommands.Command.Usage.
func (*Solve) Usage() string {
	return `solve [options] <file>... - Print both puzzle answers for each input file.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Solve) SetFlags(f *flag.FlagSet) {
	f.IntVar(&s.part, "part", 0, "Only print this part (1 or 2), 0 prints both.")
	f.BoolVar(&s.verbose, "v", false, "Enable debug logging.")
}

// Execute implements subcommands.Command.Execute.
func (s *Solve) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		logrus.Errorf("no input file given")
		return subcommands.ExitUsageError
	}
	if s.part < 0 || s.part > 2 {
		logrus.Errorf("unsupported part %d", s.part)
		return subcommands.ExitUsageError
	}
	if s.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if s.out == nil {
		s.out = os.Stdout
	}

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		prefix := ""
		if f.NArg() > 1 {
			prefix = path + " "
		}
		if err := s.solve(path, prefix); err != nil {
			logrus.WithError(err).WithField("file", path).Error("solve failed")
			status = subcommands.ExitFailure
		}
	}
	return status
}

func (s *Solve) solve(path, prefix string) error {
	in, err := input.ParseFile(path)
	if err != nil {
		return err
	}
	rr := rangeset.Consolidate(in.Ranges)
	logrus.WithFields(logrus.Fields{
		"file":            path,
		"ranges":          len(in.Ranges),
		"points":          len(in.Points),
		"distinct_points": len(in.DistinctPoints()),
		"consolidated":    len(rr),
	}).Debug("parsed input")

	if s.part == 0 || s.part == 1 {
		fmt.Fprintf(s.out, "%spart 1: %d\n", prefix, in.PartOne())
	}
	if s.part == 0 || s.part == 2 {
		fmt.Fprintf(s.out, "%spart 2: %d\n", prefix, rangeset.TotalCovered(rr))
	}
	return nil
}
