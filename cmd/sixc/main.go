// Command sixc is the command-line driver for the compiler: it reads
// a source file (or stdin), runs it through the compiler package, and
// writes the resulting 6502 assembly to a file (or stdout).
//
// The driver itself is a collaborator, not part of the core pipeline:
// it owns file I/O, flag parsing, and diagnostic logging, none of
// which the compiler package depends on.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/skx/sixc/compiler"
	"github.com/skx/sixc/ioruntime"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		targetName string
		output     string
		debug      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "sixc [file]",
		Short:         "Compile a sixc source program to 6502 assembly",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}

			source, err := readSource(args)
			if err != nil {
				return err
			}

			target, err := ioruntime.Parse(targetName)
			if err != nil {
				return err
			}
			log.WithField("target", target).Debug("resolved I/O runtime target")

			c := compiler.New(source, target)
			c.SetDebug(debug)

			log.Debug("starting compile")
			asm, err := c.Compile()
			if err != nil {
				log.WithError(err).Error("compile failed")
				return err
			}
			log.WithField("variables", c.SymbolCount()).Debug("compile succeeded")

			return writeOutput(output, asm)
		},
	}

	cmd.Flags().StringVarP(&targetName, "target", "t", "generic", "I/O runtime target: generic or py65mon")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write assembly to this file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "Insert a debug banner into the generated assembly")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	return cmd
}

// readSource reads the program text from the named file argument, or
// from stdin when no file was given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", args[0])
	}
	return string(data), nil
}

// writeOutput writes asm to the named file, or to stdout when path is
// empty.
func writeOutput(path string, asm string) error {
	if path == "" {
		fmt.Print(asm)
		return nil
	}

	if err := os.WriteFile(path, []byte(asm), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
