package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bchadwic/romconv/formatter"
	"github.com/bchadwic/romconv/internal/logging"
	"github.com/bchadwic/romconv/rom"
	"github.com/spf13/cobra"
)

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "convert [input-path]",
		Short: "Print a rom image as a list of hex literals",
		Long: fmt.Sprintf(
			"Print every byte of a rom image as a 0xXX literal, %d per line, ready to paste into an array initializer.\nReads %s when no path is given.",
			formatter.BytesPerRow, rom.DefaultPath,
		),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(level, stderr)
			path := rom.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			data, err := rom.Load(path)
			if err != nil {
				return err
			}
			log.WithField("path", path).Debugf("loaded %d bytes", len(data))

			if err := formatter.Write(stdout, data); err != nil {
				return err
			}
			_, err = io.WriteString(stdout, "\n")
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&level, "log-level", logging.DefaultLevel, "log level: debug | info | warning | error")
	return cmd
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		logging.New(logging.DefaultLevel, stderr).Error(err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
