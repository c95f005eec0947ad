package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quill/internal/driver"
)

var debug bool

func newDriver() *driver.Driver {
	log := zerolog.Nop()
	if debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
	return driver.New(os.Stdout, log)
}

func main() {
	root := &cobra.Command{
		Use:   "quill",
		Short: "quill interprets a small expression language",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "trace the scan/parse/eval stages to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "run <script>",
		Short: "Run a script file in one pass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return newDriver().RunFile(args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start the interactive loop",
		Run: func(cmd *cobra.Command, args []string) {
			newDriver().Interactive()
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
