// Package cli wires the catalog, its file store and configuration into the
// library command.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"library/internal/catalog"
	"library/internal/config"
	"library/internal/report"
	"library/internal/store"
)

// Execute runs the library command with the process arguments.
func Execute() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once configuration is resolved.
type app struct {
	out      io.Writer
	reporter report.Reporter
	file     *store.File
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	var cfgFile string
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:          "library",
		Short:        "Manage a catalog of books and magazines stored in a text file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnvFiles()

			v := viper.New()
			if err := v.BindPFlag("file", cmd.Root().PersistentFlags().Lookup("file")); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			a.reporter = report.NewLogrus(report.NewLogger(logOut, cfg.Log.Level, cfg.Log.Format))
			a.file = store.NewFile(cfg.File, store.WithReporter(a.reporter))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringP("file", "f", "", "catalog file (default \"library.txt\")")

	cmd.AddCommand(
		listCmd(a),
		byAuthorCmd(a),
		addCmd(a),
		removeCmd(a),
		kindsCmd(a),
		demoCmd(a),
	)
	return cmd
}

// open loads the configured file into a fresh catalog.
func (a *app) open() (*catalog.Catalog, error) {
	c := catalog.New(catalog.WithReporter(a.reporter))
	if _, err := a.file.Load(c); err != nil {
		return nil, err
	}
	return c, nil
}
