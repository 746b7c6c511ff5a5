// Package cli implements the tripid command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/tripid/internal/config"
	"github.com/tessro/tripid/internal/emit"
	"github.com/tessro/tripid/internal/logging"
	"github.com/tessro/tripid/internal/style"
)

// rootOptions holds flag values and the settings resolved from them.
type rootOptions struct {
	configPath string
	format     string
	count      int
	logLevel   string
	color      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tripid",
		Short: "Print test trip identifiers",
		Long: "tripid prints a freshly generated Test Trip Request ID and the fixed\n" +
			"SQL Test Trip ID seeded by the test database fixture.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "stderr log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(emit.FormatText), "output format (text, json, yaml)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", config.DefaultCount, "number of trip request IDs to generate")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour labels when writing to a terminal")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolve loads the config file, if any, lets explicit flags override it
// and sets up logging.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	var cfg *config.Config
	if o.configPath != "" {
		loaded, err := config.LoadFromPath(o.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if loaded == nil {
			return fmt.Errorf("load config: %s: %w", o.configPath, os.ErrNotExist)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", o.configPath, err)
		}
		cfg = loaded
	}

	if !flagChanged(cmd, "log-level") {
		o.logLevel = cfg.GetLogLevel()
	}
	if !flagChanged(cmd, "format") {
		o.format = cfg.GetFormat()
	}
	if !flagChanged(cmd, "count") {
		o.count = cfg.GetCount()
	}
	if !flagChanged(cmd, "color") {
		o.color = cfg.GetColor()
	}

	if err := config.ValidateLogLevel(o.logLevel); err != nil {
		return err
	}
	logging.Setup(cmd.ErrOrStderr(), logging.ParseLevel(o.logLevel))

	if cfg != nil {
		slog.Debug("loaded config", "path", o.configPath)
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	format, err := emit.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	e := emit.New(out, nil, emit.Options{
		Format:  format,
		Count:   opts.count,
		Labeler: style.New(out, opts.color),
	})
	return e.Run()
}

// Execute runs the tripid command line with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
