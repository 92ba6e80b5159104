// Package cli implements the jdconv command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/internal/config"
)

// app is the state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	cal    calendar.Calendar
	logger *slog.Logger
	stderr io.Writer
}

// Execute runs jdconv with the process arguments and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "jdconv",
		Short: "Convert between Julian day numbers and calendar dates",
		Long: "jdconv converts Julian day numbers to dates and back in the proleptic Julian and Gregorian\n" +
			"calendars and in reforming calendars that switch from one to the other on a given day.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .jdconv.yaml)")
	pf.String("calendar", "", "calendar: julian, gregorian or reforming")
	pf.String("reformation", "", "first Gregorian day of a reforming calendar, as a Julian day number or a name")
	pf.StringP("output", "o", "", "output format: text, json or toml")
	pf.BoolP("verbose", "v", false, "verbose output")
	for _, key := range []string{"calendar", "reformation", "output", "verbose"} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.jdnCmd(),
		a.dateCmd(),
		a.ordinalCmd(),
		a.monthCmd(),
		a.yearCmd(),
		a.gapCmd(),
		a.reformationsCmd(),
		a.serveCmd(),
		a.dbfCmd(),
	)
	return root
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".jdconv")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	a.v.SetEnvPrefix("JDCONV")
	a.v.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	a.cal, err = cfg.BuildCalendar()
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded",
		slog.String("file", a.v.ConfigFileUsed()),
		slog.String("calendar", a.cal.String()),
		slog.String("output", cfg.Output),
	)
	return nil
}
