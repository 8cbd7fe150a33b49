// Package cmd provides the command-line interface of lanemap.
package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"
)

// EnvPrefix prefixes the environment variables that configure lanemap.
const EnvPrefix = "LANEMAP"

// Configuration keys.
const (
	keyLogLevel    = "log_level"
	keyRecord      = "record"
	keyMaxAttempts = "max_attempts"
	keyMonitorPort = "monitor_port"
)

// app carries what the commands share. Every root command has its own, so
// that commands can be executed more than once in a process.
type app struct {
	cfg    *viper.Viper
	logger *logrus.Logger
}

// NewRootCommand creates the lanemap command with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{
		cfg:    viper.New(),
		logger: logrus.New(),
	}

	rootCmd := &cobra.Command{
		Use:   "lanemap",
		Short: "lanemap assigns and checks the ids of map entities.",
		Long: `lanemap assigns stable, unique ids to the entities of map ` +
			`documents. It fills in missing lane ids, reports duplicates, ` +
			`and serves a document for inspection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("record", "",
		"Record id assignments into the given SQLite database (without "+
			"the .sqlite3 extension)")
	flags.Int("max-attempts", 2,
		"Number of attempts to find an unused id before giving up")

	a.cfg.SetDefault(keyLogLevel, "info")
	a.cfg.SetDefault(keyMaxAttempts, 2)
	a.cfg.SetDefault(keyMonitorPort, 0)
	a.mustBind(keyLogLevel, flags.Lookup("log-level"))
	a.mustBind(keyRecord, flags.Lookup("record"))
	a.mustBind(keyMaxAttempts, flags.Lookup("max-attempts"))

	rootCmd.AddCommand(
		newBackfillCmd(a),
		newNextIDCmd(a),
		newCheckCmd(a),
		newRenameCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
	)

	return rootCmd
}

// Execute runs the lanemap command with the program arguments.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func (a *app) mustBind(key string, flag *pflag.Flag) {
	if flag == nil {
		panic("flag for " + key + " is not defined")
	}

	err := a.cfg.BindPFlag(key, flag)
	if err != nil {
		panic(err)
	}
}

func (a *app) configure(cmd *cobra.Command) error {
	err := loadDotEnv()
	if err != nil {
		return err
	}

	a.cfg.SetEnvPrefix(EnvPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	level, err := logrus.ParseLevel(a.cfg.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(level)

	if a.cfg.GetInt(keyMaxAttempts) < 1 {
		return errors.Errorf("max attempts must be at least 1, got %d",
			a.cfg.GetInt(keyMaxAttempts))
	}

	return nil
}

// loadDotEnv loads .env from the working directory when there is one.
// Variables already in the environment win.
func loadDotEnv() error {
	_, err := os.Stat(".env")
	if os.IsNotExist(err) {
		return nil
	}

	return errors.Wrap(godotenv.Load(), "loading .env")
}
