package main

import (
	"io"
	"os"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "everyday",
		Short: "Keep a list of everyday tasks",
		Long: `An interactive menu to add, list, complete, edit, delete, search and count tasks.
The list is read from the task file at startup and written back on save and on exit.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			closeLog := mustSetupLogging(cfg)
			defer closeLog()
			log.WithField("path", cfg.File).Info("Starting session")
			return newShell(cfg, newConsole(in, out), log.NewEntry(log.StandardLogger())).run()
		},
	}
	cmd.SetOut(out)
	flags := cmd.Flags()
	flags.StringP("file", "f", defaultTaskFile, "task file")
	flags.String("config", "", "TOML configuration file (default "+defaultConfigFile+" if present)")
	flags.String("log-level", defaultLogLevel, "one of panic, fatal, error, warning, info, debug, trace")
	flags.String("log-file", "", "append logs to this file instead of standard error")
	flags.Bool("basic", false, "offer the basic menu only (no search, filter, statistics)")
	return cmd
}

// sessionHook tags every log entry with the session it belongs to, which helps when many runs append to the same
// log file.
type sessionHook struct {
	id string
}

func (h sessionHook) Levels() []log.Level {
	return log.AllLevels
}

func (h sessionHook) Fire(entry *log.Entry) error {
	entry.Data["session"] = h.id
	return nil
}

// mustSetupLogging configures the standard logger and returns a function to release the log file, if any.
func mustSetupLogging(cfg *config) func() {
	log.SetLevel(cfg.level)
	if u, err := uuid.NewV4(); err == nil {
		log.AddHook(sessionHook{id: u.String()})
	}
	if cfg.LogFile == "" {
		return func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  cfg.LogFile,
			"cause": err,
		}).Fatal("Could not open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithField("cause", err).Warning("Could not close log file")
		}
	}
}
