package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/compoundword/internal/analysis"
	configcmd "github.com/Iron-Ham/compoundword/internal/cmd/config"
	"github.com/Iron-Ham/compoundword/internal/config"
	"github.com/Iron-Ham/compoundword/internal/errors"
	"github.com/Iron-Ham/compoundword/internal/logging"
	"github.com/Iron-Ham/compoundword/internal/report"
	"github.com/Iron-Ham/compoundword/internal/resolver"
)

const longHelp = `Finds the longest word in a word list that is a concatenation of other
words from the same list, and the sub-words it is made of.

<input>   File containing the words, one per line. Only ASCII letters are
          kept: other bytes are dropped and upper case is folded.
<output>  Optional output file where the program saves the list of all words
          which are concatenations of other sub-words that exist in the
          input file.

Settings are read from $XDG_CONFIG_HOME/compoundword/config.yaml (or
$HOME/.config/compoundword/config.yaml, or ./config.yaml) and from
COMPOUNDWORD_* environment variables, e.g. COMPOUNDWORD_RESOLVER_WORKERS.`

// NewRootCmd builds the compoundword command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "compoundword <input> [<output>]",
		Short: "Find the longest compound word in a word list",
		Long:  longHelp,
		Args:  cobra.RangeArgs(1, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return nil
		},
		RunE: runCompoundWord,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/compoundword/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	flags := rootCmd.Flags()
	flags.Bool("json", false, "print the report as JSON")
	flags.IntP("workers", "w", 0, "words resolved in parallel (0 uses all CPUs)")
	flags.String("collect", string(resolver.DefaultCollectMode),
		fmt.Sprintf("sub-words to report: %s", strings.Join(resolver.ValidCollectModes(), ", ")))
	flags.String("color", "auto", "style the report: auto, always, never")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("resolver.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("resolver.collect_mode", flags.Lookup("collect"))
	_ = viper.BindPFlag("report.color", flags.Lookup("color"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))

	configcmd.Register(rootCmd)
	return rootCmd
}

// Execute runs the root command, canceling the run on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/compoundword")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(config.EnvPrefix)
	// e.g., COMPOUNDWORD_RESOLVER_COLLECT_MODE for resolver.collect_mode
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runCompoundWord(cmd *cobra.Command, args []string) error {
	// arguments are valid past this point; later failures are not usage errors
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		cfg.Report.Format = "json"
	}

	mode, err := resolver.ParseCollectMode(cfg.Resolver.CollectMode)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "failed to start logging")
	}
	defer logger.Close()

	input := args[0]
	res, err := analysis.Run(cmd.Context(), input, analysis.Config{
		Workers:      cfg.Resolver.EffectiveWorkers(),
		CollectMode:  mode,
		MaxLineBytes: cfg.Input.MaxLineBytes,
		Logger:       logger,
	})
	if err != nil {
		// only dictionary failures carry a message meant for the user
		if errors.IsUserFacing(err) {
			return errors.Wrapf(err, "can not load words from '%s'", input)
		}
		return errors.Wrap(err, "compound word search failed")
	}

	if len(args) == 2 {
		if err := report.WriteCompounds(args[1], res.Compounds); err != nil {
			if errors.IsFatal(err) {
				return err
			}
			// a missing output file is the only sign of this failure at
			// the default level
			logger.WithPhase("report").Info("compound words not saved",
				"path", args[1],
				"severity", errors.GetSeverity(err).String(),
				"error", err.Error())
		} else {
			logger.WithPhase("report").Info("compound words saved",
				"path", args[1],
				"count", len(res.Compounds))
		}
	}

	w := report.New(cmd.OutOrStdout(), report.Options{
		Format:   report.Format(cfg.Report.Format),
		Color:    report.ColorMode(cfg.Report.Color),
		MaxWidth: cfg.Report.MaxWidth,
	})
	return w.Write(res)
}

// newLogger builds the run's logger from the logging settings. An empty
// directory sends entries to stderr.
func newLogger(cfg *config.Config, stderr io.Writer) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	dir := cfg.Logging.ResolveDir()
	if dir == "" {
		return logging.NewWriterLogger(stderr, level), nil
	}
	return logging.NewLogger(dir, level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
}
