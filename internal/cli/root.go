package cli

import (
	"fmt"
	"github.com/litetable/litetable-mrunit/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"time"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = "dev"

type options struct {
	v         *viper.Viper
	configDir string
	cfg       *config.Config
	logger    zerolog.Logger
}

// NewRootCmd builds the litetable-mrunit command tree. Reports go to the command's output,
// logs to its error stream.
func NewRootCmd() *cobra.Command {
	opts := &options{
		v: viper.New(),
	}

	root := &cobra.Command{
		Use:   "litetable-mrunit",
		Short: "Verify recorded job output against expected rows",
		Long: `litetable-mrunit checks the rows a batch job wrote against rows declared in a YAML
fixture and reports every missing, unexpected and mismatched row or column in one pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configDir, "config-dir", "", "directory holding litetable-mrunit.conf (default $LITETABLE_HOME or ~/.litetable)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", config.FormatConsole, "log format: console or json")
	_ = opts.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = opts.v.BindPFlag("log_format", flags.Lookup("log-format"))

	root.AddCommand(newVerifyCmd(opts), newVersionCmd())
	return root
}

// Execute runs the command tree against os.Args and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if err != errDiscrepancies {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func (o *options) load(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if o.configDir != "" {
		cfg, err = config.Load(o.v, o.configDir)
	} else {
		cfg, err = config.NewConfig(o.v)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	o.cfg = cfg
	o.logger = newLogger(cfg, logOut)
	return nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	if cfg.LogFormat == config.FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// the version needs no config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "litetable-mrunit %s\n", Version)
			return err
		},
	}
}
