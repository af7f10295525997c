package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/conlog/config"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/event"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler/consolehandler"
	"github.com/philipp01105/conlog/logger"
)

// logFlags holds the flags of the root command
type logFlags struct {
	level       string
	system      string
	configFile  string
	envFiles    []string
	ignoreEnv   bool
	showTime    string
	at          string
	noTemplates bool
	noColor     bool
	zap         bool
}

// bindLogFlags registers the root command's flags on fs
func bindLogFlags(fs *pflag.FlagSet, f *logFlags) {
	fs.StringVarP(&f.level, "level", "l", "INFO", "log level: DEBUG, INFO, WARN or ERROR")
	fs.StringVarP(&f.system, "system", "s", "", "system tag shown after the level")
	fs.StringVarP(&f.configFile, "config", "c", "", "TOML configuration file")
	fs.StringSliceVar(&f.envFiles, "env-file", nil, "dotenv file with CONLOG_* variables (repeatable)")
	fs.BoolVar(&f.ignoreEnv, "ignore-env", false, "ignore CONLOG_* variables of the process environment")
	fs.StringVar(&f.showTime, "show-time", "", `timestamp mode: true, false, "literal:TEXT" or locale params such as "ISO"`)
	fs.StringVar(&f.at, "time", "", "RFC 3339 time to log instead of now")
	fs.BoolVar(&f.noTemplates, "no-templates", false, "do not expand %{NAME} style placeholders")
	fs.BoolVar(&f.noColor, "no-color", false, "write lines without escape codes")
	fs.BoolVar(&f.zap, "zap", false, "forward the notification to a JSON zap logger on stderr")
}

func newRootCmd() *cobra.Command {
	var flags logFlags

	cmd := &cobra.Command{
		Use:   "conlog [flags] MESSAGE...",
		Short: "Write one styled log line",
		Long: `conlog writes MESSAGE as one styled console line and raises the
matching level notification.

Configuration is read from the --config TOML file, then overlaid with the
CONLOG_* variables of the environment and the --env-file files, then with
the command line flags.

Examples:
  # Warn with a system tag
  conlog -l warn -s db "connection pool exhausted"

  # ISO timestamps and inline styles
  conlog --show-time ISO "build %{GREEN}passed"

  # List the style names
  conlog styles`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, &flags, strings.Join(args, " "))
		},
	}

	bindLogFlags(cmd.Flags(), &flags)
	cmd.AddCommand(newStylesCmd())
	return cmd
}

func runLog(cmd *cobra.Command, flags *logFlags, message string) error {
	level, ok := core.ParseLevel(flags.level)
	if !ok {
		return fmt.Errorf("unknown level %q", flags.level)
	}

	cfg, err := config.Load(config.Options{
		File:      flags.configFile,
		EnvFiles:  flags.envFiles,
		IgnoreEnv: flags.ignoreEnv,
	})
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("show-time") {
		cfg.ShowTime = config.ParseShowTime(flags.showTime)
	}
	if flags.noTemplates {
		cfg.TemplateLiteralFormats = logger.Bool(false)
	}

	opts := []logger.CallOption{logger.WithLevel(level), logger.WithSystem(flags.system)}
	if flags.at != "" {
		at, err := time.Parse(time.RFC3339, flags.at)
		if err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
		opts = append(opts, logger.WithTime(at))
	}

	ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    cmd.OutOrStdout(),
		Formatter: formatter.NewStyledFormatter(formatter.Config{NoColor: flags.noColor}),
	})
	l := logger.NewBuilder().WithHandler(ch).WithConfig(cfg).Build()
	defer l.Close()

	if flags.zap {
		zl := zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cmd.ErrOrStderr()),
			zapcore.DebugLevel,
		))
		defer func() { _ = zl.Sync() }()
		event.ForwardToZap(l.Events(), zl)
	}

	l.Log(message, opts...)

	if ch.Stats().FailedTotal > 0 {
		return fmt.Errorf("writing the log line failed")
	}
	return nil
}
