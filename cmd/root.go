package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gesturebackup/internal/backup"
	"gesturebackup/internal/config"
	"gesturebackup/internal/drives"
	"gesturebackup/internal/logging"
	"gesturebackup/internal/notify"
	"gesturebackup/internal/retry"
	"gesturebackup/internal/version"
)

var (
	cfgFile   string
	logFile   string
	logFormat string
	verbose   bool
	quiet     bool
	debug     bool
	noLogFile bool
)

// v holds every setting: defaults, GESTUREBACKUP_* env, the config file
// and bound flags.
var v = config.NewViper()

// rootCmd watches for gestures when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   version.AppName,
	Short: version.AppDesc,
	Long: `gesturebackup watches the mouse pointer for a secret two-stage gesture.

Drawing a loop along the screen edges arms it; drawing a horizontal strip
through the middle of the screen then copies the configured source folder to
the first removable, writable volume with enough free space. Nothing is shown
on screen unless --verbose is given.

Pointer positions are read as "x y" lines from --input (stdin by default),
typically fed by a desktop hook.

Examples:
  # Configure the source folder and extension filter
  gesturebackup settings

  # Watch pointer positions written to a FIFO
  gesturebackup watch --input /run/user/1000/pointer.fifo

  # Back up right now without a gesture
  gesturebackup run --verbose`,
	SilenceUsage: true,
	RunE:         runWatch,
}

// Execute runs the command tree. Called by main.main().
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gesturebackup/config.json)")
	pf.StringVar(&logFile, "log-file", "", "log file (default is $HOME/.cache/gesturebackup/gesturebackup.log)")
	pf.BoolVar(&noLogFile, "no-log-file", false, "do not write a log file")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "also log and show events on the terminal")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&debug, "debug", false, "log everything")

	pf.Duration("retry-interval", retry.DefaultInterval, "wait between searches for a removable volume")
	pf.Int("retry-max-attempts", 0, "give up after this many volume searches (0 waits forever)")
	pf.String("notify-command", "", "command run with the event name as its last argument")

	cobra.CheckErr(v.BindPFlag(config.KeyRetryInterval, pf.Lookup("retry-interval")))
	cobra.CheckErr(v.BindPFlag(config.KeyRetryMaxAttempts, pf.Lookup("retry-max-attempts")))
	cobra.CheckErr(v.BindPFlag(config.KeyNotifyCommand, pf.Lookup("notify-command")))

	rootCmd.AddCommand(watchCmd, runCmd, settingsCmd, volumesCmd, versionCmd)
	addWatchFlags(rootCmd)
}

func initConfig() {
	if quiet && (verbose || debug) {
		cobra.CheckErr(errors.New("--quiet cannot be combined with --verbose or --debug"))
	}
	if cfgFile == "" {
		path, err := config.DefaultPath()
		cobra.CheckErr(err)
		cfgFile = path
	}
}

// env bundles what every command needs.
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *logging.Logger
	log     logrus.FieldLogger
}

// setup loads the configuration and opens the logger. With requireSource
// a missing source directory is fatal.
func setup(requireSource bool) (*env, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil && (requireSource || !errors.Is(err, config.ErrNoSource)) {
		if errors.Is(err, config.ErrNoSource) {
			return nil, fmt.Errorf("%w: run '%s settings' first", err, version.AppName)
		}
		return nil, err
	}

	logCfg := logging.Config{
		Level:  logging.LevelFromFlags(quiet, verbose, debug),
		Format: logFormat,
	}
	if verbose || debug {
		logCfg.Output = os.Stderr
	}
	if !noLogFile {
		logCfg.LogFile = logFile
		if logCfg.LogFile == "" {
			logCfg.LogFile = logging.DefaultLogFile()
		}
	}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		cfgPath: cfgFile,
		logger:  logger,
		log:     logger.FieldLogger(),
	}, nil
}

func (e *env) close() {
	e.logger.Close()
}

// notifier fans events out to the log, the optional hook command and, with
// --verbose on a terminal, the console.
func (e *env) notifier() notify.Notifier {
	n := notify.Multi{notify.LogNotifier{Log: e.log}}
	if fields := strings.Fields(e.cfg.NotifyCommand); len(fields) > 0 {
		n = append(n, notify.NewCommandNotifier(fields[0], fields[1:], e.log))
	}
	if verbose && isatty.IsTerminal(os.Stderr.Fd()) {
		n = append(n, notify.NewConsoleNotifier(os.Stderr))
	}
	return n
}

func (e *env) engine(n notify.Notifier) *backup.Engine {
	return backup.NewEngine(
		drives.NewLocator(e.log),
		backup.WithPolicy(e.cfg.Policy()),
		backup.WithNotifier(n),
		backup.WithLogger(e.log),
	)
}

// bindFlag attaches a command flag to a viper key.
func bindFlag(vp *viper.Viper, key string, cmd *cobra.Command, name string) {
	cobra.CheckErr(vp.BindPFlag(key, cmd.Flags().Lookup(name)))
}
