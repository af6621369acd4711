package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lepinkainen/verses/internal/config"
	verseserrors "github.com/lepinkainen/verses/internal/errors"
	"github.com/lepinkainen/verses/internal/session"
	"github.com/lepinkainen/verses/internal/tui"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	exit             = os.Exit

	openSession = session.Open
	runTUI      = tui.Run
	isTerminal  = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// CLI represents the complete command structure for the verses application
type CLI struct {
	// Global flags
	Config        string `help:"Path to a YAML config file (defaults to ./config.yaml when present)" type:"path"`
	Corpus        string `help:"Path to the plain-text corpus (default ./bible.txt)"`
	Abbreviations string `help:"Path to the abbreviation CSV table (default ./abbreviations.csv)"`
	Output        string `help:"File found verses are appended to (default ./verses.txt)"`
	AliasPsalm    bool   `help:"Treat \"psalm\" as \"psalms\" without relying on the abbreviation table"`
	WholeBookName bool   `help:"Match book names as whole words instead of by prefix"`
	Display       string `help:"How the book name is shown: input, canonical or upper"`
	Width         int    `help:"Column at which verse text is wrapped (default 80)"`
	SaveHistory   bool   `help:"Record saved verses in the SQLite history database"`
	HistoryDB     string `help:"Path to the history SQLite database (default ./history.db)"`
	Debug         bool   `help:"Enable debug logging"`

	Lookup      LookupCmd      `cmd:"" help:"Look up a single verse"`
	Interactive InteractiveCmd `cmd:"" default:"1" help:"Look up verses until you decline another"`
	Books       BooksCmd       `cmd:"" help:"List the books of the corpus"`
	History     HistoryCmd     `cmd:"" help:"Show recently saved verses"`
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("verses"),
		kong.Description("Look up verses in a plain-text Bible and keep a log of the ones you find."),
		kong.UsageOnError(),
	)

	initLogging(cli.Debug)

	if err := initConfig(cli.Config); err != nil {
		slog.Error("Fatal error config file", "error", err)
		exit(1)
		return
	}

	updateGlobalConfig(&cli)

	exit(exitCode(ctx.Run()))
}

// exitCode maps a command error to the process exit status. Not-found lookups have already
// been reported to the user, so they only set the status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case verseserrors.IsStopProcessingError(err):
		slog.Debug("Stopped by user", "error", err)
		return 0
	case verseserrors.IsNotFoundError(err):
		slog.Debug("Lookup failed", "error", err)
		return 1
	default:
		slog.Error("Command failed", "error", err)
		return 1
	}
}

func initConfig(configFile string) error {
	config.SetDefaults()

	// VERSES_CORPUS, VERSES_HISTORY_ENABLED, ...
	viper.SetEnvPrefix("verses")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	slog.Debug("Using config file", "file", viper.ConfigFileUsed())
	return nil
}

// updateGlobalConfig lets flags that were given override the config file and environment.
func updateGlobalConfig(cli *CLI) {
	setIf := func(key, value string) {
		if value != "" {
			viper.Set(key, value)
		}
	}

	setIf("corpus", cli.Corpus)
	setIf("abbreviations", cli.Abbreviations)
	setIf("output", cli.Output)
	setIf("display", cli.Display)
	setIf("history.dbfile", cli.HistoryDB)

	if cli.Width > 0 {
		viper.Set("width", cli.Width)
	}
	if cli.AliasPsalm {
		viper.Set("alias_psalm", true)
	}
	if cli.WholeBookName {
		viper.Set("whole_book_name", true)
	}
	if cli.SaveHistory {
		viper.Set("history.enabled", true)
	}
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Logs go to stderr so verse output on stdout stays clean
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

// withSession opens a session from the current configuration and closes it when fn returns.
func withSession(fn func(s *session.Session) error) (err error) {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	s, err := openSession(settings)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return fn(s)
}
