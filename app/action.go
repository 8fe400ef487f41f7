package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/exerun/exerun/internal/config"
	"github.com/exerun/exerun/internal/cue"
	"github.com/exerun/exerun/internal/logging"
	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/pathutil"
	"github.com/exerun/exerun/internal/timeutil"
	"github.com/exerun/exerun/internal/ui"
	"github.com/exerun/exerun/stats"
	"github.com/exerun/exerun/store"
	"github.com/exerun/exerun/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envExerunNoColor = "EXERUN_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration from the config file, the command
// line and the setup form, then routes logging to the log file and, unless
// the terminal belongs to the TUI, to stderr.
func loadConfig(ctx *cli.Context, isTUI bool) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
		config.WithPromptConfig(ctx.Bool("setup")),
	)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.Setup(pathutil.LogFilePath(), cfg.Log.Level, isTUI)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// openStore opens the workout history, failing when another workout holds
// it.
func openStore() (*store.Client, error) {
	return store.NewClient(pathutil.DBFilePath())
}

func filterFrom(cfg *config.Config) store.Filter {
	return store.Filter{
		Since: cfg.CLI.Since,
		Until: cfg.CLI.Until,
		Kinds: cfg.CLI.Kinds,
	}
}

// intervalAction runs a quick interval workout, in the TUI or headless.
func intervalAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, !ctx.Bool("headless"))
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	player := newPlayer(cfg)

	var w *models.Workout

	if cfg.CLI.Headless {
		w, err = runHeadless(ctx.Context, cfg, player, os.Stdout)
	} else {
		w, err = runTUI(cfg, player)
	}

	if err != nil {
		return err
	}

	return finishWorkout(db, cfg, w)
}

// runAction runs a free run stopwatch.
func runAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	w, err := runFree(cfg)
	if err != nil {
		return err
	}

	return finishWorkout(db, cfg, w)
}

// workoutsAction prints the workout catalog.
func workoutsAction(_ *cli.Context) error {
	printCatalog(os.Stdout)

	return nil
}

// historyAction prints the workouts finished within a time period.
func historyAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	workouts, err := db.Workouts(filterFrom(cfg))
	if err != nil {
		return err
	}

	if cfg.CLI.JSON {
		b, err := json.Marshal(workouts)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	listWorkouts(os.Stdout, workouts)

	return nil
}

// statsAction prints the statistics of a reporting period, the last 7
// days by default.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	now := time.Now()

	f := filterFrom(cfg)
	if f.Since.IsZero() {
		f.Since = timeutil.RoundToStart(now.AddDate(0, 0, -6))
	}

	workouts, err := db.Workouts(f)
	if err != nil {
		return err
	}

	stats.Show(os.Stdout, stats.Compute(workouts, f.Since, f.Until, now))

	return nil
}

// deleteAction deletes the workouts finished within a time period after
// confirmation.
func deleteAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	workouts, err := db.Workouts(filterFrom(cfg))
	if err != nil {
		return err
	}

	return delWorkouts(db, os.Stdin, os.Stdout, workouts)
}

// statusAction prints the status of the running workout, if any.
func statusAction(_ *cli.Context) error {
	db, err := openStore()
	if err == nil {
		// nothing holds the database, so no workout is running
		return db.Close()
	}

	if !errors.Is(err, store.ErrAlreadyRunning) {
		return err
	}

	st, err := timer.ReadStatus(pathutil.StatusFilePath())
	if err != nil || st == nil {
		return err
	}

	if line := st.Line(time.Now()); line != "" {
		pterm.Println(line)
	}

	return nil
}

// soundsAction lists the built-in tones and the sound files found in the
// sound directory.
func soundsAction(_ *cli.Context) error {
	custom, err := cue.Custom(pathutil.SoundDir())
	if err != nil {
		return err
	}

	printSounds(os.Stdout, cue.BuiltIn(), custom, pathutil.SoundDir())

	return nil
}

// editConfigAction opens the config file in the user's default text
// editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	configPath := pathutil.ConfigFilePath()

	// make sure the file exists with its defaults
	if _, err := config.New(config.WithViperConfig(configPath)); err != nil {
		return err
	}

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "WARNING",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if EXERUN_NO_COLOR is set
	if _, exists := os.LookupEnv(envExerunNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("initializing paths: %w", err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting exerun")

	return logging.Close()
}
