package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/idilsaglam/dailytodo/internal/board"
	"github.com/idilsaglam/dailytodo/internal/config"
	"github.com/idilsaglam/dailytodo/internal/logging"
	"github.com/idilsaglam/dailytodo/internal/model"
	"github.com/idilsaglam/dailytodo/internal/platform"
	"github.com/idilsaglam/dailytodo/internal/store/jsonstore"
	"github.com/idilsaglam/dailytodo/internal/tui"
	"github.com/idilsaglam/dailytodo/internal/ui"
)

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "DAILYTODO_CONFIG"

// Options carry the root flags. Empty strings keep the config value.
type Options struct {
	ConfigPath string
	SeedPath   string
	Theme      string
	LogLevel   string
	NoColor    bool

	Stdout io.Writer
	Stderr io.Writer
}

type program interface {
	Run() (tea.Model, error)
}

var programFactory = func(ctx context.Context, m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
}

// env is everything a subcommand needs once startup succeeded.
type env struct {
	paths      platform.Paths
	configPath string
	cfg        config.Config
	theme      ui.Theme
	log        *logging.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.NoColor {
		ui.SetColorForcing(false, true)
	}
	fallback, _ := ui.ThemeByName("")

	cmd, rest := "board", []string(nil)
	if len(args) > 0 {
		cmd, rest = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "board", "ls", "tags", "paths":
		if len(rest) != 0 {
			fallback.Fail(opt.Stderr, fmt.Sprintf("usage: dailytodo %s", cmd))
			return 2
		}
	case "config":
		if len(rest) != 1 || rest[0] != "init" {
			fallback.Fail(opt.Stderr, "usage: dailytodo config init")
			return 2
		}
	default:
		fallback.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}

	e, err := setup(opt)
	if err != nil {
		fallback.Fail(opt.Stderr, err.Error())
		return 1
	}
	defer e.log.Close()

	switch cmd {
	case "board":
		err = runBoard(ctx, e)
	case "ls":
		err = runList(e)
	case "tags":
		err = runTags(e)
	case "paths":
		runPaths(e)
	case "config":
		err = runConfigInit(e)
	}
	if err != nil {
		e.log.Error("command failed", "command", cmd, "err", err)
		e.theme.Fail(opt.Stderr, err.Error())
		return 1
	}
	return 0
}

// setup resolves paths, loads config, applies flag overrides and opens
// the logger.
func setup(opt Options) (env, error) {
	paths, err := platform.DefaultPaths(platform.AppName)
	if err != nil {
		return env{}, fmt.Errorf("resolve paths: %w", err)
	}
	configPath := paths.ConfigPath
	if v := strings.TrimSpace(os.Getenv(ConfigEnv)); v != "" {
		configPath = v
	}
	if v := strings.TrimSpace(opt.ConfigPath); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath, config.Default(paths.SeedPath))
	if err != nil {
		return env{}, fmt.Errorf("load config %s: %w", configPath, err)
	}
	if opt.SeedPath != "" {
		cfg.Data.SeedPath = opt.SeedPath
	}
	if opt.Theme != "" {
		cfg.UI.Theme = opt.Theme
	}
	if opt.LogLevel != "" {
		cfg.Logging.Level = opt.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return env{}, err
	}

	theme, err := ui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return env{}, err
	}
	logger, err := logging.New(logging.Options{
		Console: opt.Stderr,
		Prefix:  platform.AppName,
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
	})
	if err != nil {
		return env{}, fmt.Errorf("open logger: %w", err)
	}
	logger = logger.With("session", uuid.NewString())
	logger.Debug("config loaded", "config_path", configPath, "seed_path", cfg.Data.SeedPath, "theme", theme.Name)

	return env{
		paths:      paths,
		configPath: configPath,
		cfg:        cfg,
		theme:      theme,
		log:        logger,
		stdout:     opt.Stdout,
		stderr:     opt.Stderr,
	}, nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `dailytodo - a drag-and-drop card board for the terminal

Usage:
  dailytodo [flags] [subcommand]

Subcommands:
  board          Open the board (default)
  ls             Print the seeded cards
  tags           Print tag usage across the seeded cards
  paths          Print resolved file locations
  config init    Write a default config file

Flags:
  -config <path>     Config file (or $%s)
  -seed <path>       JSON seed with cards and tags
  -theme <name>      %s
  -log-level <lvl>   debug | info | warn | error
  -no-color          Disable colors

Board keys:
  a add   d grab   enter drop   y copy   ? help   q quit
  Drag a card with the mouse onto the bin to delete it.
`, ConfigEnv, strings.Join(ui.ThemeNames, " | "))
}

// -------------- subcommand impls ----------------

func runBoard(ctx context.Context, e env) error {
	seed, err := jsonstore.Load(e.cfg.Data.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	ids, err := board.NewIDGenerator(e.cfg.Board.IDStrategy, seed.Items)
	if err != nil {
		return err
	}
	session := board.NewSession(seed.Items, seed.Tags, board.Options{
		IDs:                ids,
		ClearDraftOnCancel: e.cfg.Form.ClearDraftOnCancel,
		Logger:             e.log,
	})
	m := tui.NewModel(session,
		tui.WithTheme(e.theme),
		tui.WithLogger(e.log),
		tui.WithScrollDelay(e.cfg.ScrollDelay()),
	)

	e.log.Info("starting tui program loop", "cards", session.Len())
	e.log.SetConsoleEnabled(false)
	_, err = programFactory(ctx, m).Run()
	e.log.SetConsoleEnabled(true)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui program: %w", err)
	}
	e.log.Info("board closed", "cards", session.Len())
	return nil
}

func runList(e env) error {
	seed, err := jsonstore.Load(e.cfg.Data.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	t := e.theme
	lines := []string{
		fmt.Sprintf("%s  %s", t.Title.Render("Daily Todo"), t.Muted.Render(fmt.Sprintf("%d cards", len(seed.Items)))),
		"",
	}
	lines = append(lines, cardLines(t, seed.Items)...)
	fmt.Fprintln(e.stdout, t.Frame(lines))
	return nil
}

func runTags(e env) error {
	seed, err := jsonstore.Load(e.cfg.Data.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	t := e.theme
	width := 0
	for _, tag := range seed.Tags {
		width = max(width, lipgloss.Width(tag))
	}
	lines := []string{t.Title.Render("Tags"), ""}
	if len(seed.Tags) == 0 {
		lines = append(lines, t.Muted.Render("no tags"))
	}
	for _, tag := range seed.Tags {
		n := countTagged(seed.Items, tag)
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			padCells(tag, width),
			t.Accent.Render(t.ProgressBar(n, len(seed.Items), 20)),
			t.Muted.Render(fmt.Sprintf("%d/%d", n, len(seed.Items)))))
	}
	fmt.Fprintln(e.stdout, t.Frame(lines))
	return nil
}

func runPaths(e env) {
	seed := e.cfg.Data.SeedPath
	if seed == "" {
		seed = "(built-in cards)"
	}
	logPath := e.log.FilePath()
	if logPath == "" {
		logPath = fmt.Sprintf("(disabled, set logging.file, e.g. %s)", e.paths.LogPath)
	}
	fmt.Fprintf(e.stdout, "config: %s\ndata:   %s\nseed:   %s\nlog:    %s\n", e.configPath, e.paths.DataDir, seed, logPath)
}

func runConfigInit(e env) error {
	if _, err := os.Stat(e.configPath); err == nil {
		return fmt.Errorf("config already exists: %s", e.configPath)
	}
	if err := config.Write(e.configPath, config.Default(e.paths.SeedPath)); err != nil {
		return err
	}
	e.log.Info("config written", "config_path", e.configPath)
	e.theme.OK(e.stdout, "wrote "+e.configPath)
	return nil
}

// -------------- rendering helpers --------------

func cardLines(t ui.Theme, items []model.Item) []string {
	if len(items) == 0 {
		return []string{t.Muted.Render("no cards")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		title := truncateCells(it.Title, 60)
		line := fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.CardTitle.Render(title))
		if len(it.Tags) > 0 {
			line += "  " + t.Tag.Render("#"+strings.Join(it.Tags, " #"))
		}
		out = append(out, line)
	}
	return out
}

// truncateCells cuts s to at most limit terminal cells, marking the cut
// with "...".
func truncateCells(s string, limit int) string {
	if lipgloss.Width(s) <= limit {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(limit-3).Render(s) + "..."
}

// padCells right-pads s with spaces to width terminal cells.
func padCells(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

func countTagged(items []model.Item, tag string) int {
	n := 0
	for _, it := range items {
		if slices.Contains(it.Tags, tag) {
			n++
		}
	}
	return n
}
