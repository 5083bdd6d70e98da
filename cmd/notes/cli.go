package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"localnotes/internal/notes/adapters/persistence"
	"localnotes/internal/notes/adapters/slots"
	"localnotes/internal/notes/app"
	"localnotes/internal/notes/config"
	"localnotes/internal/notes/ports/storage"
	"localnotes/pkg/logger"
)

// Константы для сообщений приложения.
const (
	LogAppStarted   = "notes application started"
	LogClosingSlots = "closing slot store"

	ErrLoadConfig     = "failed to load configuration"
	ErrConfigureLog   = "failed to initialize logger with configuration settings"
	ErrInvalidLocale  = "invalid sort locale"
	ErrOpenStorage    = "failed to open storage"
	ErrCloseSlotStore = "failed to close slot store"
)

// cli держит зависимости, собранные перед выполнением команды.
type cli struct {
	envFile string

	cfg   *config.Config
	log   *logger.Logger
	slots storage.SlotStore
	store *app.NoteStore
}

func newCLI() *cli {
	return &cli{envFile: config.DefaultEnvFile}
}

func (c *cli) logger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Log(context.Background())
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "notes",
		Short:         "Keep short notes with a title and text",
		Long:          "notes keeps an ordered list of notes, persisted as one JSON list in the configured storage slot.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.teardown(cmd.Context())
		},
		RunE: c.runTUI,
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", config.DefaultEnvFile, "dotenv file with NOTES_* settings (optional)")

	root.AddCommand(
		c.tuiCommand(),
		c.serveCommand(),
		c.listCommand(),
		c.addCommand(),
		c.editCommand(),
		c.deleteCommand(),
		c.sortCommand(),
	)
	return root
}

// setup loads configuration, replaces the bootstrap logger and opens the note store.
func (c *cli) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, c.envFile)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrLoadConfig, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}
	c.cfg = cfg

	log, err := c.buildLogger(cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrConfigureLog, err)
	}
	c.log = log
	logger.SetGlobalLogger(log)
	ctx = logger.NewContext(ctx, log)
	cmd.SetContext(ctx)

	log.Debug(ctx, LogAppStarted,
		zap.String("command", cmd.Name()),
		zap.String("storage_backend", cfg.Storage.Backend))

	locale, err := language.Parse(cfg.Sort.Locale)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrInvalidLocale, cfg.Sort.Locale, err)
	}

	slotStore, err := slots.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrOpenStorage, err)
	}
	c.slots = slotStore

	c.store = app.NewNoteStore(
		persistence.NewJSONStorage(slotStore, cfg.Storage.Key),
		app.WithLocale(locale),
	)
	c.store.Load(ctx)
	return nil
}

// buildLogger: the terminal UI owns the screen, so terminal log output is discarded there.
func (c *cli) buildLogger(cmd *cobra.Command) (*logger.Logger, error) {
	if isTUI(cmd) && c.cfg.Logging.WritesToTerminal() {
		return logger.NewNop(), nil
	}
	output := c.cfg.Logging.Output
	if output == "" {
		output = "stderr"
	}
	return logger.NewLoggerWithOutput(c.cfg.Logging.GetEnvironment(), c.cfg.Logging.Level, output)
}

func (c *cli) teardown(ctx context.Context) error {
	if c.slots == nil {
		return nil
	}
	logger.Log(ctx).Debug(ctx, LogClosingSlots)
	if err := c.slots.Close(); err != nil {
		logger.Log(ctx).Warn(ctx, ErrCloseSlotStore, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCloseSlotStore, err)
	}
	c.slots = nil
	return nil
}

func isTUI(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || !cmd.HasParent()
}
