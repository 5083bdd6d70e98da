package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	notesHTTP "localnotes/internal/notes/adapters/http"
	"localnotes/internal/notes/adapters/tui"
	"localnotes/internal/notes/domain/entities"
	"localnotes/pkg/logger"
	"localnotes/pkg/shutdown"
)

// Константы для сообщений сервиса.
const (
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogServiceShutdownDone = "notes server shutdown complete"

	ErrStartHTTPServer = "failed to start HTTP server"
)

func (c *cli) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	return tui.Run(cmd.Context(), c.store)
}

func (c *cli) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the notes over an HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.Log(ctx)

			server := fiber.New(fiber.Config{
				ReadTimeout:  c.cfg.HTTP.ReadTimeout,
				WriteTimeout: c.cfg.HTTP.WriteTimeout,
			})
			notesHTTP.SetupRouter(server, c.store, c.log)

			address := c.cfg.HTTP.GetAddress()
			log.Info(ctx, LogStartingHTTP, zap.String("address", address))

			listenErr := make(chan error, 1)
			go func() {
				listenErr <- server.Listen(address, fiber.ListenConfig{DisableStartupMessage: true})
			}()

			waitCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			served := make(chan error, 1)
			go func() {
				err := <-listenErr
				if err != nil {
					log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				}
				served <- err
				cancel()
			}()

			shutdown.Wait(waitCtx, c.cfg.Shutdown.GetTimeout(),
				func(ctx context.Context) error {
					log.Info(ctx, LogStoppingHTTP)
					return server.ShutdownWithContext(ctx)
				},
			)
			log.Info(ctx, LogServiceShutdownDone)

			select {
			case err := <-served:
				if err != nil {
					return fmt.Errorf("%s: %w", ErrStartHTTPServer, err)
				}
			case <-time.After(c.cfg.Shutdown.GetTimeout()):
			}
			return nil
		},
	}
}

func (c *cli) listCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the notes in their current order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printNotes(cmd.OutOrStdout(), c.store.List(cmd.Context()), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	return cmd
}

func (c *cli) addCommand() *cobra.Command {
	var title, text string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note to the top of the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := c.store.Add(cmd.Context(), title, text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), notes[0].ID)
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&text, "text", "", "note text")
	return cmd
}

func (c *cli) editCommand() *cobra.Command {
	var title, text string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title and/or text of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := c.store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("text") {
				text = current.Text
			}
			_, err = c.store.Edit(ctx, args[0], title, text)
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title (unchanged when omitted)")
	cmd.Flags().StringVar(&text, "text", "", "new text (unchanged when omitted)")
	return cmd
}

func (c *cli) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.store.Delete(cmd.Context(), args[0])
			return err
		},
	}
}

func (c *cli) sortCommand() *cobra.Command {
	validArgs := make([]string, len(entities.SortCriteria))
	for i, criterion := range entities.SortCriteria {
		validArgs[i] = string(criterion)
	}

	return &cobra.Command{
		Use:       "sort <title|createDate|editDate>",
		Short:     "Reorder the list and keep the new order",
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.store.Sort(cmd.Context(), entities.SortCriterion(args[0]))
			return err
		},
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func printNotes(w io.Writer, notes []entities.Note, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "no notes")
		return err
	}

	t := table.New().
		Headers("ID", "TITLE", "TEXT", "CREATED", "EDITED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, n := range notes {
		t.Row(n.ID, n.Title, n.Text, n.CreateDate, n.EditDate)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
