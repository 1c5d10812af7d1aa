package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quotebook-backend/internal/client"
	"quotebook-backend/internal/domains/sentence/model"
)

const defaultServer = "http://localhost:8080"

// RootOptions holds global flags for all commands
type RootOptions struct {
	Server string
}

// NewRootCommand creates the quotes CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "quotes",
		Short:        "Manage the English/Chinese quote board",
		SilenceUsage: true,
	}

	server := os.Getenv("QUOTES_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.Server, "server", server, "API base URL (env QUOTES_SERVER)")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newEditCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))

	return cmd
}

// loadBoard fetches the current list so every command starts from the server's view
func loadBoard(ctx context.Context, opts *RootOptions) (*client.Board, error) {
	board := client.NewBoard(client.New(opts.Server))
	if err := board.Refresh(ctx); err != nil {
		return nil, err
	}
	return board, nil
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all quotes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board.Items())
			return nil
		},
	}
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	var english, chinese string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if _, err := board.Add(cmd.Context(), english, chinese); err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&english, "en", "", "English sentence")
	cmd.Flags().StringVar(&chinese, "zh", "", "Chinese translation")
	_ = cmd.MarkFlagRequired("en")
	_ = cmd.MarkFlagRequired("zh")

	return cmd
}

func newEditCommand(opts *RootOptions) *cobra.Command {
	var english, chinese string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the English and/or Chinese text of a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var en, zh *string
			if cmd.Flags().Changed("en") {
				en = &english
			}
			if cmd.Flags().Changed("zh") {
				zh = &chinese
			}
			if en == nil && zh == nil {
				return fmt.Errorf("nothing to change: pass --en and/or --zh")
			}

			board, err := loadBoard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			updated, err := board.Edit(cmd.Context(), args[0], en, zh)
			if err != nil {
				return err
			}
			if updated == nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "quote %s no longer exists\n", args[0])
			}
			printBoard(cmd.OutOrStdout(), board.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&english, "en", "", "new English sentence")
	cmd.Flags().StringVar(&chinese, "zh", "", "new Chinese translation")

	return cmd
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a quote",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := board.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board.Items())
			return nil
		},
	}
}

func printBoard(w io.Writer, items []model.Sentence) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no quotes yet)")
		return
	}
	for _, s := range items {
		fmt.Fprintf(w, "★ %s\n  %s\n  [%s]\n", s.English, s.Chinese, s.ID)
	}
}
