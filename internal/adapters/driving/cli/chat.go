package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driven/watch"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
)

var (
	chatPersonality string
	chatWatchDir    string
)

var chatCmd = &cobra.Command{
	Use:   "chat [pdf files...]",
	Short: "Start an interactive chat session",
	Long: `Opens the interactive terminal interface. Any PDF files given as
arguments are loaded before the first question.

With --watch, new PDFs dropped into the directory are picked up
automatically while the session runs.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatPersonality, "personality", "p", "",
		"answer tone: neutral, formal, casual or technical")
	chatCmd.Flags().StringVar(&chatWatchDir, "watch", "",
		"directory to watch for new PDF uploads")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if ingestService == nil || queryService == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()
	if llmService != nil {
		if err := llmService.Ping(ctx); err != nil {
			return fmt.Errorf("model backend not reachable: %w", err)
		}
	}

	session := newSession()
	if chatPersonality != "" {
		session.SetPersonality(domain.Personality(chatPersonality))
	}

	if chatWatchDir == "" && configStore != nil {
		chatWatchDir = configStore.GetString(driven.ConfigWatchDir)
	}

	ports := &tui.Ports{
		Ingest: ingestService,
		Query:  queryService,
		Search: searchService,
		Table:  tableService,
		Export: exportService,
	}

	if chatWatchDir != "" {
		watcher, err := watch.New()
		if err != nil {
			return fmt.Errorf("starting upload watcher: %w", err)
		}
		defer watcher.Close()
		ports.Watcher = watcher
	}

	app, err := tui.NewApp(ports, session)
	if err != nil {
		return err
	}
	app.WithContext(ctx).WithInitialFiles(args).WithWatchDir(chatWatchDir)

	return app.Run()
}
