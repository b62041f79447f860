package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhouzirui/z-chat/backend/internal/client"
	"github.com/zhouzirui/z-chat/backend/internal/config"
	"github.com/zhouzirui/z-chat/backend/internal/ui/chatwidget"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadWidget()
	if err != nil {
		log.Fatalf("failed to load widget configuration: %v", err)
	}

	logFile, err := tea.LogToFile(cfg.Chat.LogFile, "zchat")
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()

	backend := client.New(cfg.Server.URL, nil)

	models := cfg.Chat.Models
	if len(models) == 0 {
		models = fetchModels(ctx, backend)
	}

	widget := chatwidget.New(backend, log.Printf)
	program := tea.NewProgram(chatwidget.NewModel(ctx, widget, models, cfg.Chat.DefaultModel), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		log.Printf("widget exited with error: %v", err)
		os.Exit(1)
	}
}

// fetchModels asks the backend for its model list, falling back to the
// default model when the backend is unreachable.
func fetchModels(ctx context.Context, backend *client.Client) []string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	infos, err := backend.Models(ctx)
	if err != nil {
		log.Printf("[widget] failed to fetch models: %v", err)
		return nil
	}

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	return ids
}
