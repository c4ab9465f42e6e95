package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bankiru/PHP-CS-Fixer/internal/driver"
	"github.com/bankiru/PHP-CS-Fixer/internal/ui"
)

type fixOutcome struct {
	batch *driver.Batch
	err   error
}

func runFixWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.Batch, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		batch, err := driver.FixFiles(ctx, files, optsCopy)
		outcomeCh <- fixOutcome{batch: batch, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем канал, иначе воркеры заблокируются на отправке
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.batch, uiErr
	}
	return outcome.batch, outcome.err
}
