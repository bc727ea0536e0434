// Package ui implements a command-line progress interface for copies using
// [tea].
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fontscan/internal/schema"
)

// Handler is the principal implementation of a user interface [Handler]. It
// observes a copy and forwards its progress to the [tea.Program].
type Handler struct {
	program *tea.Program
	sender  teaProgramProvider

	LogWriter *TeaLogWriter
}

// NewHandler returns a pointer to a new user interface [Handler]. The cancel
// function is called when the user requests termination of the program.
func NewHandler(ctx context.Context, cancel context.CancelFunc, title string, opts ...tea.ProgramOption) *Handler {
	handler := &Handler{}

	model := NewTeaModel(title, cancel)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	handler.program = tea.NewProgram(model, opts...)
	handler.sender = handler.program
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]) and
// blocks until it has ended.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// OnDiscovered forwards the result of a copy's discovery to the interface.
func (uiHandler *Handler) OnDiscovered(total int, bytes uint64) {
	uiHandler.sender.Send(DiscoveredMsg{Total: total, Bytes: bytes})
}

// OnCopied forwards a single copy attempt to the interface.
func (uiHandler *Handler) OnCopied(detail schema.CopyDetail) {
	uiHandler.sender.Send(CopiedMsg{Detail: detail})
}

// Finish tells the interface that the copy has ended, which then quits.
func (uiHandler *Handler) Finish() {
	uiHandler.sender.Send(FinishedMsg{})
}
