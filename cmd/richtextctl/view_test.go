package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcflow-go/richtext/internal/theme"
)

func TestViewModel_WindowSizeInitializesViewports(t *testing.T) {
	th, err := theme.Get("default")
	if err != nil {
		t.Fatalf("theme.Get failed: %v", err)
	}
	m := newViewModel("source text", "converted text", "Document", "<highlighted>", th)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	vm, ok := updated.(*viewModel)
	if !ok {
		t.Fatalf("expected *viewModel, got %T", updated)
	}
	if !vm.ready {
		t.Fatal("expected model to be ready after a WindowSizeMsg")
	}
}

func TestViewModel_CyclesRightPaneMode(t *testing.T) {
	th, _ := theme.Get("default")
	m := newViewModel("source", "converted", "tree-dump", "highlighted", th)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.mode != paneConverted {
		t.Fatal("expected mode to start at paneConverted")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.mode != paneHighlighted {
		t.Fatal("expected mode to advance to paneHighlighted after pressing t")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.mode != paneTree {
		t.Fatal("expected mode to advance to paneTree after pressing t again")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.mode != paneConverted {
		t.Fatal("expected mode to wrap back to paneConverted after a third press")
	}
}

func TestViewModel_QuitKeyReturnsQuitCmd(t *testing.T) {
	th, _ := theme.Get("default")
	m := newViewModel("source", "converted", "tree-dump", "highlighted", th)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a non-nil tea.Cmd for ctrl+c")
	}
}
