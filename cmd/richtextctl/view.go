package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcflow-go/richtext"
	"github.com/arcflow-go/richtext/internal/rtconfig"
	"github.com/arcflow-go/richtext/internal/theme"
	"github.com/arcflow-go/richtext/transform"
)

// ViewCmd shows a source document next to its converted form in a
// two-pane interactive viewport. The right pane cycles (press t) between
// the converted output, a themed rendering that highlights Bold, Italic,
// Code, Link, and Mention spans, and a raw AST dump.
type ViewCmd struct {
	From string `required:"" enum:"rtjson,mrkdwn,gfm" help:"Source format"`
	To   string `required:"" enum:"rtjson,gfm"         help:"Destination format"` //nolint:lll // Kong struct tag with alignment

	Input string `arg:"" required:"" type:"existingfile" help:"File to preview"`
	Theme string `default:"default" help:"Theme name (default, dark, light, solarized, monokai)"`
}

// Run executes the view command.
func (c *ViewCmd) Run() error {
	th, err := theme.Get(c.Theme)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	cfg, err := rtconfig.Load()
	if err != nil {
		cfg = &rtconfig.Config{}
	}
	opts := richtext.Options{TeamID: cfg.TeamID}

	conv := &ConvertCmd{From: c.From, To: c.To}
	doc, err := conv.decode(raw, opts)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Input, err)
	}
	out, err := conv.convert(raw, opts)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", c.Input, err)
	}

	m := newViewModel(string(raw), string(out), transform.Sprint(doc), th.RenderStyled(doc), th)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// rightPaneMode cycles the right-hand pane between the converted output,
// the themed highlight rendering, and the raw AST dump.
type rightPaneMode int

const (
	paneConverted rightPaneMode = iota
	paneHighlighted
	paneTree
	paneModeCount
)

type viewModel struct {
	source      string
	converted   string
	tree        string
	highlighted string
	theme       *theme.Theme

	left  viewport.Model
	right viewport.Model
	ready bool

	width, height int
	mode          rightPaneMode
}

func newViewModel(source, converted, tree, highlighted string, th *theme.Theme) *viewModel {
	return &viewModel{source: source, converted: converted, tree: tree, highlighted: highlighted, theme: th}
}

func (*viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.mode = (m.mode + 1) % paneModeCount
			m.refreshContent()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		paneWidth := (msg.Width - 3) / 2
		paneHeight := msg.Height - 2

		if !m.ready {
			m.left = viewport.New(paneWidth, paneHeight)
			m.right = viewport.New(paneWidth, paneHeight)
			m.ready = true
		} else {
			m.left.Width, m.left.Height = paneWidth, paneHeight
			m.right.Width, m.right.Height = paneWidth, paneHeight
		}
		m.refreshContent()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.left, cmd = m.left.Update(msg)
	cmds = append(cmds, cmd)
	m.right, cmd = m.right.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *viewModel) refreshContent() {
	if !m.ready {
		return
	}
	m.left.SetContent(m.source)
	switch m.mode {
	case paneHighlighted:
		m.right.SetContent(m.highlighted)
	case paneTree:
		m.right.SetContent(m.tree)
	default:
		m.right.SetContent(m.converted)
	}
}

func (m *viewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Header).Bold(true)
	rightTitle := "converted"
	switch m.mode {
	case paneHighlighted:
		rightTitle = "highlighted spans (press t to toggle)"
	case paneTree:
		rightTitle = "ast (press t to toggle)"
	}

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border)

	left := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("source"), paneStyle.Render(m.left.View()))
	right := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(rightTitle), paneStyle.Render(m.right.View()))

	help := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("q: quit  t: cycle converted / highlighted / ast view")

	return strings.Join([]string{
		m.theme.Gradient("richtextctl"),
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		help,
	}, "\n")
}
