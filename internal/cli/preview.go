package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/pkg/pipeline"
)

// newPreviewCmd creates the preview command for paging through rendered text.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a document and page through the Mermaid text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			doc, err := loadDocument(cfg, args[0])
			if err != nil {
				return err
			}

			runner, err := newRunner(ctx, cfg, false)
			if err != nil {
				return fmt.Errorf("create runner: %w", err)
			}

			spin := newSpinnerWithContext(ctx, "Rendering...")
			spin.Start()
			result, err := runner.Render(ctx, doc, pipeline.Options{})
			spin.Stop()
			if err != nil {
				return err
			}

			model := newPreviewModel(args[0], result.Text)
			_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
			return err
		},
	}
}

// =============================================================================
// PreviewModel - Scrollable Mermaid text pager
// =============================================================================

// PreviewModel is the bubbletea model for paging through rendered text.
type PreviewModel struct {
	Title  string
	Lines  []string
	Offset int
	Height int
}

// newPreviewModel creates a pager over the rendered text.
func newPreviewModel(title, text string) PreviewModel {
	return PreviewModel{
		Title:  title,
		Lines:  strings.Split(strings.TrimRight(text, "\n"), "\n"),
		Height: 20,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
		case "pgup":
			m.Offset -= m.Height
			if m.Offset < 0 {
				m.Offset = 0
			}
		case "pgdown", " ":
			m.Offset += m.Height
			if m.Offset > m.maxOffset() {
				m.Offset = m.maxOffset()
			}
		case "g", "home":
			m.Offset = 0
		case "G", "end":
			m.Offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 4
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Offset > m.maxOffset() {
			m.Offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m PreviewModel) maxOffset() int {
	max := len(m.Lines) - m.Height
	if max < 0 {
		return 0
	}
	return max
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("↑/↓ scroll  ⎵ page  q quit  %d/%d", m.Offset+1, len(m.Lines))))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	for i := m.Offset; i < end; i++ {
		b.WriteString(StyleValue.Render(m.Lines[i]))
		b.WriteString("\n")
	}

	return b.String()
}
