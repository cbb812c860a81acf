package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/labelsmith/labelsmith/pkg/errors"
	"github.com/labelsmith/labelsmith/pkg/profile"
)

// newProfilesCmd creates the profiles command, which lists the layout
// profiles available to export pdf.
func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available layout profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := profilesDir()
			if err != nil {
				return err
			}
			names, err := profile.List(dir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printWarning("No layout profiles found in %s", dir)
				printDetail("Create <name>.toml files there to define label geometries")
				return nil
			}

			fmt.Println(StyleTitle.Render("Layout Profiles"))
			for _, name := range names {
				params, err := profile.Load(profile.Path(dir, name))
				if err != nil {
					printError("%s: %s", name, errors.UserMessage(err))
					continue
				}
				printKeyValue(name, fmt.Sprintf("%.0fx%.0f pt page, %.0fx%.0f pt label",
					params.PageW, params.PageH, params.ItemW, params.ItemH))
			}
			return nil
		},
	}
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// profileListModel is the bubbletea model for interactive profile selection.
type profileListModel struct {
	names    []string
	cursor   int
	selected string
}

func newProfileListModel(names []string) profileListModel {
	return profileListModel{names: names}
}

func (m profileListModel) Init() tea.Cmd {
	return nil
}

func (m profileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m profileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Profile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(name) + "\n")
	}

	return b.String()
}

// pickProfile lists the profiles directory and lets the user choose one.
// Quitting without a selection is an error so the export does not proceed
// with geometry the user never confirmed.
func pickProfile(ctx context.Context) (string, error) {
	dir, err := profilesDir()
	if err != nil {
		return "", err
	}
	names, err := profile.List(dir)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no layout profiles found in %s", dir)
	}

	prog := tea.NewProgram(newProfileListModel(names), tea.WithContext(ctx))
	result, err := prog.Run()
	if err != nil {
		return "", err
	}

	m, ok := result.(profileListModel)
	if !ok || m.selected == "" {
		return "", fmt.Errorf("no profile selected")
	}
	return m.selected, nil
}
