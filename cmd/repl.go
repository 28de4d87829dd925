/*
Copyright © 2026 Erik Juhani
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/erikjuhani/droll/internal/command"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))
)

const replWelcome = "Welcome to droll!\nType 'help' for commands, 'exit' to quit."

type replModel struct {
	executor   *command.Executor
	textInput  textinput.Model
	viewport   viewport.Model
	history    []string
	historyIdx int
	logContent string
	width      int
	height     int
}

func newREPLModel(executor *command.Executor) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., roll 2d20+10-2)..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(replWelcome)

	return replModel{
		executor:   executor,
		textInput:  ti,
		viewport:   vp,
		history:    []string{},
		historyIdx: -1,
		logContent: replWelcome,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.textInput.SetCursor(len(m.textInput.Value()))
			}

		case tea.KeyDown:
			if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val != "" {
				// Prevent duplicate history entries
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				out, quit, err := m.executor.Execute(val)
				if err != nil {
					m.logContent += errorStyle.Render(fmt.Sprintf("Error: %v", err))
				} else {
					m.logContent += out
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()

				if quit {
					return m, tea.Quit
				}
			}
		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4

		titleH := lipgloss.Height(titleStyle.Render("Dummy"))
		infoH := lipgloss.Height(infoStyle.Render("Dummy"))
		overhead := titleH + infoH + 6 // input line + box borders + spacing
		m.viewport.Height = msg.Height - overhead
		if m.viewport.Height < 4 {
			m.viewport.Height = 4
		}
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(" droll ")
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		logBox,
		m.textInput.View(),
		infoStyle.Render("(esc to quit, up/down history)"),
	)
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive dice shell",
	Long: `Starts the read-eval-print loop for rolling dice interactively.
Usage:
	> roll 2d20+10-2
	> tree d6
	> seed 42`,
	Run: func(cmd *cobra.Command, args []string) {
		executor := command.NewExecutor(loadMacroTable())

		m := newREPLModel(executor)
		p := tea.NewProgram(&m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("REPL failed: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
