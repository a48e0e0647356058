package chart

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// viewModel is the bubbletea model showing a single static chart.
type viewModel struct {
	plot Plot
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Leave room for the gutter, title, legend and help line.
		m.plot.Width = max(msg.Width-gutter-2, MinWidth)
		m.plot.Height = max(msg.Height-8, MinHeight)
	}

	return m, nil
}

func (m viewModel) View() string {
	return Render(m.plot) + "\n" + helpStyle.Render("q: quit")
}

// Run shows the chart until the user quits.
func Run(p Plot, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	prog := tea.NewProgram(viewModel{plot: p}, opts...)

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("error running chart: %w", err)
	}
	return nil
}
