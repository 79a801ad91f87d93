package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/storage"
)

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))

// ScoreboardModel shows the recorded runs for one level in a table.
type ScoreboardModel struct {
	levelID  string
	table    table.Model
	quitting bool
}

// NewScoreboardModel loads the top runs for a level into a table.
func NewScoreboardModel(store *storage.Store, levelID string, limit int) (ScoreboardModel, error) {
	runs, err := store.TopRuns(levelID, limit)
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Result", Width: 9},
		{Title: "Players", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "When", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			result,
			fmt.Sprintf("%d", r.Players),
			fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("15"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("208"))
	t.SetStyles(styles)

	return ScoreboardModel{levelID: levelID, table: t}, nil
}

// Init initializes the model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c", "enter":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(scoreboardTitleStyle.Render("Best runs · " + m.levelID))
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n\nq back")
	return sb.String()
}

// RunScoreboard shows the scoreboard for a level and blocks until
// dismissed.
func RunScoreboard(store *storage.Store, levelID string, limit int) error {
	model, err := NewScoreboardModel(store, levelID, limit)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
