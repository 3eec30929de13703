package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/mockprep/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	balloonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	levelColors = map[m.NotificationLevel]lipgloss.Color{
		m.LevelDebug: lipgloss.Color("8"),
		m.LevelInfo:  lipgloss.Color("12"),
		m.LevelError: lipgloss.Color("9"),
	}
)

// StyledUI renders notifications as bordered balloons on a terminal. Diffs
// and inventories are printed as SimpleUI does.
type StyledUI struct {
	*SimpleUI
}

// Notify renders the notification inside a colored box.
func (s *StyledUI) Notify(ctx context.Context, n m.Notification) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !s.visible(n) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintln(s.writer(n), renderBalloon(n))
}

func renderBalloon(n m.Notification) string {
	body := n.Message
	if n.Title != "" {
		body = titleStyle.Render(n.Title)
		if n.Message != "" {
			body += "\n" + n.Message
		}
	}

	return balloonStyle.BorderForeground(levelColors[n.Level]).Render(body)
}
