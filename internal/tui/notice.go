package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notice is the transient message shown in the status bar. Each notice gets
// a fresh id; only the dismissal carrying the current id clears it.
type notice struct {
	id      int
	text    string
	isError bool
}

// noticeExpiredMsg dismisses the notice with the given id.
type noticeExpiredMsg struct {
	id int
}

func (n notice) expire(id int) notice {
	if id != n.id {
		return n
	}
	n.text = ""
	n.isError = false
	return n
}

// showNotice replaces the current notice and schedules its dismissal.
func (a *App) showNotice(text string, isError bool) tea.Cmd {
	a.notice.id++
	a.notice.text = text
	a.notice.isError = isError
	return a.expireNotice()
}

// expireNotice schedules the dismissal of the current notice.
func (a App) expireNotice() tea.Cmd {
	id := a.notice.id
	return tea.Tick(a.cfg.Animation.Notice(), func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
