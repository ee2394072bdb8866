package tui

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/holiday-planner/internal/adapter"
	"github.com/MKhiriev/holiday-planner/models"
)

func (m mainLoopModel) cmdLoadHolidays() tea.Cmd {
	return func() tea.Msg {
		holidays, err := m.api.GetHolidays(m.ctx)
		return holidaysLoadedMsg{holidays: holidays, err: err}
	}
}

func (m mainLoopModel) cmdLoadDetail(holidayID string) tea.Cmd {
	return func() tea.Msg {
		notes, err := m.api.GetNotes(m.ctx, holidayID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		reminder, err := m.api.GetReminder(m.ctx, holidayID)
		if err != nil {
			if errors.Is(err, adapter.ErrNotFound) {
				return detailLoadedMsg{notes: notes}
			}
			return detailLoadedMsg{notes: notes, err: err}
		}

		return detailLoadedMsg{notes: notes, reminder: &reminder}
	}
}

func (m mainLoopModel) cmdSaveNotes(holidayID string, req models.SaveNotesRequest) tea.Cmd {
	return func() tea.Msg {
		return notesSavedMsg{err: m.api.SaveNotes(m.ctx, holidayID, req)}
	}
}

func (m mainLoopModel) cmdScheduleReminder(holidayID string, req models.ScheduleReminderRequest) tea.Cmd {
	return func() tea.Msg {
		scheduled, err := m.api.ScheduleReminder(m.ctx, holidayID, req)
		return reminderScheduledMsg{scheduled: scheduled, err: err}
	}
}

func (m mainLoopModel) cmdDeleteReminder(holidayID string) tea.Cmd {
	return func() tea.Msg {
		return reminderDeletedMsg{err: m.api.DeleteReminder(m.ctx, holidayID)}
	}
}

func (m mainLoopModel) cmdLoadPlanner() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.api.GetPlanner(m.ctx)
		return plannerLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m mainLoopModel) cmdLoadVersion() tea.Cmd {
	return func() tea.Msg {
		info, err := m.api.GetVersion(m.ctx)
		return versionLoadedMsg{info: info, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}
