package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenNotesEdit:
		return m.viewNotesEdit()
	case screenReminderForm:
		return m.viewReminderForm()
	case screenPlanner:
		return m.viewPlanner()
	case screenVersion:
		return m.viewVersion()
	default:
		return m.viewHolidays()
	}
}

func (m mainLoopModel) viewHolidays() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("загрузка...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if len(m.holidays) == 0 && !m.loading {
		b.WriteString("праздников нет\n")
	}

	for i, h := range m.holidays {
		marker := "  "
		if i == m.idx {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s (%d дн.)\n", marker, h.Date, fitText(h.Name, 42), h.Days))
	}

	return renderPage(
		"Праздники",
		b.String(),
		"enter: подробнее | p: планы | v: версия | s: обновить | q: выход",
	)
}

func (m mainLoopModel) viewDetail() string {
	holiday, ok := m.selectedHoliday()
	if !ok {
		return m.viewHolidays()
	}

	var b strings.Builder

	if m.loading {
		b.WriteString("загрузка...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("Дата:      " + holiday.Date + "\n")
	b.WriteString("Описание:  " + valueOrDash(fitText(holiday.Description, 60)) + "\n")
	b.WriteString("\n")

	b.WriteString("Заметки:\n")
	if len(m.notes.Items) == 0 {
		b.WriteString("  -\n")
	}
	for _, note := range m.notes.Items {
		b.WriteString("  • " + note + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Напоминание:\n")
	if m.reminder == nil {
		b.WriteString("  не задано\n")
	} else {
		b.WriteString("  время:  " + m.reminder.ScheduledTime + "\n")
		b.WriteString("  текст:  " + valueOrDash(m.reminder.Body) + "\n")
	}

	return renderPage(
		holiday.Name,
		b.String(),
		"e: заметки | r: напоминание | d: удалить напоминание | c: копировать | esc: назад",
	)
}

func (m mainLoopModel) viewNotesEdit() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.notesArea.View())
	b.WriteString("\n")

	return renderPage(
		"Заметки: одна на строку",
		b.String(),
		"ctrl+s: сохранить | esc: отмена",
	)
}

func (m mainLoopModel) viewReminderForm() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString("Время напоминания\n")
	b.WriteString(m.timeInput.View())
	b.WriteString("\n\n")
	b.WriteString("Текст уведомления\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n")

	return renderPage(
		"Новое напоминание",
		b.String(),
		"tab: следующее поле | enter: поставить | esc: отмена",
	)
}

func (m mainLoopModel) viewPlanner() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("загрузка...\n")
	}

	b.WriteString("Напоминания:\n")
	if len(m.planner.Reminders) == 0 {
		b.WriteString("  -\n")
	}
	for _, r := range m.planner.Reminders {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n", r.HolidayID, r.ScheduledTime, fitText(r.Name, 32)))
	}
	b.WriteString("\n")

	b.WriteString("Заметки:\n")
	if len(m.planner.Notes) == 0 {
		b.WriteString("  -\n")
	}
	for _, n := range m.planner.Notes {
		b.WriteString(fmt.Sprintf("  %s  %s (%d зам.)\n", n.HolidayID, fitText(n.Name, 32), len(n.Items)))
	}

	return renderPage(
		"Все планы",
		b.String(),
		"esc: назад",
	)
}

func (m mainLoopModel) viewVersion() string {
	var b strings.Builder

	b.WriteString("Версия:  " + valueOrDash(m.version.Version) + "\n")
	b.WriteString("Дата:    " + valueOrDash(m.version.Date) + "\n")
	b.WriteString("Коммит:  " + valueOrDash(m.version.Commit) + "\n")

	return renderPage(
		"О приложении",
		b.String(),
		"esc: назад",
	)
}
