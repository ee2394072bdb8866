package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/holiday-planner/internal/adapter"
	"github.com/MKhiriev/holiday-planner/models"
)

type screen int

const (
	screenHolidays screen = iota
	screenDetail
	screenNotesEdit
	screenReminderForm
	screenPlanner
	screenVersion
)

type mainLoopModel struct {
	ctx context.Context
	api adapter.PlannerAPI

	screen  screen
	loading bool
	status  string
	errMsg  string

	holidays []models.Holiday
	idx      int

	notes    models.NoteSet
	reminder *models.Reminder

	notesArea textarea.Model

	timeInput textinput.Model
	bodyInput textinput.Model
	formFocus int

	planner models.PlannerSnapshot
	version models.AppBuildInfo

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, api adapter.PlannerAPI) mainLoopModel {
	notesArea := textarea.New()
	notesArea.Placeholder = "одна заметка на строку"

	timeInput := textinput.New()
	timeInput.Placeholder = "ЧЧ:ММ (например 09:30)"
	timeInput.CharLimit = 5

	bodyInput := textinput.New()
	bodyInput.Placeholder = "текст уведомления"

	return mainLoopModel{
		ctx:       ctx,
		api:       api,
		loading:   true,
		notesArea: notesArea,
		timeInput: timeInput,
		bodyInput: bodyInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadHolidays()
}

func (m mainLoopModel) selectedHoliday() (models.Holiday, bool) {
	if m.idx < 0 || m.idx >= len(m.holidays) {
		return models.Holiday{}, false
	}
	return m.holidays[m.idx], true
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case holidaysLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.holidays = msg.holidays
		if m.idx >= len(m.holidays) {
			m.idx = 0
		}
		return m, nil

	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.screen = screenHolidays
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		m.reminder = msg.reminder
		m.screen = screenDetail
		return m, nil

	case notesSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "заметки сохранены"
		if holiday, ok := m.selectedHoliday(); ok {
			m.loading = true
			return m, m.cmdLoadDetail(holiday.ID)
		}
		return m, nil

	case reminderScheduledMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "напоминание поставлено на " + msg.scheduled.ScheduledTime
		if holiday, ok := m.selectedHoliday(); ok {
			m.loading = true
			return m, m.cmdLoadDetail(holiday.ID)
		}
		return m, nil

	case reminderDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "напоминание удалено"
		m.reminder = nil
		return m, nil

	case plannerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.screen = screenHolidays
			return m, nil
		}
		m.errMsg = ""
		m.planner = msg.snapshot
		m.screen = screenPlanner
		return m, nil

	case versionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.screen = screenHolidays
			return m, nil
		}
		m.errMsg = ""
		m.version = msg.info
		m.screen = screenVersion
		return m, nil

	case copiedMsg:
		m.status = "скопировано в буфер обмена"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// текстовые экраны перехватывают почти все клавиши
	switch m.screen {
	case screenNotesEdit:
		return m.handleNotesEditKey(msg)
	case screenReminderForm:
		return m.handleReminderFormKey(msg)
	}

	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenHolidays:
		return m.handleHolidaysKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenPlanner, screenVersion:
		if key.Matches(msg, keys.esc) {
			m.screen = screenHolidays
		}
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) handleHolidaysKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.holidays)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if holiday, ok := m.selectedHoliday(); ok {
			m.loading = true
			m.status = ""
			return m, m.cmdLoadDetail(holiday.ID)
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadHolidays()
	case key.Matches(msg, keys.planner):
		m.loading = true
		return m, m.cmdLoadPlanner()
	case key.Matches(msg, keys.version):
		m.loading = true
		return m, m.cmdLoadVersion()
	}
	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	holiday, ok := m.selectedHoliday()
	if !ok {
		m.screen = screenHolidays
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHolidays
		m.status = ""
	case key.Matches(msg, keys.notes):
		m.notesArea.SetValue(strings.Join(m.notes.Items, "\n"))
		m.notesArea.Focus()
		m.screen = screenNotesEdit
	case key.Matches(msg, keys.reminder):
		m.timeInput.SetValue("")
		m.bodyInput.SetValue("")
		m.formFocus = 0
		m.timeInput.Focus()
		m.bodyInput.Blur()
		m.screen = screenReminderForm
	case key.Matches(msg, keys.delete):
		if m.reminder != nil {
			m.loading = true
			return m, m.cmdDeleteReminder(holiday.ID)
		}
	case key.Matches(msg, keys.copy):
		if len(m.notes.Items) > 0 {
			return m, cmdCopyToClipboard(strings.Join(m.notes.Items, "\n"))
		}
	}
	return m, nil
}

func (m mainLoopModel) handleNotesEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.notesArea.Blur()
		m.screen = screenDetail
		return m, nil
	case key.Matches(msg, keys.save):
		holiday, ok := m.selectedHoliday()
		if !ok {
			m.screen = screenHolidays
			return m, nil
		}
		m.notesArea.Blur()
		m.loading = true
		m.screen = screenDetail
		return m, m.cmdSaveNotes(holiday.ID, models.SaveNotesRequest{
			Items:       splitNotes(m.notesArea.Value()),
			Name:        holiday.Name,
			Description: holiday.Description,
		})
	}

	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleReminderFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDetail
		return m, nil
	case key.Matches(msg, keys.tab):
		m.formFocus = (m.formFocus + 1) % 2
		if m.formFocus == 0 {
			m.timeInput.Focus()
			m.bodyInput.Blur()
		} else {
			m.timeInput.Blur()
			m.bodyInput.Focus()
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		holiday, ok := m.selectedHoliday()
		if !ok {
			m.screen = screenHolidays
			return m, nil
		}

		hour, minute, err := parseClockInput(m.timeInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.errMsg = ""
		m.loading = true
		m.screen = screenDetail
		return m, m.cmdScheduleReminder(holiday.ID, models.ScheduleReminderRequest{
			Name:        holiday.Name,
			Body:        m.bodyInput.Value(),
			Description: holiday.Description,
			Hour:        hour,
			Minute:      minute,
		})
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.timeInput, cmd = m.timeInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

// splitNotes turns the textarea content into the note list: one note per
// line, blank lines dropped.
func splitNotes(raw string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// parseClockInput parses the "ЧЧ:ММ" form field into hour and minute.
func parseClockInput(raw string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("время задаётся в формате ЧЧ:ММ")
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("время задаётся в формате ЧЧ:ММ")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("время задаётся в формате ЧЧ:ММ")
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("часы 0-23, минуты 0-59")
	}

	return hour, minute, nil
}
