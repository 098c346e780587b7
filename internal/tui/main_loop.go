// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-keeper/internal/detail"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// listEntry is one row of the contact list, derived from a snapshot.
type listEntry struct {
	id      string
	name    string
	title   string
	status  models.SyncStatus
	deleted bool
}

type mainLoopModel struct {
	ctx         context.Context
	services    *service.ClientServices
	coordinator *detail.Coordinator
	userID      int64

	stateCh    <-chan models.UIState
	snapshotCh <-chan models.SnapshotSet

	entries []listEntry
	idx     int
	loading bool
	syncing bool
	status  string
	errMsg  string

	uiState models.UIState

	// inputs mirror the form while editing; the coordinator's published
	// form is only used to (re)fill them when edit mode is entered.
	inputs     []textinput.Model
	focus      int
	inputsLive bool

	// pendingSelectID holds a list selection that was refused because it
	// would discard unsaved edits; the user answers y/n.
	pendingSelectID string
	pendingSelect   bool

	logout   bool
	fatalErr error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, coordinator *detail.Coordinator, userID int64) mainLoopModel {
	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		coordinator: coordinator,
		userID:      userID,
		stateCh:     coordinator.State().Subscribe(),
		snapshotCh:  services.ContactService.Snapshots(),
		uiState:     coordinator.State().Current(),
		loading:     true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdWaitState(), m.cmdWaitSnapshots(), m.cmdWaitFatal(), textinput.Blink)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotsMsg:
		m.loading = false
		m.rebuildEntries(msg.set)
		return m, m.cmdWaitSnapshots()

	case uiStateMsg:
		m.applyUIState(msg.state)
		return m, m.cmdWaitState()

	case fatalErrMsg:
		m.fatalErr = msg.err
		return m, tea.Quit

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = syncErrorMessage(msg.err)
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.isEditing() {
			return m.forwardToInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if dialog := m.uiState.ActiveDialog(); dialog != nil {
		return m.updateDialog(keyMsg, dialog)
	}

	if m.pendingSelect {
		return m.updatePendingSelect(keyMsg)
	}

	if m.isEditing() {
		return m.updateEditing(keyMsg)
	}

	if state, ok := m.uiState.(models.ViewingContact); ok {
		return m.updateViewing(keyMsg, state)
	}

	return m.updateList(keyMsg)
}

// ---- обработка нажатий ----

func (m mainLoopModel) updateDialog(keyMsg tea.KeyMsg, dialog models.Dialog) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		switch dialog.(type) {
		case models.DiscardChangesPrompt:
			m.coordinator.ConfirmDiscard()
			m.inputsLive = false
		case models.DeleteConfirm:
			m.coordinator.ConfirmDelete()
		case models.UndeleteConfirm:
			m.coordinator.ConfirmUndelete()
		}
	case "n", "esc":
		m.coordinator.CancelDialog()
	}
	return m, nil
}

func (m mainLoopModel) updatePendingSelect(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		id := m.pendingSelectID
		m.pendingSelect = false
		m.pendingSelectID = ""
		m.inputsLive = false
		if err := m.coordinator.DiscardAndSelect(id, false); err != nil {
			m.errMsg = selectErrorMessage(err)
		}
	case "n", "esc":
		m.pendingSelect = false
		m.pendingSelectID = ""
	}
	return m, nil
}

func (m mainLoopModel) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.coordinator.ExitEditClick()
		return m, nil
	case "ctrl+s":
		m.status = ""
		m.errMsg = ""
		m.coordinator.SaveClick()
		return m, nil
	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	}
	return m.forwardToInput(keyMsg)
}

// forwardToInput delivers the message to the focused field and reports the
// new value to the coordinator, which owns the authoritative form state.
func (m mainLoopModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.inputsLive {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.coordinator.FieldChange(formFieldAt(m.focus), after)
	}
	return m, cmd
}

func (m mainLoopModel) updateViewing(keyMsg tea.KeyMsg, state models.ViewingContact) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.coordinator.Deselect()
	case "e":
		m.status = ""
		m.errMsg = ""
		m.coordinator.EditClick()
	case "ctrl+d":
		m.coordinator.DeleteClick()
	case "u":
		m.coordinator.UndeleteClick()
	case "c":
		if err := clipboard.WriteAll(contactCardText(state.Form)); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	case "up", "down":
		return m.moveAndSelect(keyMsg.String())
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case "enter":
		entry, ok := m.current()
		if !ok {
			m.status = "Контактов нет"
			return m, nil
		}
		m.selectEntry(entry.id)
	case "n":
		m.status = ""
		m.errMsg = ""
		m.coordinator.CreateClick()
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, m.cmdSync()
	case "l":
		m.logout = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// moveAndSelect keeps the detail pane following the list cursor.
func (m mainLoopModel) moveAndSelect(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up":
		if m.idx > 0 {
			m.idx--
		}
	case "down":
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	}

	if entry, ok := m.current(); ok {
		m.selectEntry(entry.id)
	}
	return m, nil
}

func (m *mainLoopModel) selectEntry(id string) {
	err := m.coordinator.Select(id, false)
	switch {
	case err == nil:
		m.status = ""
		m.errMsg = ""
	case errors.Is(err, detail.ErrUnsavedChanges):
		m.pendingSelect = true
		m.pendingSelectID = id
	default:
		m.errMsg = selectErrorMessage(err)
	}
}

// ---- входящие состояния ----

// applyUIState absorbs a coordinator emission. While the user is typing the
// published form is ignored so keystrokes are never overwritten; the fields
// are (re)filled only on the not-editing to editing transition.
func (m *mainLoopModel) applyUIState(state models.UIState) {
	view, viewing := state.(models.ViewingContact)

	if viewing && view.Editing && !m.inputsLive {
		m.initFormInputs(view.Form)
	}
	if !viewing || !view.Editing {
		m.inputsLive = false
	}
	if viewing && view.ScrollToError {
		m.errMsg = "Фамилия обязательна"
		m.focusField(models.FieldLastName)
	}

	m.uiState = state
}

func (m *mainLoopModel) initFormInputs(form models.ContactForm) {
	firstName := textinput.New()
	firstName.Placeholder = "Имя"
	firstName.Width = 40
	firstName.SetValue(form.FirstName)
	firstName.Focus()

	lastName := textinput.New()
	lastName.Placeholder = "Фамилия"
	lastName.Width = 40
	lastName.SetValue(form.LastName)

	title := textinput.New()
	title.Placeholder = "Должность"
	title.Width = 40
	title.SetValue(form.Title)

	department := textinput.New()
	department.Placeholder = "Отдел"
	department.Width = 40
	department.SetValue(form.Department)

	m.inputs = []textinput.Model{firstName, lastName, title, department}
	m.focus = 0
	m.inputsLive = true
}

func (m *mainLoopModel) focusField(field models.FormField) {
	if !m.inputsLive {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = int(field)
	m.inputs[m.focus].Focus()
}

func (m *mainLoopModel) rebuildEntries(set models.SnapshotSet) {
	selectedID := ""
	if entry, ok := m.current(); ok {
		selectedID = entry.id
	}

	entries := make([]listEntry, 0, len(set))
	for id, snap := range set {
		title := ""
		if snap.Record.Contact.Title != nil {
			title = *snap.Record.Contact.Title
		}
		entries = append(entries, listEntry{
			id:      id,
			name:    snap.Record.Contact.DisplayName(),
			title:   title,
			status:  snap.Status,
			deleted: snap.Record.Deleted,
		})
	}
	sortEntries(entries)
	m.entries = entries

	m.idx = 0
	for i, entry := range entries {
		if entry.id == selectedID {
			m.idx = i
			break
		}
	}
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// sortEntries orders by display name, then by id for a stable tiebreak.
func sortEntries(entries []listEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].name != entries[j].name {
			return entries[i].name < entries[j].name
		}
		return entries[i].id < entries[j].id
	})
}

func (m mainLoopModel) current() (listEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return listEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m mainLoopModel) isEditing() bool {
	state, ok := m.uiState.(models.ViewingContact)
	return ok && state.Editing
}

// ---- команды ----

func (m mainLoopModel) cmdWaitState() tea.Cmd {
	ch := m.stateCh
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return uiStateMsg{state: state}
	}
}

func (m mainLoopModel) cmdWaitSnapshots() tea.Cmd {
	ch := m.snapshotCh
	return func() tea.Msg {
		set, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotsMsg{set: set}
	}
}

func (m mainLoopModel) cmdWaitFatal() tea.Cmd {
	ch := m.coordinator.Errors()
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return fatalErrMsg{err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	syncSvc := m.services.SyncService
	contactSvc := m.services.ContactService
	userID := m.userID

	return func() tea.Msg {
		if err := syncSvc.FullSync(ctx, userID); err != nil {
			return syncDoneMsg{err: err}
		}
		return syncDoneMsg{err: contactSvc.RefreshSnapshots(ctx)}
	}
}

// ---- отрисовка ----

func (m mainLoopModel) View() string {
	if dialog := m.uiState.ActiveDialog(); dialog != nil {
		return m.viewDialog(dialog)
	}
	if m.pendingSelect {
		return renderPage(
			"НЕСОХРАНЁННЫЕ ИЗМЕНЕНИЯ",
			"Изменения будут потеряны. Перейти к другому контакту?",
			"y: перейти │ n: остаться",
		)
	}
	if state, ok := m.uiState.(models.ViewingContact); ok {
		if state.Editing {
			return m.viewEditing(state)
		}
		return m.viewDetail(state)
	}
	return m.viewList()
}

func (m mainLoopModel) viewDialog(dialog models.Dialog) string {
	switch d := dialog.(type) {
	case models.DiscardChangesPrompt:
		return renderPage(
			"НЕСОХРАНЁННЫЕ ИЗМЕНЕНИЯ",
			"Изменения будут потеряны. Продолжить?",
			"y: продолжить │ n: отмена",
		)
	case models.DeleteConfirm:
		return renderPage(
			"УДАЛЕНИЕ КОНТАКТА",
			fmt.Sprintf("Удалить контакт «%s»?", d.TargetName),
			"y: удалить │ n: отмена",
		)
	case models.UndeleteConfirm:
		return renderPage(
			"ВОССТАНОВЛЕНИЕ КОНТАКТА",
			fmt.Sprintf("Восстановить контакт «%s»?", d.TargetName),
			"y: восстановить │ n: отмена",
		)
	default:
		return renderPage("ПОДТВЕРЖДЕНИЕ", "Продолжить?", "y: да │ n: нет")
	}
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		return renderPage("КОНТАКТЫ", "Загрузка списка...", listHotKeys)
	}

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.entries) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Контактов нет\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Всего: " + formatCount(len(m.entries)) + "\n\n"
		out += m.renderList()
	}

	return renderPage("КОНТАКТЫ", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "enter: открыть │ n: новый │ s: синхр. │ ↑/↓: нав. │ l: сменить пользователя"

func (m mainLoopModel) renderList() string {
	out := "     │ Контакт                  │ Должность       │ Статус\n"
	out += "─────┼──────────────────────────┼─────────────────┼────────────────\n"
	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		out += fmt.Sprintf(
			"%s %-3d│ %-24s │ %-15s │ %s\n",
			cursor,
			i+1,
			fitText(entry.name, 24),
			fitText(valueOrDash(entry.title), 15),
			syncStatusLabel(entry.status, entry.deleted),
		)
	}
	return out
}

func (m mainLoopModel) viewDetail(state models.ViewingContact) string {
	out := ""
	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	out += "Имя       │ " + valueOrDash(state.Form.FirstName) + "\n"
	out += "Фамилия   │ " + valueOrDash(state.Form.LastName) + "\n"
	out += "Должность │ " + valueOrDash(state.Form.Title) + "\n"
	out += "Отдел     │ " + valueOrDash(state.Form.Department) + "\n"
	out += "Статус    │ " + displaySyncLabel(state.SyncState) + "\n"
	if state.OperationActive {
		out += "\nВыполняется операция...\n"
	}

	hotKeys := "e: изм. │ ctrl+d: удалить │ c: копировать │ ↑/↓: нав. │ esc: назад"
	if state.SyncState == models.DisplayDeleted || state.SyncState == models.DisplayDeleteFailed {
		hotKeys = "u: восстановить │ c: копировать │ ↑/↓: нав. │ esc: назад"
	}

	return renderPage("ПРОСМОТР КОНТАКТА", strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewEditing(state models.ViewingContact) string {
	title := "ИЗМЕНЕНИЕ КОНТАКТА"
	if state.SyncState == models.DisplayNotSaved {
		title = "НОВЫЙ КОНТАКТ"
	}

	if !m.inputsLive {
		return renderPage(title, "Загрузка формы...", "esc: назад")
	}

	out := "Имя       │ [" + m.inputs[0].View() + "]\n"
	out += "Фамилия   │ [" + m.inputs[1].View() + "]\n"
	out += "Должность │ [" + m.inputs[2].View() + "]\n"
	out += "Отдел     │ [" + m.inputs[3].View() + "]\n"
	if state.OperationActive {
		out += "Действие  │ [Сохранение...]\n"
	} else {
		out += "Действие  │ [Сохранить: ctrl+s]\n"
	}
	if m.errMsg != "" {
		out += "\nОшибка: " + m.errMsg + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ shift+tab: пред. поле │ ctrl+s: сохранить │ esc: назад")
}

// ---- подписи ----

func formFieldAt(focus int) models.FormField {
	switch focus {
	case 0:
		return models.FieldFirstName
	case 1:
		return models.FieldLastName
	case 2:
		return models.FieldTitle
	default:
		return models.FieldDepartment
	}
}

func syncStatusLabel(status models.SyncStatus, deleted bool) string {
	if deleted {
		return "удалён"
	}
	switch status {
	case models.StatusClean:
		return "синхр."
	case models.StatusCreatedLocal, models.StatusUpdatedLocal:
		return "ожидает синхр."
	case models.StatusDeletedLocal:
		return "удалён"
	case models.StatusDeleteFailed:
		return "ошибка удаления"
	default:
		return "-"
	}
}

func displaySyncLabel(state models.DisplaySyncState) string {
	switch state {
	case models.DisplayInSync:
		return "синхронизирован"
	case models.DisplayPendingSync:
		return "ожидает синхронизации"
	case models.DisplayDeleted:
		return "удалён"
	case models.DisplayDeleteFailed:
		return "ошибка удаления"
	case models.DisplayNotSaved:
		return "не сохранён"
	default:
		return "-"
	}
}

func selectErrorMessage(err error) string {
	switch {
	case errors.Is(err, detail.ErrOperationBlocked):
		return "Дождитесь завершения операции"
	case errors.Is(err, detail.ErrContactNotFound):
		return "Контакт не найден"
	default:
		return err.Error()
	}
}

func contactCardText(form models.ContactForm) string {
	lines := []string{
		"Имя: " + valueOrDash(form.FirstName),
		"Фамилия: " + valueOrDash(form.LastName),
		"Должность: " + valueOrDash(form.Title),
		"Отдел: " + valueOrDash(form.Department),
	}
	return strings.Join(lines, "\n")
}
