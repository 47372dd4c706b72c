// Package tui is the interactive shell: a Bubble Tea list over the
// library with the menu actions bound to keys. The core store never
// touches the terminal; this package renders whatever it returns.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bookshelf-cli/bookshelf/internal/config"
	"github.com/bookshelf-cli/bookshelf/internal/model"
	"github.com/bookshelf-cli/bookshelf/internal/store/textstore"
	"github.com/bookshelf-cli/bookshelf/internal/ui"
)

// bookItem adapts a Book to bubbles/list.Item. Filtering matches the
// title or the author, case-insensitively.
type bookItem struct {
	model.Book
}

func (i bookItem) Title() string       { return i.Book.Title }
func (i bookItem) Description() string { return "" }
func (i bookItem) FilterValue() string { return i.Book.Title + " " + i.Book.Author }

// Staged add form: one prompt per field, in file-field order.
type addStage int

const (
	stageTitle addStage = iota
	stageAuthor
	stageYear
	stageGenre
	stageRead
)

var stagePrompts = map[addStage]string{
	stageTitle:  "Book title...",
	stageAuthor: "Author...",
	stageYear:   "Publication year...",
	stageGenre:  "Genre...",
	stageRead:   "Have you read it? (yes/no)",
}

type shell struct {
	lib  *textstore.Library
	list list.Model
	log  *zap.SugaredLogger

	width, height int

	// Inline add form
	adding  bool
	stage   addStage
	draft   model.Book
	ti      textinput.Model
	formErr string

	// Statistics overlay
	statsOpen bool

	status string // one-line outcome of the last action
}

// Menu actions as a dispatch table rather than a conditional ladder.
var browseActions = map[string]func(shell) (shell, tea.Cmd){
	"a": shell.beginAdd,
	"d": shell.removeSelected,
	"s": shell.toggleStats,
}

// Custom delegate to control how books render (single line)
type bookDelegate struct{}

func (d bookDelegate) Height() int                               { return 1 }
func (d bookDelegate) Spacing() int                              { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(bookItem)
	box := boxUnread
	boxStyled := mutedStyle.Render(box)
	text := fmt.Sprintf("%s by %s (%d) - %s", it.Book.Title, it.Book.Author, it.Book.Year, it.Book.Genre)
	if it.Book.Read {
		boxStyled = successStyle.Render(boxRead)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, text)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run loads the library, drives the interactive session, and performs
// the final save on the way out. Returns a process exit code.
func Run(cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	m := newShell(lib, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("ui: " + err.Error())
		return 1
	}

	// The store saves after every mutation; this final save only
	// matters if the file was changed underneath us mid-session.
	if err := lib.Save(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("library saved")
	return 0
}

func newShell(lib *textstore.Library, log *zap.SugaredLogger) shell {
	l := list.New(itemsOf(lib), bookDelegate{}, 0, 0)
	l.Title = headerOf(lib)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("book", "books")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	rmBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	statBind := key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, rmBind, statBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, rmBind, statBind} }

	m := shell{
		lib:  lib,
		list: l,
		log:  log,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	return m
}

func itemsOf(lib *textstore.Library) []list.Item {
	books := lib.Books()
	li := make([]list.Item, 0, len(books))
	for _, b := range books {
		li = append(li, bookItem{b})
	}
	return li
}

func headerOf(lib *textstore.Library) string {
	st := lib.Statistics()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Library"),
		successStyle.Render("✔"), st.ReadCount,
		pendingStyle.Render("•"), st.Total-st.ReadCount,
		accentStyle.Render("Total"), st.Total,
	)
}

func (m shell) refresh() shell {
	m.list.SetItems(itemsOf(m.lib))
	m.list.Title = headerOf(m.lib)
	return m
}

func (m shell) Init() tea.Cmd { return nil }

func (m shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	if m.adding {
		return m.updateAdd(msg)
	}

	if m.statsOpen {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "s", "esc", "q", "enter":
				m.statsOpen = false
			}
		}
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch s := k.String(); s {
		case "q", "esc":
			return m, tea.Quit
		default:
			if action, found := browseActions[s]; found {
				return action(m)
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m shell) beginAdd() (shell, tea.Cmd) {
	m.adding = true
	m.stage = stageTitle
	m.draft = model.Book{}
	m.formErr = ""
	m.status = ""
	m.ti.SetValue("")
	m.ti.Placeholder = stagePrompts[stageTitle]
	m.ti.Focus()
	return m, nil
}

func (m shell) removeSelected() (shell, tea.Cmd) {
	it, ok := m.list.SelectedItem().(bookItem)
	if !ok {
		return m, nil
	}
	n, err := m.lib.Remove(it.Book.Title)
	if err != nil {
		m.status = errorStyle.Render("save failed: " + err.Error())
		return m.refresh(), nil
	}
	if n == 0 {
		m.status = mutedStyle.Render("book not found")
		return m, nil
	}
	m.log.Infow("removed books", "title", it.Book.Title, "count", n)
	m.status = successStyle.Render(fmt.Sprintf("removed %d", n))
	return m.refresh(), nil
}

func (m shell) toggleStats() (shell, tea.Cmd) {
	m.statsOpen = !m.statsOpen
	return m, nil
}

func (m shell) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			return m.advanceAdd()
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// advanceAdd consumes the current prompt value and moves to the next
// field; after the read-status prompt the draft goes into the store.
func (m shell) advanceAdd() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.ti.Value())

	switch m.stage {
	case stageTitle:
		if val == "" {
			m.formErr = "Title cannot be empty"
			return m, nil
		}
		m.draft.Title = val
	case stageAuthor:
		m.draft.Author = val
	case stageYear:
		year, err := strconv.Atoi(val)
		if err != nil {
			m.formErr = "Please enter a valid year"
			return m, nil
		}
		m.draft.Year = year
	case stageGenre:
		m.draft.Genre = val
	case stageRead:
		switch strings.ToLower(val) {
		case "yes", "y":
			m.draft.Read = true
		case "no", "n":
			m.draft.Read = false
		default:
			m.formErr = "Please enter yes or no"
			return m, nil
		}
		// Last field: commit.
		m.adding = false
		m.ti.SetValue("")
		m.ti.Blur()
		if err := m.lib.Add(m.draft); err != nil {
			m.status = errorStyle.Render("save failed: " + err.Error())
		} else {
			m.log.Infow("added book", "title", m.draft.Title)
			m.status = successStyle.Render("added " + m.draft.Title)
		}
		return m.refresh(), nil
	}

	m.stage++
	m.formErr = ""
	m.ti.SetValue("")
	m.ti.Placeholder = stagePrompts[m.stage]
	return m, nil
}

func (m shell) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	if m.statsOpen {
		return panelString(m.statsView())
	}

	listHeight := h - 4
	if m.adding {
		listHeight = h - 7
	}
	if m.status != "" {
		listHeight--
	}
	m.list.SetSize(w-4, listHeight)

	content := m.list.View()
	if m.status != "" {
		content += "\n" + m.status
	}
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := fmt.Sprintf("Add a book (%d/5)", int(m.stage)+1)
		if m.formErr != "" {
			title += " — " + errorStyle.Render(m.formErr)
		}
		inputLine := title + "\n" + m.ti.View()
		content = content + "\n" + bar.Render(inputLine)
	}
	return panelString(content)
}

func (m shell) statsView() string {
	st := m.lib.Statistics()
	if st.Total == 0 {
		return titleStyle.Render("Library Statistics") + "\n\n" +
			mutedStyle.Render("your library is empty") + "\n\n" +
			helpStyle.Render("s/esc back")
	}
	return fmt.Sprintf("%s\n\nTotal books:     %d\nBooks read:      %d\nPercentage read: %.1f%%\n\n%s\n\n%s",
		titleStyle.Render("Library Statistics"),
		st.Total,
		st.ReadCount,
		st.PercentRead,
		mutedStyle.Render(ui.ProgressBar(st.ReadCount, st.Total, 28)),
		helpStyle.Render("s/esc back"),
	)
}

// helpers for View
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
