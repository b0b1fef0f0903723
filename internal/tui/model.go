package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modePickPhoto
	modeConfirmClear
)

// Options tune the interactive list.
type Options struct {
	Theme     string
	PickerDir string
	LogFile   string
	NoColor   bool
}

// Model is the Bubble Tea model for the shopping list screen.
// All store mutations happen inside Update.
type Model struct {
	store *memstore.Store
	keys  keyMap
	st    *styles

	lists [2]list.Model // indexed by model.Collection
	focus model.Collection
	mode  mode

	// Inline add / edit
	ti      textinput.Model
	formErr string
	editID  uuid.UUID

	// Photo picker
	picker    filepicker.Model
	pickerDir string

	status        string
	width, height int
}

// New builds the model around an existing store.
func New(store *memstore.Store, opt Options) Model {
	st := newStyles(opt.Theme, opt.NoColor)
	keys := defaultKeyMap()

	m := Model{
		store:     store,
		keys:      keys,
		st:        &st,
		pickerDir: opt.PickerDir,
		width:     80,
		height:    24,
	}
	m.lists[model.Pending] = m.newList("To buy", store.Pending(), true)
	m.lists[model.Purchased] = m.newList("Bought", store.Purchased(), false)

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	m.resize()
	return m
}

func (m *Model) newList(title string, items []model.Item, active bool) list.Model {
	l := list.New(toListItems(items), itemDelegate{st: m.st, active: active}, 0, 0)
	l.Title = title
	l.SetShowHelp(active)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = m.st.heading
	l.Styles.HelpStyle = m.st.help
	l.Styles.PaginationStyle = m.st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// "d" deletes here, so keep it out of paging.
	l.KeyMap.NextPage = key.NewBinding(
		key.WithKeys("right", "l", "pgdown", "f"),
		key.WithHelp("→/l/pgdn", "next page"),
	)
	// q and esc are handled by the model.
	l.KeyMap.Quit.SetEnabled(false)

	extra := m.keys.listHelp()
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return append(extra, m.keys.Quit) }
	return l
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.mode == modePickPhoto {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil
	case imagePickedMsg:
		return m.addPhoto(msg)
	case imageLoadFailedMsg:
		m.status = "photo: " + msg.err.Error()
		log.Printf("photo load failed: %v", msg.err)
		return m, nil
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateForm(msg)
	case modePickPhoto:
		return m.updatePicker(msg)
	case modeConfirmClear:
		return m.updateConfirmClear(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	cur := &m.lists[m.focus]

	// While typing a filter every key belongs to the list.
	if km, ok := msg.(tea.KeyMsg); ok && cur.FilterState() != list.Filtering {
		m.status = ""
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.SwitchList):
			m.setFocus(1 - m.focus)
			return m, nil
		case key.Matches(km, m.keys.Add):
			m.mode = modeAdd
			m.formErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New item..."
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(km, m.keys.AddPhoto):
			cmd := m.openPicker()
			return m, cmd
		case key.Matches(km, m.keys.Move):
			return m.moveSelected()
		case key.Matches(km, m.keys.Edit):
			it, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.mode = modeEdit
			m.formErr = ""
			m.editID = it.ID
			m.ti.SetValue(it.Name)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Item name..."
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(km, m.keys.Delete):
			return m.deleteSelected()
		case key.Matches(km, m.keys.Clear):
			if _, bought := m.store.Stats(); bought == 0 {
				m.status = "Nothing to clear"
				return m, nil
			}
			m.mode = modeConfirmClear
			return m, nil
		}
	}

	var cmd tea.Cmd
	*cur, cmd = cur.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(km, m.keys.Cancel):
			return m.closeForm(), nil
		case key.Matches(km, m.keys.Confirm):
			if m.mode == modeAdd {
				return m.submitAdd()
			}
			return m.submitEdit()
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	it, added, err := m.store.AddText(m.ti.Value())
	if err != nil {
		// Duplicate names keep the form open with the typed text, like an alert.
		m.formErr = err.Error()
		log.Printf("add rejected: %v", err)
		return m, nil
	}
	if !added {
		// Blank input: nothing to add, keep the form open.
		return m, nil
	}
	log.Printf("added %q (%s)", it.Name, it.ID)
	m = m.closeForm()
	cmd := m.refresh()
	m.setFocus(model.Pending)
	m.lists[model.Pending].Select(0)
	return m, cmd
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.ti.Value())
	if name == "" {
		m.formErr = "Name cannot be empty"
		return m, nil
	}
	it, _, found := m.store.Find(m.editID)
	if found {
		it.Name = name
		if m.store.Edit(it) {
			log.Printf("renamed %s to %q", it.ID, name)
		}
	}
	m = m.closeForm()
	cmd := m.refresh()
	return m, cmd
}

func (m Model) closeForm() Model {
	m.mode = modeBrowse
	m.formErr = ""
	m.editID = uuid.Nil
	m.ti.SetValue("")
	m.ti.Blur()
	return m
}

func (m Model) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.ConfirmYes):
		n := m.store.ClearPurchased()
		log.Printf("cleared %d bought items", n)
		m.mode = modeBrowse
		m.status = fmt.Sprintf("Cleared %d bought %s", n, plural(n, "item", "items"))
		cmd := m.refresh()
		return m, cmd
	case key.Matches(km, m.keys.ConfirmNo):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) moveSelected() (tea.Model, tea.Cmd) {
	it, ok := m.selected()
	if !ok {
		return m, nil
	}
	if m.store.Move(it.ID) {
		_, c, _ := m.store.Find(it.ID)
		log.Printf("moved %q to %s", it.Name, c)
	}
	cmd := m.refresh()
	return m, cmd
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	it, ok := m.selected()
	if !ok {
		return m, nil
	}
	pos := position(m.store.Items(m.focus), it.ID)
	if pos < 0 {
		return m, nil
	}
	if m.store.DeleteAt(m.focus, pos) > 0 {
		log.Printf("deleted %q from %s", it.Name, m.focus)
	}
	cmd := m.refresh()
	return m, cmd
}

// selected returns the item under the cursor of the focused list.
func (m Model) selected() (model.Item, bool) {
	li, ok := m.lists[m.focus].SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

// refresh reloads both lists from the store.
func (m *Model) refresh() tea.Cmd {
	return tea.Batch(
		m.lists[model.Pending].SetItems(toListItems(m.store.Pending())),
		m.lists[model.Purchased].SetItems(toListItems(m.store.Purchased())),
	)
}

func (m *Model) setFocus(c model.Collection) {
	m.focus = c
	for i := range m.lists {
		active := model.Collection(i) == c
		m.lists[i].SetDelegate(itemDelegate{st: m.st, active: active})
		m.lists[i].SetShowHelp(active)
	}
	m.resize()
}

func (m *Model) resize() {
	// header (2) + border (2) + input box / status (4)
	avail := m.height - 8
	if avail < 8 {
		avail = 8
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	// The focused list also carries the help footer.
	inactive := avail / 3
	m.lists[m.focus].SetSize(w, avail-inactive)
	m.lists[1-m.focus].SetSize(w, inactive)
	if m.mode == modePickPhoto {
		m.picker.Height = pickerHeight(m.height)
	}
}

func (m Model) View() string {
	if m.mode == modePickPhoto {
		return m.st.border.Render(m.pickerView())
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.lists[model.Pending].View())
	b.WriteString("\n")
	b.WriteString(m.lists[model.Purchased].View())

	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		if m.formErr != "" {
			title += "  " + m.st.errorMsg.Render(m.formErr)
		}
		box := m.st.border.Render(title + "\n" + m.ti.View())
		b.WriteString("\n" + box)
	case modeConfirmClear:
		_, bought := m.store.Stats()
		q := fmt.Sprintf("Clear all %d bought %s? (y/n)", bought, plural(bought, "item", "items"))
		b.WriteString("\n" + m.st.border.Render(m.st.errorMsg.Render(q)))
	default:
		if m.status != "" {
			b.WriteString("\n" + m.st.muted.Render(m.status))
		}
	}
	return m.st.border.Render(b.String())
}

func (m Model) header() string {
	pending, bought := m.store.Stats()
	title := fmt.Sprintf("%s   %s %d  %s %d",
		m.st.title.Render("Shopping list"),
		m.st.pending.Render(m.st.sym.SymUnchecked), pending,
		m.st.success.Render(m.st.sym.SymDone), bought,
	)
	bar := m.st.muted.Render(ui.ProgressBar(bought, pending+bought, 24))
	return lipgloss.JoinVertical(lipgloss.Left, title, bar)
}

func position(items []model.Item, id uuid.UUID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
