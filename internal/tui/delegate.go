package tui

import (
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Name }
func (i listItem) Description() string { return photoLabel(i.item) }
func (i listItem) FilterValue() string { return i.item.Name }

// photoLabel describes the attached image, e.g. "12 kB, image/png".
func photoLabel(it model.Item) string {
	if !it.HasImage() {
		return ""
	}
	return fmt.Sprintf("%s, %s", humanize.Bytes(uint64(len(it.Image))), http.DetectContentType(it.Image))
}

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{item: it})
	}
	return out
}

// itemDelegate renders one item per line. Only the focused list shows a cursor.
type itemDelegate struct {
	st     *styles
	active bool
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	sym := d.st.sym

	box := d.st.muted.Render(sym.BoxUnchecked)
	text := it.item.Name
	if it.item.HasImage() {
		box = d.st.accent.Render(sym.SymPhoto)
	}
	if it.item.Completed {
		box = d.st.success.Render(sym.BoxChecked)
		text = d.st.done.Render(text)
	}
	if label := photoLabel(it.item); label != "" {
		text += " " + d.st.muted.Render("("+label+")")
	}

	width := m.Width() - 4
	if width < 10 {
		width = 10
	}
	line := ui.Truncate(fmt.Sprintf("%s %s", box, text), width)

	prefix := "  "
	if d.active && index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
