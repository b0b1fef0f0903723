package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// List prints both lists in a framed panel with counts and progress.
func (s *Session) List() {
	pending, bought := s.Store.Pending(), s.Store.Purchased()
	t := ui.Current()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Shopping list"),
		ui.C(t.Pending, t.SymUnchecked), len(pending),
		ui.C(t.Success, t.SymDone), len(bought),
		ui.C(t.Accent, "Total"), len(pending)+len(bought),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(len(bought), len(pending)+len(bought), 28)))
	lines = append(lines, "")

	if s.Opt.Flat {
		lines = append(lines, flatLines(append(pending, bought...))...)
	} else {
		lines = append(lines, groupLines(pending, bought)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: `shoplist run --help` lists script commands"))
	ui.Panel(s.Out, lines)
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	t := ui.Current()
	out := make([]string, 0, len(items))
	n := 0
	for i, it := range items {
		// Numbering restarts where the bought items begin.
		if i > 0 && it.Completed && !items[i-1].Completed {
			n = 0
		}
		n++
		idx := fmt.Sprintf("%2d.", n)
		box, color := t.BoxUnchecked, t.Muted
		if it.HasImage() {
			box, color = t.SymPhoto, t.Accent
		}
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Dim(idx), ui.C(color, box), itemText(it)))
	}
	return out
}

func groupLines(pending, bought []model.Item) []string {
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Accent, "To buy"))
	if len(pending) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pending)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Bought"))
	if len(bought) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(bought)...)
	}
	return lines
}

func itemText(it model.Item) string {
	text := ui.Truncate(it.Name, 60)
	if it.HasImage() {
		text += " " + ui.C(ui.Current().Muted, "("+humanize.Bytes(uint64(len(it.Image)))+")")
	}
	return text
}
