package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idilsaglam/shoplist/internal/model"
)

// maxPhotoSize caps how much a picked file may weigh.
const maxPhotoSize = 20 << 20

var photoTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".heic", ".bmp"}

type imagePickedMsg struct {
	path string
	data []byte
}

type imageLoadFailedMsg struct {
	err error
}

func pickerHeight(screenH int) int {
	h := screenH - 8
	if h < 6 {
		h = 6
	}
	return h
}

// openPicker shows the photo picker. The picker is the only way photo items
// enter the store; leaving it with esc adds nothing.
func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = photoTypes
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.Height = pickerHeight(m.height)
	fp.Cursor = "›"
	// esc cancels the picker, so it can't also mean "up a directory".
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "up"),
	)

	fp.Styles.Cursor = m.st.accent
	fp.Styles.Selected = m.st.accent.Bold(true)
	fp.Styles.Directory = m.st.accent
	fp.Styles.Symlink = m.st.accent
	fp.Styles.DisabledFile = m.st.muted
	fp.Styles.DisabledSelected = m.st.muted
	fp.Styles.FileSize = m.st.muted.Width(fp.Styles.FileSize.GetWidth()).Align(lipgloss.Right)

	startDir := strings.TrimSpace(m.pickerDir)
	if startDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startDir = home
		}
	}
	if startDir == "" {
		startDir = "."
	}
	fp.CurrentDirectory = startDir

	m.picker = fp
	m.mode = modePickPhoto
	m.status = ""
	return fp.Init()
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Cancel) {
		m.mode = modeBrowse
		m.status = "No photo added"
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeBrowse
		m.pickerDir = filepath.Dir(path)
		return m, tea.Batch(cmd, loadImage(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.status = filepath.Base(path) + " is not an image"
	}
	return m, cmd
}

func (m Model) pickerView() string {
	title := m.st.title.Render("Add photo") + "  " + m.st.muted.Render(m.picker.CurrentDirectory)
	help := m.st.help.Render("enter: pick  h: up  esc: cancel")
	body := title + "\n\n" + m.picker.View() + "\n" + help
	if m.status != "" {
		body += "\n" + m.st.errorMsg.Render(m.status)
	}
	return body
}

// loadImage reads the picked file off the update loop.
func loadImage(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return imageLoadFailedMsg{err: fmt.Errorf("stat: %w", err)}
		}
		if info.Size() > maxPhotoSize {
			return imageLoadFailedMsg{err: fmt.Errorf("%s is larger than %s",
				filepath.Base(path), humanize.Bytes(maxPhotoSize))}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return imageLoadFailedMsg{err: fmt.Errorf("read: %w", err)}
		}
		return imagePickedMsg{path: path, data: data}
	}
}

func (m Model) addPhoto(msg imagePickedMsg) (tea.Model, tea.Cmd) {
	it, ok := m.store.AddImage(msg.data)
	if !ok {
		m.status = filepath.Base(msg.path) + " is empty"
		return m, nil
	}
	log.Printf("added photo %s (%s, %s)", it.ID, filepath.Base(msg.path), photoLabel(it))
	cmd := m.refresh()
	m.setFocus(model.Pending)
	m.lists[model.Pending].Select(0)
	m.status = "Added " + filepath.Base(msg.path)
	return m, cmd
}
