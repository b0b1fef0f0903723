package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options tune output behavior from flags.
type Options struct {
	Flat bool // one listing instead of "To buy" / "Bought" sections
}

// Session replays script commands against one in-memory store.
type Session struct {
	Store  *memstore.Store
	Out    io.Writer
	ErrOut io.Writer
	Opt    Options
}

// Run dispatches one script command and returns an exit code
// (0 ok, 1 error, 2 usage). A duplicate add is reported but still returns 0.
func (s *Session) Run(args []string) int {
	if len(args) == 0 {
		return 0
	}
	cmd, a := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "help":
		PrintHelp(s.Out)
		return 0

	case "ls":
		s.List()
		return 0

	case "add":
		if len(a) == 0 {
			ui.Fail(s.ErrOut, "usage: add <name...>")
			return 2
		}
		return s.doAdd(strings.Join(a, " "))

	case "photo":
		if len(a) != 1 {
			ui.Fail(s.ErrOut, "usage: photo <path>")
			return 2
		}
		return s.doPhoto(a[0])

	case "move":
		if len(a) != 2 {
			ui.Fail(s.ErrOut, "usage: move <pending|purchased> <index>")
			return 2
		}
		c, idx, code := s.target(a[0], a[1])
		if code != 0 {
			return code
		}
		return s.doMove(c, idx)

	case "edit":
		if len(a) < 3 {
			ui.Fail(s.ErrOut, "usage: edit <pending|purchased> <index> <name...>")
			return 2
		}
		c, idx, code := s.target(a[0], a[1])
		if code != 0 {
			return code
		}
		return s.doEdit(c, idx, strings.Join(a[2:], " "))

	case "rm":
		if len(a) < 2 {
			ui.Fail(s.ErrOut, "usage: rm <pending|purchased> <index...>")
			return 2
		}
		offsets := make([]int, 0, len(a)-1)
		var c model.Collection
		for _, raw := range a[1:] {
			var idx, code int
			c, idx, code = s.target(a[0], raw)
			if code != 0 {
				return code
			}
			offsets = append(offsets, idx)
		}
		return s.doRemove(c, offsets)

	case "clear":
		if len(a) != 0 {
			ui.Fail(s.ErrOut, "usage: clear")
			return 2
		}
		n := s.Store.ClearPurchased()
		log.Printf("cleared %d bought items", n)
		ui.OK(s.Out, fmt.Sprintf("cleared %d bought", n))
		return 0
	}

	ui.Fail(s.ErrOut, "unknown command: "+cmd)
	return 2
}

// RunLine dispatches one script line. Names given to add and edit keep
// their inner spacing; everything else is split on whitespace.
func (s *Session) RunLine(line string) int {
	verb, rest := cutField(line)
	switch strings.ToLower(verb) {
	case "add":
		if strings.TrimSpace(rest) == "" {
			ui.Fail(s.ErrOut, "usage: add <name...>")
			return 2
		}
		return s.doAdd(rest)

	case "edit":
		listName, rest := cutField(rest)
		rawIndex, name := cutField(rest)
		if rawIndex == "" || strings.TrimSpace(name) == "" {
			ui.Fail(s.ErrOut, "usage: edit <pending|purchased> <index> <name...>")
			return 2
		}
		c, idx, code := s.target(listName, rawIndex)
		if code != 0 {
			return code
		}
		return s.doEdit(c, idx, name)
	}
	return s.Run(strings.Fields(line))
}

// cutField splits off the first whitespace-separated word of s.
func cutField(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// PrintHelp describes the script language.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `shoplist script commands (one per line, # starts a comment)

  add <name...>                      Add an item to the top of "To buy"
  photo <path>                       Add a photo item from an image file
  move <pending|purchased> <index>   Move an item to the other list
  edit <pending|purchased> <index> <name...>
                                     Rename an item in place
  rm <pending|purchased> <index...>  Remove items
  clear                              Remove every bought item
  ls                                 Print both lists

Indexes are 1-based, as printed by ls.

Example:
  add Milk
  add Eggs
  move pending 2
  ls
`)
}

// target resolves a list name and 1-based index into a 0-based position.
func (s *Session) target(listName, rawIndex string) (model.Collection, int, int) {
	c, err := model.ParseCollection(listName)
	if err != nil {
		ui.Fail(s.ErrOut, err.Error())
		return c, 0, 2
	}
	n, err := strconv.Atoi(rawIndex)
	if err != nil {
		ui.Fail(s.ErrOut, "not a number: "+rawIndex)
		return c, 0, 2
	}
	items := s.Store.Items(c)
	if n < 1 || n > len(items) {
		ui.Fail(s.ErrOut, fmt.Sprintf("%s index out of range: have %d, got %d", c, len(items), n))
		fmt.Fprintln(s.ErrOut, ui.Dim("Hint: run `ls` to see valid indexes"))
		return c, 0, 2
	}
	return c, n - 1, 0
}

func (s *Session) doAdd(name string) int {
	it, added, err := s.Store.AddText(name)
	if err != nil {
		if errors.Is(err, memstore.ErrDuplicateItem) {
			ui.Fail(s.ErrOut, err.Error())
			return 0
		}
		ui.Fail(s.ErrOut, "add: "+err.Error())
		return 1
	}
	if !added {
		return 0
	}
	log.Printf("added %q (%s)", it.Name, it.ID)
	ui.OK(s.Out, "added "+it.Name)
	return 0
}

func (s *Session) doPhoto(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		ui.Fail(s.ErrOut, "photo: "+err.Error())
		return 1
	}
	it, ok := s.Store.AddImage(data)
	if !ok {
		ui.Fail(s.ErrOut, "photo: "+path+" is empty")
		return 1
	}
	log.Printf("added photo %s from %s", it.ID, path)
	ui.OK(s.Out, "added "+it.Name)
	return 0
}

func (s *Session) doMove(c model.Collection, idx int) int {
	it := s.Store.Items(c)[idx]
	s.Store.Move(it.ID)
	log.Printf("moved %q out of %s", it.Name, c)
	if c == model.Pending {
		ui.OK(s.Out, "bought "+it.Name)
	} else {
		ui.OK(s.Out, "back on the list: "+it.Name)
	}
	return 0
}

func (s *Session) doEdit(c model.Collection, idx int, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		ui.Fail(s.ErrOut, "edit: empty name")
		return 2
	}
	it := s.Store.Items(c)[idx]
	old := it.Name
	it.Name = name
	s.Store.Edit(it)
	log.Printf("renamed %s to %q", it.ID, name)
	ui.OK(s.Out, fmt.Sprintf("renamed %s to %s", old, name))
	return 0
}

func (s *Session) doRemove(c model.Collection, offsets []int) int {
	n := s.Store.DeleteAt(c, offsets...)
	log.Printf("removed %d from %s", n, c)
	ui.OK(s.Out, fmt.Sprintf("removed %d", n))
	return 0
}
