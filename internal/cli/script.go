package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/ui"
)

func newRunCmd(app *App) *cobra.Command {
	var opt Options

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Replay a script of list commands and print the result",
		Long: strings.TrimSpace(`
Replay shopping-list commands against a fresh list, then print both lists.
Reads stdin when no file (or "-") is given. Nothing is saved afterwards.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := openLog(app.cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			s := &Session{
				Store:  newStore(app.cfg),
				Out:    cmd.OutOrStdout(),
				ErrOut: cmd.ErrOrStderr(),
				Opt:    opt,
			}
			return RunScript(in, s)
		},
	}
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprintf(c.OutOrStdout(), "%s\n\nUsage:\n  %s\n\nFlags:\n%s\n", c.Long, c.UseLine(), c.Flags().FlagUsages())
		PrintHelp(c.OutOrStdout())
	})

	cmd.Flags().BoolVar(&opt.Flat, "flat", false, "Print one listing instead of To buy / Bought sections")
	return cmd
}

// RunScript feeds each non-blank, non-comment line of r to the session and
// prints the final lists. The first failing line stops the script.
func RunScript(r io.Reader, s *Session) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if code := s.RunLine(line); code != 0 {
			ui.Fail(s.ErrOut, fmt.Sprintf("line %d: %s", lineNo, line))
			return &ExitError{Code: code}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	s.List()
	return nil
}
