package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

const shellPrompt = "corkboard> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands against one open board, keeping undo history",
		Long: "Read commands from standard input, one per line, without the leading\n" +
			"\"corkboard\". The board stays open for the whole session, so undo and\n" +
			"redo reach back across commands. Type exit or quit to leave.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session = true
			defer func() { a.session = false }()
			return a.runShell(cmd)
		},
	}
}

func (a *app) runShell(cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	errOut := cmd.ErrOrStderr()
	for {
		fmt.Fprint(errOut, shellPrompt)
		if !in.Scan() {
			fmt.Fprintln(errOut)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		// Flags given on one line do not carry over to the next.
		saved := a.flags
		sub := newRootCmd(a)
		sub.SetArgs(args)
		sub.SetIn(cmd.InOrStdin())
		sub.SetOut(cmd.OutOrStdout())
		sub.SetErr(errOut)
		sub.SilenceErrors = true
		if err := sub.Execute(); err != nil {
			fmt.Fprintln(errOut, "error:", err)
			a.log.Debug("shell command failed", "line", line, "error", err)
		}
		a.flags = saved
	}
}

// splitArgs splits a command line into words using POSIX shell quoting.
func splitArgs(line string) ([]string, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, usagef("%v", err)
	}
	return args, nil
}
