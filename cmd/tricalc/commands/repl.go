package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tricalc/internal/interpreter"
	"tricalc/internal/util/tty"
)

const replHelp = `Tokens are separated by spaces; numbers and operators may be run together (3+4=).
  digits, .             enter a number
  + - * x / ^ yroot     operators (^ and yroot in scientific mode)
  =                     evaluate (recompute in converter mode)
  C  DEL  %             clear, backspace, percent
  sin cos tan log ln sqrt pi e    scientific functions
  ( ) ()                brackets (text only)
  mode:standard|scientific|converter
  cat:length|weight|currency   units:<from>:<to>   swap
  help, quit
`

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
}

// runREPL reads token lines from the command's input until EOF or quit.
//
// On a terminal, rate loads finishing in the background are rendered as they
// arrive. Otherwise each line waits for any load it started so that output is
// deterministic.
func runREPL(cmd *cobra.Command) error {
	ctx := cmd.Context()
	in := cmd.InOrStdin()
	interactive := tty.IsInteractive(in)

	prompt := ""
	if interactive {
		prompt = "> "
	}
	out := newDisplay(cmd.OutOrStdout(), prompt)

	var opts []interpreter.Option
	if interactive {
		opts = append(opts, interpreter.WithUpdates(out.update))
	}
	session := appCtx.NewSession(ctx, opts...)
	if interactive {
		out.printf("tricalc, %s mode. Type help for tokens, quit to leave.\n", session.State().Mode)
		out.render(session.Snapshot())
	} else {
		session.Wait()
	}

	sc := bufio.NewScanner(in)
	for out.showPrompt(); sc.Scan(); out.showPrompt() {
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			out.printf("%s", replHelp)
			continue
		}

		actions, err := interpreter.ParseActions(line)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		for _, a := range actions {
			session.Dispatch(ctx, a)
			if !interactive {
				session.Wait()
			}
		}
		out.render(session.Snapshot())
	}
	return sc.Err()
}
