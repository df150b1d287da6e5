package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = u.Name + " "
	}
	if a.mode != "" {
		s = s + string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "crispychat client (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "chat %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}

		var cmdErr error
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "help":
			a.printHelp()
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "exit", "quit":
			return
		default:
			fmt.Fprintln(a.out, "Unknown command, type 'help'.")
		}

		if cmdErr != nil {
			fmt.Fprintf(a.out, "Error: %v\n", cmdErr)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Commands:
  register  create a new account
  login     sign in and load the user directory
  users     list users (* marks online)
  whoami    show the signed-in user
  refresh   obtain a new access token
  status    show session state and token expiry
  logout    clear the local session
  exit      quit
`)
}
