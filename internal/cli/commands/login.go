package commands

import (
	"TodoAuth/internal/config"
	"context"
	"fmt"
	"net/http"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	ar, err := authenticate(ctx, cfg, "/login", args, http.StatusOK)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s\n", ar.Username)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
