package commands

import (
	"TodoAuth/internal/config"
	"context"
	"fmt"
	"net/http"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store its token" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	ar, err := authenticate(ctx, cfg, "/register", args, http.StatusCreated)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered as %s (id %d)\n", ar.Username, ar.UserID)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
