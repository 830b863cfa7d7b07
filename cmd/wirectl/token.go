package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inamate/wireframe/backend-go/internal/auth"
	"github.com/inamate/wireframe/backend-go/internal/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [flags] subject",
		Short: "Issue an editor token",
		Long:  `Token signs a JWT for subject with the server secret, read from JWT_SECRET unless --secret is given`,
		Args:  cobra.ExactArgs(1),
		RunE:  runToken,
	}
	cmd.Flags().String("secret", "", "signing secret (default $JWT_SECRET)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		return fmt.Errorf("failed to get secret flag: %w", err)
	}
	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		return fmt.Errorf("failed to get ttl flag: %w", err)
	}

	if secret == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		secret = cfg.JWTSecret
	}

	token, err := auth.NewService(secret).WithTTL(ttl).IssueToken(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
