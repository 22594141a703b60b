package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/hr/screening/pkg/config"
	"github.com/artem13815/hr/screening/pkg/security/jwt"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		admin   bool
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a JWT for the admin-only HTTP endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return errors.New("JWT_SECRET is not set")
			}
			if ttl <= 0 {
				ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
			}
			tok, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(subject, admin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "ops", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to JWT_TTL_MINUTES)")
	cmd.Flags().BoolVar(&admin, "admin", true, "Grant admin privileges")
	return cmd
}
