package main

import (
	"fmt"

	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenRole  string
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint an access token for local development",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		scopes := auth.ScopesForRole(tokenRole)
		if scopes == nil {
			return fmt.Errorf("unknown role %q", tokenRole)
		}

		token, err := newTokenService(cfg.Auth).GenerateAccessToken(kernel.NewUserID(args[0]), tokenEmail, scopes)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "candidate", "role whose scopes are granted: candidate, recruiter or admin")
}
