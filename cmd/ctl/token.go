package main

import (
	"encoding/json"
	"fmt"
	"todolist/config"
	"todolist/infras/jwt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Bearer token utilities",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <owner>",
	Short: "Print an access and refresh token pair for owner",
	Long: `Print an access and refresh token pair for owner as JSON.

The pair is signed with JWT_ACCESS_SECRET and JWT_REFRESH_SECRET and is
accepted by the server as "Authorization: Bearer <access_token>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := jwt.New(config.Get()).GenerateTokenPair(args[0])
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(pair); err != nil {
			return fmt.Errorf("failed to write token: %w", err)
		}

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}
