package main

import (
	"fmt"
	"os"

	"github.com/pocketwise/pocketwise/scripts/internal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "scripts",
	Short:        "Operational scripts for the PocketWise API",
	SilenceUsage: true,
}

func init() {
	generateTokenCmd := &cobra.Command{
		Use:   "generate-token",
		Short: "Generate a signed bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user-id")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			return internal.GenerateToken(userID, ttl)
		},
	}
	generateTokenCmd.Flags().String("user-id", "", "User the token is issued to")
	generateTokenCmd.Flags().Duration("ttl", internal.DefaultTokenTTL, "Token lifetime")
	_ = generateTokenCmd.MarkFlagRequired("user-id")

	generateSecretCmd := &cobra.Command{
		Use:   "generate-secret",
		Short: "Generate a random 256-bit signing secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.GenerateSecret()
		},
	}

	refreshStatusesCmd := &cobra.Command{
		Use:   "refresh-statuses",
		Short: "Re-evaluate the status of unpaid credit bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			userIDs, _ := cmd.Flags().GetStringSlice("user-id")
			return internal.RefreshBillStatuses(cmd.Context(), userIDs)
		},
	}
	refreshStatusesCmd.Flags().StringSlice("user-id", nil, "Limit the refresh to these users, defaults to every card owner")

	rootCmd.AddCommand(generateTokenCmd, generateSecretCmd, refreshStatusesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
