package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"startify/internal/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a local profile and session token",
	Long: `Login records the profile in the local session store and issues a
session token. Credentials are kept per email; signing in again with the
same email requires the same password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return errors.New("email is required")
		}
		name, _ := cmd.Flags().GetString("name")
		company, _ := cmd.Flags().GetString("company")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		store, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		if password != "" {
			stored, err := store.Credential(ctx, email)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				if err := store.SetCredential(ctx, email, password); err != nil {
					return err
				}
			case err != nil:
				return err
			case stored != password:
				return errors.New("invalid credentials")
			}
		}

		if err := store.SetProfile(ctx, &domain.Profile{
			Name:    name,
			Email:   email,
			Company: company,
			Role:    role,
		}); err != nil {
			return err
		}
		token := uuid.NewString()
		if err := store.SetAuthToken(ctx, token); err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		if err := store.SetAuthToken(ctx, ""); err != nil {
			return err
		}
		if err := store.ClearLatestResult(ctx); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("name", "", "display name")
	loginCmd.Flags().String("company", "", "company name")
	loginCmd.Flags().String("role", "", "role at the company")
	loginCmd.Flags().String("password", "", "password for the stored credential")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
