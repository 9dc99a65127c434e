package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solecraft/client-go/api"
	"github.com/solecraft/client-go/internal/utils"
)

func newLoginCmd(verbose *bool) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			a.nav.SetCurrentPath("/login")

			resp, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if !a.manager.Login(resp.Token, resp.User) {
				return fmt.Errorf("backend returned an unusable token")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")    //nolint:errcheck
	cmd.MarkFlagRequired("password") //nolint:errcheck
	return cmd
}

func newRegisterCmd(verbose *bool) *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			a.nav.SetCurrentPath("/register")

			resp, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.Token != "" {
				a.manager.Login(resp.Token, resp.User)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", resp.User.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (min 6 characters)")
	cmd.MarkFlagRequired("name")     //nolint:errcheck
	cmd.MarkFlagRequired("email")    //nolint:errcheck
	cmd.MarkFlagRequired("phone")    //nolint:errcheck
	cmd.MarkFlagRequired("password") //nolint:errcheck
	return cmd
}

func newLogoutCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			a.nav.SetCurrentPath("/login")
			a.store.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			if !a.manager.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			out := cmd.OutOrStdout()
			if profile := a.manager.Profile(); profile != nil {
				fmt.Fprintf(out, "Name:  %s\n", profile.DisplayName())
				fmt.Fprintf(out, "Email: %s\n", profile.Email)
				if profile.Role != "" {
					fmt.Fprintf(out, "Role:  %s\n", profile.Role)
				}
			}
			if claims := a.manager.CurrentUser(); claims != nil {
				if sub, ok := claims["sub"].(string); ok {
					fmt.Fprintf(out, "ID:    %s\n", sub)
				}
				if roles, ok := claims["roles"].([]any); ok {
					fmt.Fprintf(out, "Roles: %v\n", utils.ToStringSlice(roles))
				}
			}
			return nil
		},
	}
}

func newVerifyCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Ask the backend whether the stored credential is still valid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			if a.manager.VerifyToken(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Token is valid")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Token is not valid")
			}
			return nil
		},
	}
}

func newForgotPasswordCmd(verbose *bool) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Start a password reset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(*verbose)
			if err != nil {
				return err
			}
			a.nav.SetCurrentPath("/forgot-password")

			resp, err := a.client.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			if resp.ResetToken != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Reset token: %s\n", resp.ResetToken)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.MarkFlagRequired("email") //nolint:errcheck
	return cmd
}
