package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(client *Client, profile *string) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and save the session token to the active profile",
		Example: `  # Prompt for credentials
  peopled login

  # Non-interactive (password from flag; avoid on shared machines)
  peopled login --email admin@example.com --password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				fmt.Fprint(os.Stderr, "Email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			tok, p, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := saveTokenToProfile(*profile, tok); err != nil {
				return fmt.Errorf("save token: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", email, p.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newWhoamiCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the principal behind the current session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, p)
			}
			return printTable(os.Stdout,
				[]string{"USER ID", "ROLE", "EMPLOYEE ID"},
				[][]string{{p.UserID, p.Role, deref(p.EmployeeID)}})
		},
	}
}
