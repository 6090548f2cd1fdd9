package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newEmployeesCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employees",
	}

	cmd.AddCommand(newEmployeesListCmd(client))
	cmd.AddCommand(newEmployeesGetCmd(client))
	cmd.AddCommand(newEmployeesCreateCmd(client))
	return cmd
}

func newEmployeesListCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees visible to the current role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			es, err := client.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, es)
			}
			rows := make([][]string, len(es))
			for i, e := range es {
				manager := ""
				if e.Manager != nil {
					manager = e.Manager.FirstName + " " + e.Manager.LastName
				}
				rows[i] = []string{e.ID, e.LastName, e.FirstName, e.Email, e.Status, manager}
			}
			return printTable(os.Stdout,
				[]string{"ID", "LAST NAME", "FIRST NAME", "EMAIL", "STATUS", "MANAGER"}, rows)
		},
	}
}

func newEmployeesGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := client.GetEmployee(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, e)
			}
			return printTable(os.Stdout,
				[]string{"ID", "LAST NAME", "FIRST NAME", "EMAIL", "PHONE", "STATUS", "MANAGER ID"},
				[][]string{{e.ID, e.LastName, e.FirstName, e.Email, e.Phone, e.Status, deref(e.ManagerID)}})
		},
	}
}

func newEmployeesCreateCmd(client *Client) *cobra.Command {
	var params CreateEmployeeParams
	var managerID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision an employee and their login credential (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if managerID != "" {
				params.ManagerID = &managerID
			}
			res, err := client.CreateEmployee(cmd.Context(), params)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, res)
			}
			fmt.Fprintf(os.Stdout, "Created employee %s (%s %s)\n",
				res.Employee.ID, res.Employee.FirstName, res.Employee.LastName)
			fmt.Fprintf(os.Stdout, "Initial password (shown once): %s\n", res.InitialPassword)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&params.Email, "email", "", "Work email (also the login)")
	cmd.Flags().StringVar(&params.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&params.Status, "status", "", "Status (ACTIVE or INACTIVE; defaults to ACTIVE)")
	cmd.Flags().StringVar(&managerID, "manager-id", "", "Manager employee ID")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
