package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newDepartmentsCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"department", "dept"},
		Short:   "Manage departments",
	}

	cmd.AddCommand(newDepartmentsListCmd(client))
	cmd.AddCommand(newDepartmentsGetCmd(client))
	cmd.AddCommand(newDepartmentsMembersCmd(client))
	return cmd
}

func newDepartmentsListCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments visible to the current role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := client.ListDepartments(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, ds)
			}
			rows := make([][]string, len(ds))
			for i, d := range ds {
				manager := ""
				if d.Manager != nil {
					manager = d.Manager.FirstName + " " + d.Manager.LastName
				}
				rows[i] = []string{d.ID, d.Name, d.Status, manager}
			}
			return printTable(os.Stdout, []string{"ID", "NAME", "STATUS", "MANAGER"}, rows)
		},
	}
}

func newDepartmentsGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := client.GetDepartment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, d)
			}
			return printTable(os.Stdout,
				[]string{"ID", "NAME", "STATUS", "MANAGER ID"},
				[][]string{{d.ID, d.Name, d.Status, deref(d.ManagerID)}})
		},
	}
}

func newDepartmentsMembersCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "members <id>",
		Short: "List employees assigned to a department (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := client.ListDepartmentMembers(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, ms)
			}
			rows := make([][]string, len(ms))
			for i, m := range ms {
				rows[i] = []string{m.DepartmentID, m.EmployeeID}
			}
			return printTable(os.Stdout, []string{"DEPARTMENT ID", "EMPLOYEE ID"}, rows)
		},
	}
}
