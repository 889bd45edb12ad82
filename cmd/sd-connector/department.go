package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

var departmentCmd = &cobra.Command{
	Use:   "department",
	Short: "Fetch department records",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetDepartmentParams()
		p.Institution = params.Identifier(stringFlag(cmd, "institution"))
		p.Department = params.Identifier(stringFlag(cmd, "department"))
		p.DepartmentLevel = stringFlag(cmd, "department-level")

		var err error
		if p.StartDate, err = dateFlag(cmd, "start-date"); err != nil {
			return err
		}
		if p.EndDate, err = dateFlag(cmd, "end-date"); err != nil {
			return err
		}

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetDepartment(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

var departmentParentCmd = &cobra.Command{
	Use:   "department-parent",
	Short: "Fetch the parent of a department",
	RunE: func(cmd *cobra.Command, args []string) error {
		department, err := uuid.Parse(stringFlag(cmd, "department"))
		if err != nil {
			return fmt.Errorf("invalid department id: %s", err.Error())
		}

		p := params.NewGetDepartmentParentParams(department)
		if p.EffectiveDate, err = dateFlag(cmd, "effective-date"); err != nil {
			return err
		}

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetDepartmentParent(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

func init() {
	departmentCmd.Flags().String("institution", "", "institution code or id")
	departmentCmd.Flags().String("department", "", "department code or id")
	departmentCmd.Flags().String("department-level", "", "restrict to one department level")
	departmentCmd.Flags().String("start-date", "", "start of the effective window (default today)")
	departmentCmd.Flags().String("end-date", "", "end of the effective window (default today)")
	rootCmd.AddCommand(departmentCmd)

	departmentParentCmd.Flags().String("department", "", "department id")
	departmentParentCmd.Flags().String("effective-date", "", "date the relation must be valid on (default today)")
	_ = departmentParentCmd.MarkFlagRequired("department")
	rootCmd.AddCommand(departmentParentCmd)
}
