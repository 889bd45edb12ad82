package main

import (
	"github.com/spf13/cobra"

	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

var employmentCmd = &cobra.Command{
	Use:   "employment",
	Short: "Fetch employment records for an institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetEmploymentParams(stringFlag(cmd, "institution"))
		p.PersonCivilRegistrationIdentifier = stringFlag(cmd, "cpr")
		p.Employment = stringFlag(cmd, "employment")
		p.Department = stringFlag(cmd, "department")
		p.DepartmentLevel = stringFlag(cmd, "department-level")
		p.StatusPassiveIndicator = boolFlag(cmd, "include-passive")

		var err error
		if p.EffectiveDate, err = dateFlag(cmd, "effective-date"); err != nil {
			return err
		}

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetEmployment(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

var employmentChangedCmd = &cobra.Command{
	Use:   "employment-changed",
	Short: "Fetch employments changed within a date window",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetEmploymentChangedParams(stringFlag(cmd, "institution"))
		p.PersonCivilRegistrationIdentifier = stringFlag(cmd, "cpr")
		p.Employment = stringFlag(cmd, "employment")
		p.Department = stringFlag(cmd, "department")
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

		record, err := client.GetEmploymentChanged(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

var employmentChangedAtDateCmd = &cobra.Command{
	Use:   "employment-changed-at-date",
	Short: "Fetch employments registered as changed within a timestamp window",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetEmploymentChangedAtDateParams(stringFlag(cmd, "institution"))
		p.PersonCivilRegistrationIdentifier = stringFlag(cmd, "cpr")
		p.Employment = stringFlag(cmd, "employment")
		p.Department = stringFlag(cmd, "department")
		p.DepartmentLevel = stringFlag(cmd, "department-level")
		p.FutureInformationIndicator = boolFlag(cmd, "include-future")

		var err error
		if p.StartDateTime, err = dateTimeFlag(cmd, "start-time"); err != nil {
			return err
		}
		if p.EndDateTime, err = dateTimeFlag(cmd, "end-time"); err != nil {
			return err
		}

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetEmploymentChangedAtDate(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

func addEmploymentFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("institution", "", "institution code")
	cmd.Flags().String("cpr", "", "civil registration number of one person")
	cmd.Flags().String("employment", "", "employment identifier")
	cmd.Flags().String("department", "", "department code")
	cmd.Flags().String("department-level", "", "restrict to one department level")
	_ = cmd.MarkFlagRequired("institution")
}

func init() {
	addEmploymentFilterFlags(employmentCmd)
	employmentCmd.Flags().Bool("include-passive", false, "include passive employments")
	employmentCmd.Flags().String("effective-date", "", "date the employments must be valid on (default today)")
	rootCmd.AddCommand(employmentCmd)

	addEmploymentFilterFlags(employmentChangedCmd)
	employmentChangedCmd.Flags().String("start-date", "", "start of the change window (default today)")
	employmentChangedCmd.Flags().String("end-date", "", "end of the change window (default today)")
	rootCmd.AddCommand(employmentChangedCmd)

	addEmploymentFilterFlags(employmentChangedAtDateCmd)
	employmentChangedAtDateCmd.Flags().Bool("include-future", false, "include registrations that take effect in the future")
	employmentChangedAtDateCmd.Flags().String("start-time", "", "start of the registration window (default today 00:00:00)")
	employmentChangedAtDateCmd.Flags().String("end-time", "", "end of the registration window (default today 23:59:59)")
	rootCmd.AddCommand(employmentChangedAtDateCmd)
}
