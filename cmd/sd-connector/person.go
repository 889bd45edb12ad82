package main

import (
	"github.com/spf13/cobra"

	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Fetch person records for an institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetPersonParams(stringFlag(cmd, "institution"))
		p.PersonCivilRegistrationIdentifier = stringFlag(cmd, "cpr")
		p.Employment = stringFlag(cmd, "employment")
		p.Department = stringFlag(cmd, "department")
		p.DepartmentLevel = stringFlag(cmd, "department-level")
		p.StatusPassiveIndicator = boolFlag(cmd, "include-passive")
		p.ContactInformationIndicator = boolFlag(cmd, "contact-information")
		p.PostalAddressIndicator = boolFlag(cmd, "postal-address")

		var err error
		if p.EffectiveDate, err = dateFlag(cmd, "effective-date"); err != nil {
			return err
		}

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetPerson(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

var personChangedAtDateCmd = &cobra.Command{
	Use:   "person-changed-at-date",
	Short: "Fetch persons registered as changed within a timestamp window",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetPersonChangedAtDateParams(stringFlag(cmd, "institution"))
		p.PersonCivilRegistrationIdentifier = stringFlag(cmd, "cpr")
		p.Employment = stringFlag(cmd, "employment")
		p.Department = stringFlag(cmd, "department")
		p.DepartmentLevel = stringFlag(cmd, "department-level")
		p.ContactInformationIndicator = boolFlag(cmd, "contact-information")
		p.PostalAddressIndicator = boolFlag(cmd, "postal-address")

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

		record, err := client.GetPersonChangedAtDate(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

func addPersonFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("institution", "", "institution code")
	cmd.Flags().String("cpr", "", "civil registration number of one person")
	cmd.Flags().String("employment", "", "employment identifier")
	cmd.Flags().String("department", "", "department code")
	cmd.Flags().String("department-level", "", "restrict to one department level")
	cmd.Flags().Bool("contact-information", false, "include contact information")
	cmd.Flags().Bool("postal-address", false, "include postal addresses")
	_ = cmd.MarkFlagRequired("institution")
}

func init() {
	addPersonFilterFlags(personCmd)
	personCmd.Flags().Bool("include-passive", false, "include persons with only passive employments")
	personCmd.Flags().String("effective-date", "", "date the persons must be employed on (default today)")
	rootCmd.AddCommand(personCmd)

	addPersonFilterFlags(personChangedAtDateCmd)
	personChangedAtDateCmd.Flags().String("start-time", "", "start of the registration window (default today 00:00:00)")
	personChangedAtDateCmd.Flags().String("end-time", "", "end of the registration window (default today 23:59:59)")
	rootCmd.AddCommand(personChangedAtDateCmd)
}
