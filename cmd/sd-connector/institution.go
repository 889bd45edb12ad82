package main

import (
	"github.com/spf13/cobra"

	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

var institutionCmd = &cobra.Command{
	Use:   "institution",
	Short: "Fetch institution records",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetInstitutionParams()
		p.Region = params.Identifier(stringFlag(cmd, "region"))
		p.Institution = params.Identifier(stringFlag(cmd, "institution"))
		p.AdministrationIndicator = boolFlag(cmd, "administration")
		p.ContactInformationIndicator = boolFlag(cmd, "contact-information")
		p.PostalAddressIndicator = boolFlag(cmd, "postal-address")
		p.ProductionUnitIndicator = boolFlag(cmd, "production-unit")

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetInstitution(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

var organizationCmd = &cobra.Command{
	Use:   "organization",
	Short: "Fetch the organization structure of an institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetOrganizationParams()
		p.Institution = params.Identifier(stringFlag(cmd, "institution"))

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

		record, err := client.GetOrganization(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

func init() {
	institutionCmd.Flags().String("region", "", "region code or id")
	institutionCmd.Flags().String("institution", "", "institution code or id")
	institutionCmd.Flags().Bool("administration", false, "include administration details")
	institutionCmd.Flags().Bool("contact-information", false, "include contact information")
	institutionCmd.Flags().Bool("postal-address", false, "include postal addresses")
	institutionCmd.Flags().Bool("production-unit", false, "include production units")
	rootCmd.AddCommand(institutionCmd)

	organizationCmd.Flags().String("institution", "", "institution code or id")
	organizationCmd.Flags().String("start-date", "", "start of the effective window (default today)")
	organizationCmd.Flags().String("end-date", "", "end of the effective window (default today)")
	rootCmd.AddCommand(organizationCmd)
}
