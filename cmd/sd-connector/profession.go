package main

import (
	"github.com/spf13/cobra"

	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

var professionCmd = &cobra.Command{
	Use:   "profession",
	Short: "Fetch the professions known to an institution",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params.NewGetProfessionParams(stringFlag(cmd, "institution"))
		p.JobPosition = stringFlag(cmd, "job-position")

		client, err := newServiceClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetProfession(cmd.Context(), p)
		if err != nil {
			return err
		}

		printRecord(cmd, record)
		return nil
	},
}

func init() {
	professionCmd.Flags().String("institution", "", "institution code")
	professionCmd.Flags().String("job-position", "", "restrict to one job position")
	_ = professionCmd.MarkFlagRequired("institution")
	rootCmd.AddCommand(professionCmd)
}
