package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/magenta-aps/sd-connector/pkg/sd"
)

var rootCmd = &cobra.Command{
	Use:   "sd-connector",
	Short: "Query the SD organization and employment web services",
	Long: `Query the SD organization and employment web services.

Credentials can be given as flags, as SD_USERNAME and SD_PASSWORD in the
environment, or interactively. Every subcommand prints the returned
records as XML on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringP("username", "u", "", "service account user name")
	pf.StringP("password", "p", "", "service account password (prompted when empty)")
	pf.String("base-url", "", "base location of the service descriptors")
	pf.String("endpoints-file", "", "yaml file overriding the descriptor locations")

	viper.SetEnvPrefix("sd")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("username", pf.Lookup("username"))
	_ = viper.BindPFlag("password", pf.Lookup("password"))
	_ = viper.BindPFlag("base-url", pf.Lookup("base-url"))
	_ = viper.BindPFlag("endpoints-file", pf.Lookup("endpoints-file"))
}

// newServiceClient assembles a client from the persistent flags and their
// environment fallbacks, prompting for the password as a last resort.
func newServiceClient(cmd *cobra.Command) (*sd.Client, error) {
	username := viper.GetString("username")
	if username == "" {
		return nil, fmt.Errorf("no username given, use --username or SD_USERNAME")
	}

	password := viper.GetString("password")
	if password == "" {
		var err error
		password, err = promptForPassword(cmd)
		if err != nil {
			return nil, err
		}
	}

	options := []sd.ClientOption{}

	if baseURL := viper.GetString("base-url"); baseURL != "" {
		options = append(options, sd.BaseURL(baseURL))
	}

	if path := viper.GetString("endpoints-file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open endpoints file: %s", err.Error())
		}
		defer f.Close()

		cfg, err := sd.LoadEndpointConfig(f)
		if err != nil {
			return nil, fmt.Errorf("failed to load endpoints file: %s", err.Error())
		}

		options = append(options, sd.Endpoints(cfg.Endpoints...))
		if viper.GetString("base-url") == "" {
			options = append(options, sd.BaseURL(cfg.BaseURL))
		}
	}

	return sd.NewClient(cmd.Context(), username, password, options...)
}

func promptForPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password given and stdin is not a terminal, use --password or SD_PASSWORD")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}

	return string(password), nil
}

func printRecord(cmd *cobra.Command, record *sd.Record) {
	fmt.Fprintln(cmd.OutOrStdout(), record.String())
}

func stringFlag(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

func boolFlag(cmd *cobra.Command, name string) bool {
	value, _ := cmd.Flags().GetBool(name)
	return value
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	return parseDate(stringFlag(cmd, name))
}

func dateTimeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	return parseDateTime(stringFlag(cmd, name))
}

// parseDate accepts dates on the same form the service itself uses.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return d, nil
}

func parseDateTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	d, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, expected YYYY-MM-DD HH:MM:SS", value)
	}

	return d, nil
}
