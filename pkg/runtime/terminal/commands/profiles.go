package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netops-tools/te-reporter/pkg/services/config"
)

type ProfilesCmd struct {
	credsFile string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles available in the credentials file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.credsFile, "credentials", "",
		"Path to the credentials file (default is $HOME/.thousandeyes/credentials)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	path := pc.credsFile
	if path == "" {
		var err error
		path, err = config.DefaultCredentialsPath()
		if err != nil {
			return err
		}
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to open credentials file: %w", err)
	}

	profiles := registry.GetProfiles()
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n",
		path,
		strings.Join(profiles, "\n"))

	return nil
}
