package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration carprice runs with: the config file (or built-in
defaults) with environment variables substituted and flag overrides for logging
applied. With --validate only the validation result is printed.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var validateOnly bool

func init() {
	configCmd.Flags().BoolVar(&validateOnly, "validate", false, "only validate the configuration")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	// Execute reports the error on stderr; stdout only carries valid output.
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch {
	case validateOnly && jsonOut:
		data = []byte(`{"valid":true}` + "\n")
	case validateOnly:
		data = []byte("Configuration is valid\n")
	case jsonOut:
		data, err = json.MarshalIndent(appConfig, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(appConfig)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
