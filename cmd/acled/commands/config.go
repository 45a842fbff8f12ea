package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tensix-io/acled-client/internal/constants"
)

// configKeys are the settings the config command is willing to persist.
var configKeys = map[string]bool{
	"key":    true,
	"email":  true,
	"api":    true,
	"output": true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and persist settings in ~/.acled/config.yml",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")

			_ = table.Append("key", maskSecret(viper.GetString("key")))
			_ = table.Append("email", viper.GetString("email"))
			_ = table.Append("api", viper.GetString("api"))
			_ = table.Append("output", viper.GetString("output"))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set SETTING [VALUE]",
		Short: "Persist a configuration setting",
		Long: `Persist a setting to the config file. The API key is prompted for
without echo when no value is given on the command line.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setting := strings.ToLower(args[0])
			if !configKeys[setting] {
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, setting)
			}

			var value string
			if len(args) == 2 {
				value = args[1]
			} else if setting == "key" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Println()

				value = string(keyBytes)
			} else {
				return fmt.Errorf("%w for %q", ErrValueRequired, setting)
			}

			viper.Set(setting, value)

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", setting)

			return nil
		},
	}
}

// writeConfig persists the current viper state, creating the config file on
// first use.
func writeConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".acled", "config.yml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return os.Chmod(path, constants.ConfigFilePerm)
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	return Masked
}
