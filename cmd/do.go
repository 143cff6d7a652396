package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bravia/internal/bravia"
)

var doCmd = &cobra.Command{
	Use:   "do <action-json>",
	Short: "Execute a JSON action through the device interface",
	Long: `Execute a JSON-described action, the same interface automations use.

Examples:
  bravia do '{"type":"remote","action":"volume_up"}'
  bravia do '{"type":"control","action":"power_status"}'
  bravia do '{"type":"control","action":"set_volume","parameters":{"volume":"25"}}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, target, err := connectClient()
		if err != nil {
			return err
		}

		tv := bravia.NewTV(client, target)
		response := tv.Process([]byte(args[0]))

		pretty, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return fmt.Errorf("render response: %w", err)
		}
		fmt.Println(string(pretty))

		if !response.Success {
			return fmt.Errorf("action failed: %s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doCmd)
}
