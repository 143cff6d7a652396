package cmd

import (
	"github.com/spf13/cobra"

	"bravia/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive on-screen remote control",
	Long: `Open an interactive remote control in the terminal. Arrow keys
navigate, +/- change the volume, number keys select HDMI inputs;
press q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, target, err := connectClient()
		if err != nil {
			return err
		}
		return tui.StartRemote(target, client)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
