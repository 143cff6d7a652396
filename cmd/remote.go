package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"bravia/internal/bravia"
)

// remoteCodes maps CLI names to IRCC codes. IRCC does not require API
// discovery, but the remote command still connects first so typos in
// the address fail loudly.
var remoteCodes = map[string]bravia.RemoteCode{
	"power":        bravia.PowerButton,
	"power-on":     bravia.PowerOn,
	"power-off":    bravia.PowerOff,
	"volume-up":    bravia.VolumeUp,
	"volume-down":  bravia.VolumeDown,
	"mute":         bravia.Mute,
	"channel-up":   bravia.ChannelUp,
	"channel-down": bravia.ChannelDown,
	"up":           bravia.Up,
	"down":         bravia.Down,
	"left":         bravia.Left,
	"right":        bravia.Right,
	"confirm":      bravia.Confirm,
	"home":         bravia.Home,
	"menu":         bravia.Menu,
	"options":      bravia.Options,
	"back":         bravia.Back,
	"input":        bravia.Input,
	"hdmi1":        bravia.HDMI1,
	"hdmi2":        bravia.HDMI2,
	"hdmi3":        bravia.HDMI3,
	"hdmi4":        bravia.HDMI4,
	"play":         bravia.Play,
	"pause":        bravia.Pause,
	"stop":         bravia.Stop,
	"rewind":       bravia.Rewind,
	"forward":      bravia.FastForward,
	"0":            bravia.Num0,
	"1":            bravia.Num1,
	"2":            bravia.Num2,
	"3":            bravia.Num3,
	"4":            bravia.Num4,
	"5":            bravia.Num5,
	"6":            bravia.Num6,
	"7":            bravia.Num7,
	"8":            bravia.Num8,
	"9":            bravia.Num9,
}

var remoteCmd = &cobra.Command{
	Use:   "remote <code>",
	Short: "Send a remote control key press",
	Long: `Send an IRCC remote control command to the device.
Run "bravia list remote" for the available codes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, ok := remoteCodes[args[0]]
		if !ok {
			return fmt.Errorf("unknown remote code: %s", args[0])
		}

		client, target, err := connectClient()
		if err != nil {
			return err
		}

		log.Info().
			Str("host", target).
			Str("code", args[0]).
			Msg("Sending remote control command")

		if err := client.SendRemoteCode(code); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <remote|control>",
	Short: "List available remote codes or control methods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "remote", "codes":
			names := make([]string, 0, len(remoteCodes))
			for name := range remoteCodes {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println("Available remote control codes:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
		case "control", "methods":
			fmt.Println("Available control API methods:")
			for _, name := range controlMethodNames() {
				fmt.Printf("  %s\n", name)
			}
		default:
			return fmt.Errorf("unknown list type: %s (use 'remote' or 'control')", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(listCmd)
}
