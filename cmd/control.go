package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"bravia/internal/bravia"
)

var (
	apiVersion   string
	volumeTarget string
	volumeUI     string
)

// controlCommands maps CLI method names to typed client calls. Methods
// that return nothing yield a nil result and print "ok".
var controlCommands = map[string]func(*bravia.Client, []string) (any, error){
	"power-status": func(c *bravia.Client, _ []string) (any, error) {
		return c.System().GetPowerStatus()
	},
	"power-on": func(c *bravia.Client, _ []string) (any, error) {
		return nil, c.System().SetPowerStatus(true)
	},
	"power-off": func(c *bravia.Client, _ []string) (any, error) {
		return nil, c.System().SetPowerStatus(false)
	},
	"power-saving": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return c.System().GetPowerSavingMode()
		}
		return nil, c.System().SetPowerSavingMode(args[0])
	},
	"system-info": func(c *bravia.Client, _ []string) (any, error) {
		return c.System().GetSystemInformation()
	},
	"interface-info": func(c *bravia.Client, _ []string) (any, error) {
		return c.System().GetInterfaceInformation()
	},
	"time": func(c *bravia.Client, _ []string) (any, error) {
		return c.System().GetCurrentTime(apiVersion)
	},
	"reboot": func(c *bravia.Client, _ []string) (any, error) {
		return nil, c.System().RequestReboot()
	},
	"volume-info": func(c *bravia.Client, _ []string) (any, error) {
		return c.Audio().GetVolumeInformation()
	},
	"set-volume": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("set-volume requires a volume argument (e.g. 25, +5, -5)")
		}
		return nil, c.Audio().SetAudioVolume(volumeTarget, args[0], volumeUI, apiVersion)
	},
	"set-mute": func(c *bravia.Client, args []string) (any, error) {
		return nil, c.Audio().SetAudioMute(len(args) == 0 || args[0] == "on")
	},
	"sound-settings": func(c *bravia.Client, args []string) (any, error) {
		return c.Audio().GetSoundSettings(firstOrEmpty(args))
	},
	"playing-content": func(c *bravia.Client, _ []string) (any, error) {
		return c.AvContent().GetPlayingContentInfo()
	},
	"play-content": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("play-content requires a content uri")
		}
		return nil, c.AvContent().SetPlayContent(args[0])
	},
	"content-list": func(c *bravia.Client, args []string) (any, error) {
		return c.AvContent().GetContentList(firstOrEmpty(args), -1, -1)
	},
	"scheme-list": func(c *bravia.Client, _ []string) (any, error) {
		return c.AvContent().GetSchemeList()
	},
	"source-list": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("source-list requires a scheme argument")
		}
		return c.AvContent().GetSourceList(args[0])
	},
	"input-status": func(c *bravia.Client, _ []string) (any, error) {
		return c.AvContent().GetCurrentExternalInputsStatus(apiVersion)
	},
	"app-list": func(c *bravia.Client, _ []string) (any, error) {
		return c.AppControl().GetApplicationList()
	},
	"active-app": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("active-app requires an application uri")
		}
		return nil, c.AppControl().SetActiveApp(args[0])
	},
	"text": func(c *bravia.Client, args []string) (any, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("text requires the text to type")
		}
		return nil, c.AppControl().SetTextForm(args[0], "", apiVersion)
	},
	"supported-apis": func(c *bravia.Client, args []string) (any, error) {
		return c.Guide().GetSupportedAPIInfo(args)
	},
}

var controlCmd = &cobra.Command{
	Use:   "control <method> [args]",
	Short: "Send a typed control API call",
	Long: `Send a typed control API call to the device. The call is validated
against the device's discovered capabilities before anything goes on the
wire. Run "bravia list control" for the available methods.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, ok := controlCommands[args[0]]
		if !ok {
			return fmt.Errorf("unknown control method: %s", args[0])
		}

		client, target, err := connectClient()
		if err != nil {
			return err
		}

		log.Info().
			Str("host", target).
			Str("method", args[0]).
			Msg("Sending control API command")

		result, err := run(client, args[1:])
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("ok")
			return nil
		}

		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("render result: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	},
}

func firstOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func controlMethodNames() []string {
	names := make([]string, 0, len(controlCommands))
	for name := range controlCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	controlCmd.Flags().StringVar(&apiVersion, "api-version", "", `API version for version-sensitive methods (default "1.0")`)
	controlCmd.Flags().StringVar(&volumeTarget, "target", "", "output target for set-volume (speaker, headphone)")
	controlCmd.Flags().StringVar(&volumeUI, "ui", "", "volume bar visibility for set-volume at --api-version 1.2 (on, off)")

	rootCmd.AddCommand(controlCmd)
}
