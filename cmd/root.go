package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bravia/internal/bravia"
	"bravia/internal/config"
	"bravia/internal/logger"
)

var (
	verbose    bool
	host       string
	psk        string
	deviceName string
	configPath string

	log = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "bravia",
	Short: "Control Sony Bravia TVs from the command line",
	Long: `Bravia is a client for the Sony Bravia JSON-RPC control API.
It discovers the APIs a device supports at connection time, sends typed
control calls and IRCC remote commands, and can drive devices from a
yaml config file or an interactive on-screen remote.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetSilentMode(false)
			logger.SetLevel("debug")
			log = logger.New()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&host, "host", "H", "", "device address (host or host:port)")
	rootCmd.PersistentFlags().StringVarP(&psk, "psk", "p", "", "pre-shared key configured on the device")
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "named device from the config file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.bravia.yaml)")
}

// resolveTarget picks the device address and credential from flags or
// the config file. Explicit flags win.
func resolveTarget() (string, string, error) {
	if host != "" {
		return host, psk, nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return "", "", err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", "", err
	}
	entry, err := cfg.Device(deviceName)
	if err != nil {
		return "", "", fmt.Errorf("%w (or pass --host)", err)
	}

	credential := psk
	if credential == "" {
		credential = entry.PSK
	}
	return entry.Host, credential, nil
}

// connectClient resolves the target device and connects to it,
// performing API discovery.
func connectClient() (*bravia.Client, string, error) {
	target, credential, err := resolveTarget()
	if err != nil {
		return nil, "", err
	}
	client, err := bravia.NewClient(target, credential, verbose)
	if err != nil {
		return nil, "", err
	}
	return client, target, nil
}
