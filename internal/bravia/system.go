package bravia

import (
	"encoding/json"
	"fmt"
)

const systemEndpoint = "system"

// Time is the device clock information. The offsets are only reported
// from API version 1.1 onward.
type Time struct {
	DateTime             string `json:"dateTime"`
	TimeZoneOffsetMinute int    `json:"timeZoneOffsetMinute,omitempty"`
	DSTOffsetMinute      int    `json:"dstOffsetMinute,omitempty"`
}

// InterfaceInfo describes the REST API interface served by the device.
type InterfaceInfo struct {
	ProductCategory  string `json:"productCategory"`
	ProductName      string `json:"productName"`
	ModelName        string `json:"modelName"`
	ServerName       string `json:"serverName"`
	InterfaceVersion string `json:"interfaceVersion"`
}

// LEDIndicatorStatus is the mode and on/off state of the front LED
// indicator. An empty Status lets the device decide the behavior.
type LEDIndicatorStatus struct {
	Mode   string `json:"mode"`
	Status string `json:"status,omitempty"`
}

// NetworkSettings holds the addressing of one network interface.
type NetworkSettings struct {
	Netif    string   `json:"netif"`
	HWAddr   string   `json:"hwAddr"`
	IPAddrV4 string   `json:"ipAddrV4"`
	IPAddrV6 string   `json:"ipAddrV6"`
	Netmask  string   `json:"netmask"`
	Gateway  string   `json:"gateway"`
	DNS      []string `json:"dns"`
}

// RemoteControllerAction maps a remote control button name to the IRCC
// code the device accepts for it.
type RemoteControllerAction struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RemoteDeviceSettings is a setting related to access from remote
// devices, such as the accessPermission target.
type RemoteDeviceSettings struct {
	Target       string `json:"target"`
	CurrentValue string `json:"currentValue"`
}

// SystemInformation is general information on the device.
type SystemInformation struct {
	Product    string `json:"product"`
	Language   string `json:"language"`
	Model      string `json:"model"`
	Serial     string `json:"serial"`
	MACAddr    string `json:"macAddr"`
	Name       string `json:"name"`
	Generation string `json:"generation"`
}

// SupportedFunction is one device capability option, such as WOL with
// its MAC address as the value.
type SupportedFunction struct {
	Option string `json:"option"`
	Value  string `json:"value"`
}

// SystemService provides access to basic device functions.
type SystemService struct {
	c *Client
}

// System returns the system service.
func (c *Client) System() *SystemService {
	return &SystemService{c: c}
}

// GetCurrentTime returns the device clock. Version 1.0 (the default for
// an empty version) returns only the timestamp; 1.1 adds the timezone
// and DST offsets. The wire shape of the result differs per version: a
// bare string at 1.0, an object from 1.1 onward.
//
// Authentication level: None.
func (s *SystemService) GetCurrentTime(version string) (Time, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(51, "getCurrentTime", version, nil),
		hasResult: true,
	})
	if err != nil {
		return Time{}, err
	}

	if version == "" || version == defaultVersion {
		var dateTime string
		if err := json.Unmarshal(raw, &dateTime); err != nil {
			return Time{}, fmt.Errorf("decode current time: %w", err)
		}
		return Time{DateTime: dateTime}, nil
	}

	var t Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return Time{}, fmt.Errorf("decode current time: %w", err)
	}
	return t, nil
}

// GetInterfaceInformation returns information on the REST API interface
// provided by the device.
//
// Authentication level: None.
func (s *SystemService) GetInterfaceInformation() (InterfaceInfo, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(33, "getInterfaceInformation", "", nil),
		hasResult: true,
	})
	if err != nil {
		return InterfaceInfo{}, err
	}

	var info InterfaceInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return InterfaceInfo{}, fmt.Errorf("decode interface information: %w", err)
	}
	return info, nil
}

// GetLEDIndicatorStatus returns the current LED indicator mode.
//
// Authentication level: Generic.
func (s *SystemService) GetLEDIndicatorStatus() (LEDIndicatorStatus, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(45, "getLEDIndicatorStatus", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return LEDIndicatorStatus{}, err
	}

	var status LEDIndicatorStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return LEDIndicatorStatus{}, fmt.Errorf("decode led indicator status: %w", err)
	}
	return status, nil
}

// GetNetworkSettings returns the network settings of the given
// interface, or of all interfaces when netif is empty.
//
// Authentication level: Generic.
func (s *SystemService) GetNetworkSettings(netif string) ([]NetworkSettings, error) {
	params := map[string]any{}
	if netif != "" {
		params["netif"] = netif
	}

	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(2, "getNetworkSettings", "", params),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var settings []NetworkSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode network settings: %w", err)
	}
	return settings, nil
}

// GetPowerSavingMode returns the current power saving mode: "off",
// "low", "high" or "pictureOff".
//
// Authentication level: None.
func (s *SystemService) GetPowerSavingMode() (string, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(51, "getPowerSavingMode", "", nil),
		hasResult: true,
		get:       byField("mode"),
	})
	if err != nil {
		return "", err
	}

	var mode string
	if err := json.Unmarshal(raw, &mode); err != nil {
		return "", fmt.Errorf("decode power saving mode: %w", err)
	}
	return mode, nil
}

// GetPowerStatus returns the current power status, "active" or
// "standby". The value is kept as an open string because the device is
// the source of truth for the value set. Devices in the power off state
// may not respond at all.
//
// Authentication level: None.
func (s *SystemService) GetPowerStatus() (string, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(50, "getPowerStatus", "", nil),
		hasResult: true,
		get:       byField("status"),
	})
	if err != nil {
		return "", err
	}

	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", fmt.Errorf("decode power status: %w", err)
	}
	return status, nil
}

// GetRemoteControllerInfo returns the IRCC codes supported by the
// device's remote controller. The device returns bounds information at
// index 0 and the action list at index 1.
//
// Authentication level: None.
func (s *SystemService) GetRemoteControllerInfo() ([]RemoteControllerAction, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(54, "getRemoteControllerInfo", "", nil),
		hasResult: true,
		get:       byIndex(1),
	})
	if err != nil {
		return nil, err
	}

	var actions []RemoteControllerAction
	if err := json.Unmarshal(raw, &actions); err != nil {
		return nil, fmt.Errorf("decode remote controller info: %w", err)
	}
	return actions, nil
}

// GetRemoteDeviceSettings returns the settings related to remote device
// access for the given target, or all targets when target is empty.
//
// Authentication level: None.
func (s *SystemService) GetRemoteDeviceSettings(target string) ([]RemoteDeviceSettings, error) {
	params := map[string]any{}
	if target != "" {
		params["target"] = target
	}

	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(44, "getRemoteDeviceSettings", "", params),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var settings []RemoteDeviceSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode remote device settings: %w", err)
	}
	return settings, nil
}

// GetSystemInformation returns general information on the device.
//
// Authentication level: Private.
func (s *SystemService) GetSystemInformation() (SystemInformation, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(33, "getSystemInformation", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return SystemInformation{}, err
	}

	var info SystemInformation
	if err := json.Unmarshal(raw, &info); err != nil {
		return SystemInformation{}, fmt.Errorf("decode system information: %w", err)
	}
	return info, nil
}

// GetSystemSupportedFunction returns the device capabilities handled by
// the system service.
//
// Authentication level: None.
func (s *SystemService) GetSystemSupportedFunction() ([]SupportedFunction, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(55, "getSystemSupportedFunction", "", nil),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var functions []SupportedFunction
	if err := json.Unmarshal(raw, &functions); err != nil {
		return nil, fmt.Errorf("decode supported functions: %w", err)
	}
	return functions, nil
}

// GetWolMode reports whether the device powers on when it receives a
// Wake-on-LAN packet.
//
// Authentication level: Generic.
func (s *SystemService) GetWolMode() (bool, error) {
	raw, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(50, "getWolMode", "", nil),
		protected: true,
		hasResult: true,
		get:       byField("enabled"),
	})
	if err != nil {
		return false, err
	}

	var enabled bool
	if err := json.Unmarshal(raw, &enabled); err != nil {
		return false, fmt.Errorf("decode wol mode: %w", err)
	}
	return enabled, nil
}

// RequestReboot reboots the device.
//
// Authentication level: Generic.
func (s *SystemService) RequestReboot() error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(10, "requestReboot", "", nil),
		protected: true,
	})
	return err
}

// SetLEDIndicatorStatus changes the LED indicator mode. Callers that
// change the indicator should restore it when they terminate.
//
// Authentication level: Generic.
func (s *SystemService) SetLEDIndicatorStatus(status LEDIndicatorStatus) error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(53, "setLEDIndicatorStatus", "1.1", status),
		protected: true,
	})
	return err
}

// SetLanguage sets the device language, an ISO-639 alpha-3 code. The
// accepted values depend on the device region. "CHS" and "CHT" select
// Simplified and Traditional Chinese.
//
// Authentication level: Generic.
func (s *SystemService) SetLanguage(lang string) error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(55, "setLanguage", "", map[string]any{"language": lang}),
		protected: true,
	})
	return err
}

// SetPowerSavingMode changes the power saving mode: "off", "low",
// "high" or "pictureOff".
//
// Authentication level: Generic.
func (s *SystemService) SetPowerSavingMode(mode string) error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(52, "setPowerSavingMode", "", map[string]any{"mode": mode}),
		protected: true,
	})
	return err
}

// SetPowerStatus powers the device on (true) or puts it in standby
// (false).
//
// Authentication level: Generic.
func (s *SystemService) SetPowerStatus(status bool) error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(55, "setPowerStatus", "", map[string]any{"status": status}),
		protected: true,
	})
	return err
}

// SetWolMode changes whether the device powers on when it receives a
// Wake-on-LAN packet.
//
// Authentication level: Generic.
func (s *SystemService) SetWolMode(enabled bool) error {
	_, err := s.c.do(request{
		endpoint:  systemEndpoint,
		body:      newRequestBody(55, "setWolMode", "", map[string]any{"enabled": enabled}),
		protected: true,
	})
	return err
}
