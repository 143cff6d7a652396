package bravia

import (
	"bravia/internal/device"
)

// remoteActionMap maps action names accepted over the device action
// interface to IRCC codes.
var remoteActionMap = map[string]RemoteCode{
	"power":        PowerButton,
	"power_on":     PowerOn,
	"power_off":    PowerOff,
	"volume_up":    VolumeUp,
	"volume_down":  VolumeDown,
	"mute":         Mute,
	"channel_up":   ChannelUp,
	"channel_down": ChannelDown,
	"up":           Up,
	"down":         Down,
	"left":         Left,
	"right":        Right,
	"confirm":      Confirm,
	"home":         Home,
	"menu":         Menu,
	"back":         Back,
	"input":        Input,
	"hdmi1":        HDMI1,
	"hdmi2":        HDMI2,
	"hdmi3":        HDMI3,
	"hdmi4":        HDMI4,
	"play":         Play,
	"pause":        Pause,
	"stop":         Stop,
}

// TV exposes a connected Bravia device through the generic device
// action interface: "remote" actions become IRCC key presses, "control"
// actions call the typed service APIs.
type TV struct {
	client *Client
	info   device.Info
}

// NewTV wraps an already connected client.
func NewTV(client *Client, address string) *TV {
	return &TV{
		client: client,
		info: device.Info{
			Type:    "bravia_tv",
			Model:   "Sony Bravia",
			Address: address,
			Capabilities: []string{
				"remote_control",
				"system_control",
				"audio_control",
				"content_control",
				"app_control",
			},
		},
	}
}

// Info returns information about this device.
func (tv *TV) Info() device.Info {
	return tv.info
}

// Process routes a JSON action request to the appropriate control
// plane.
func (tv *TV) Process(actionJSON []byte) *device.ActionResponse {
	request, err := device.ParseActionRequest(actionJSON)
	if err != nil {
		return device.Fail("%v", err)
	}

	switch request.Type {
	case device.ActionRemote:
		return tv.processRemoteAction(request)
	case device.ActionControl:
		return tv.processControlAction(request)
	default:
		return device.Fail("unsupported action type: %s", request.Type)
	}
}

func (tv *TV) processRemoteAction(request *device.ActionRequest) *device.ActionResponse {
	code, ok := remoteActionMap[request.Action]
	if !ok {
		return device.Fail("unsupported remote action: %s", request.Action)
	}
	if err := tv.client.SendRemoteCode(code); err != nil {
		return device.Fail("remote request failed: %v", err)
	}
	return device.OK(request.Action)
}

func (tv *TV) processControlAction(request *device.ActionRequest) *device.ActionResponse {
	data, err := tv.runControlAction(request)
	if err != nil {
		return device.Fail("control request failed: %v", err)
	}
	return device.OK(data)
}

func (tv *TV) runControlAction(request *device.ActionRequest) (any, error) {
	c := tv.client
	switch request.Action {
	case "power_status":
		return c.System().GetPowerStatus()
	case "system_info":
		return c.System().GetSystemInformation()
	case "interface_info":
		return c.System().GetInterfaceInformation()
	case "volume_info":
		return c.Audio().GetVolumeInformation()
	case "playing_content":
		return c.AvContent().GetPlayingContentInfo()
	case "app_list":
		return c.AppControl().GetApplicationList()
	case "content_list":
		return c.AvContent().GetContentList(stringParam(request, "uri"), -1, -1)
	case "set_power":
		return nil, c.System().SetPowerStatus(boolParam(request, "status"))
	case "set_volume":
		return nil, c.Audio().SetAudioVolume(
			stringParam(request, "target"),
			stringParam(request, "volume"),
			stringParam(request, "ui"),
			stringParam(request, "version"),
		)
	case "set_mute":
		return nil, c.Audio().SetAudioMute(boolParam(request, "status"))
	case "play_content":
		return nil, c.AvContent().SetPlayContent(stringParam(request, "uri"))
	case "active_app":
		return nil, c.AppControl().SetActiveApp(stringParam(request, "uri"))
	case "text":
		return nil, c.AppControl().SetTextForm(
			stringParam(request, "text"),
			stringParam(request, "enc_key"),
			stringParam(request, "version"),
		)
	default:
		return nil, errUnsupportedAction(request.Action)
	}
}

type errUnsupportedAction string

func (e errUnsupportedAction) Error() string {
	return "unsupported control action: " + string(e)
}

func stringParam(request *device.ActionRequest, key string) string {
	value, _ := request.Parameters[key].(string)
	return value
}

func boolParam(request *device.ActionRequest, key string) bool {
	value, _ := request.Parameters[key].(bool)
	return value
}
