package bravia

import (
	"encoding/json"
	"fmt"
)

const audioEndpoint = "audio"

// SoundSetting is one sound configuration item, such as the
// outputTerminal target. The device reports the current value under the
// "currentValue" key but accepts it as "value" when setting.
type SoundSetting struct {
	Target string `json:"target"`
	Value  string `json:"value"`
}

func (s *SoundSetting) UnmarshalJSON(data []byte) error {
	var raw struct {
		Target       string `json:"target"`
		Value        string `json:"value"`
		CurrentValue string `json:"currentValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Target = raw.Target
	s.Value = raw.Value
	if s.Value == "" {
		s.Value = raw.CurrentValue
	}
	return nil
}

// SpeakerSetting is one speaker configuration item, such as tvPosition
// or the subwoofer targets. Same currentValue aliasing as SoundSetting.
type SpeakerSetting struct {
	Target string `json:"target"`
	Value  string `json:"value"`
}

func (s *SpeakerSetting) UnmarshalJSON(data []byte) error {
	var raw struct {
		Target       string `json:"target"`
		Value        string `json:"value"`
		CurrentValue string `json:"currentValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Target = raw.Target
	s.Value = raw.Value
	if s.Value == "" {
		s.Value = raw.CurrentValue
	}
	return nil
}

// VolumeInformation is the volume and mute state of one output target,
// "speaker" or "headphone".
type VolumeInformation struct {
	Target    string `json:"target"`
	Volume    int    `json:"volume"`
	Mute      bool   `json:"mute"`
	MaxVolume int    `json:"maxVolume"`
	MinVolume int    `json:"minVolume"`
}

// AudioService provides access to audio functions such as volume and
// sound effects.
type AudioService struct {
	c *Client
}

// Audio returns the audio service.
func (c *Client) Audio() *AudioService {
	return &AudioService{c: c}
}

// GetSoundSettings returns the current and supported sound settings for
// the target, or all targets when target is empty.
//
// Authentication level: None.
func (s *AudioService) GetSoundSettings(target string) ([]SoundSetting, error) {
	raw, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(73, "getSoundSettings", "1.1", map[string]any{"target": target}),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var settings []SoundSetting
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode sound settings: %w", err)
	}
	return settings, nil
}

// GetSpeakerSettings returns the current and supported speaker settings
// for the target, or all targets when target is empty.
//
// Authentication level: None.
func (s *AudioService) GetSpeakerSettings(target string) ([]SpeakerSetting, error) {
	raw, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(67, "getSpeakerSettings", "", map[string]any{"target": target}),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var settings []SpeakerSetting
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode speaker settings: %w", err)
	}
	return settings, nil
}

// GetVolumeInformation returns the volume and mute status of every
// output target.
//
// Authentication level: None.
func (s *AudioService) GetVolumeInformation() ([]VolumeInformation, error) {
	raw, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(33, "getVolumeInformation", "", nil),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var info []VolumeInformation
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode volume information: %w", err)
	}
	return info, nil
}

// SetAudioMute changes the mute status.
//
// Authentication level: Generic.
func (s *AudioService) SetAudioMute(status bool) error {
	_, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(601, "setAudioMute", "", map[string]any{"status": status}),
		protected: true,
	})
	return err
}

// SetAudioVolume changes the volume of the output target ("speaker",
// "headphone", or empty for all outputs). The volume accepts an
// absolute level ("25") or a relative change ("+14", "-10"). The ui
// flag ("on"/"off") controls whether the volume bar is displayed and is
// only understood by API version 1.2, so it is attached to the request
// only when that version is selected; the envelope version always
// matches the shape sent.
//
// Authentication level: Generic.
func (s *AudioService) SetAudioVolume(target, volume, ui, version string) error {
	params := map[string]any{
		"target": target,
		"volume": volume,
	}
	if version == "1.2" && ui != "" {
		params["ui"] = ui
	}

	_, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(98, "setAudioVolume", version, params),
		protected: true,
	})
	return err
}

// SetSoundSettings changes sound setting items.
//
// Authentication level: Generic.
func (s *AudioService) SetSoundSettings(settings []SoundSetting) error {
	_, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(5, "setSoundSettings", "1.1", map[string]any{"settings": settings}),
		protected: true,
	})
	return err
}

// SetSpeakerSettings changes speaker setting items.
//
// Authentication level: Generic.
func (s *AudioService) SetSpeakerSettings(settings []SpeakerSetting) error {
	_, err := s.c.do(request{
		endpoint:  audioEndpoint,
		body:      newRequestBody(62, "setSpeakerSettings", "", map[string]any{"settings": settings}),
		protected: true,
	})
	return err
}
