package bravia

import (
	"encoding/json"
	"fmt"
)

const videoEndpoint = "video"

// Candidate is one allowed value of a picture quality setting. For
// numeric targets the range is carried in Max, Min and Step; for
// non-numeric targets those fields are -1.
type Candidate struct {
	Value string  `json:"value,omitempty"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
	Step  float64 `json:"step"`
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	type alias Candidate
	tmp := alias{Max: -1, Min: -1, Step: -1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Candidate(tmp)
	return nil
}

// PictureQualitySetting is the current state of one picture quality
// target (color, brightness, contrast, pictureMode, hdrMode, ...).
type PictureQualitySetting struct {
	Target       string      `json:"target"`
	CurrentValue string      `json:"currentValue"`
	IsAvailable  bool        `json:"isAvailable"`
	Candidate    []Candidate `json:"candidate,omitempty"`
}

func (p *PictureQualitySetting) UnmarshalJSON(data []byte) error {
	type alias PictureQualitySetting
	tmp := alias{IsAvailable: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*p = PictureQualitySetting(tmp)
	return nil
}

// PictureQualityRequest sets one picture quality target to a value.
// Use GetPictureQualitySettings to learn the available targets.
type PictureQualityRequest struct {
	Target string `json:"target,omitempty"`
	Value  string `json:"value,omitempty"`
}

// VideoService provides access to picture quality functions.
type VideoService struct {
	c *Client
}

// Video returns the video service.
func (c *Client) Video() *VideoService {
	return &VideoService{c: c}
}

// GetPictureQualitySettings returns the current and supported picture
// quality settings for the target, or all targets when target is empty.
//
// Authentication level: None.
func (s *VideoService) GetPictureQualitySettings(target string) ([]PictureQualitySetting, error) {
	params := map[string]any{}
	if target != "" {
		params["target"] = target
	}

	raw, err := s.c.do(request{
		endpoint:  videoEndpoint,
		body:      newRequestBody(52, "getPictureQualitySettings", "", params),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var settings []PictureQualitySetting
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode picture quality settings: %w", err)
	}
	return settings, nil
}

// SetPictureQualitySettings changes picture quality setting items.
//
// Authentication level: Generic.
func (s *VideoService) SetPictureQualitySettings(settings []PictureQualityRequest) error {
	_, err := s.c.do(request{
		endpoint:  videoEndpoint,
		body:      newRequestBody(12, "setPictureQualitySettings", "", map[string]any{"settings": settings}),
		protected: true,
	})
	return err
}
