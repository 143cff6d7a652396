package bravia

import (
	"encoding/json"
	"fmt"
)

const avContentEndpoint = "avContent"

// Content is one entry of a content list.
type Content struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
	// Index within the list, starting from the stIdx of the request.
	// -1 means the content itself was specified by URI.
	Index int `json:"index"`
}

// ExternalInputStatus describes one external input of the device. Icon
// is a meta URI ("meta:hdmi", "meta:composite", ...) hinting which icon
// a UI should show. Status reports signal detection and is empty on API
// version 1.0.
type ExternalInputStatus struct {
	Icon       string `json:"icon"`
	Connection bool   `json:"connection"`
	Label      string `json:"label"`
	Title      string `json:"title"`
	URI        string `json:"uri"`
	Status     string `json:"status,omitempty"`
}

// PlayingContentInfo identifies the currently playing content or the
// currently selected input.
type PlayingContentInfo struct {
	Source string `json:"source"`
	Title  string `json:"title"`
	URI    string `json:"uri"`
}

// AvContentService provides access to the device's AV content input,
// output and playback control.
type AvContentService struct {
	c *Client
}

// AvContent returns the avContent service.
func (c *Client) AvContent() *AvContentService {
	return &AvContentService{c: c}
}

// GetContentCount returns the number of contents under the source URI.
// contentType narrows the count to one content type when non-empty. The
// target parameter is only understood by API version 1.1, so it is
// attached to the request only when that version is selected.
//
// Authentication level: Private.
func (s *AvContentService) GetContentCount(source, contentType, target, version string) (int, error) {
	params := map[string]any{"source": source}
	if contentType != "" {
		params["type"] = contentType
	}
	if version == "1.1" && target != "" {
		params["target"] = target
	}

	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(11, "getContentCount", version, params),
		protected: true,
		hasResult: true,
		get:       byField("count"),
	})
	if err != nil {
		return 0, err
	}

	var count int
	if err := json.Unmarshal(raw, &count); err != nil {
		return 0, fmt.Errorf("decode content count: %w", err)
	}
	return count, nil
}

// GetContentList returns the contents under the URI, or everything the
// device supports when uri is empty. stIdx and cnt page through large
// lists; negative values leave them to the device defaults (start 0,
// count 50). The maximum count per request is device specific.
//
// Authentication level: Private.
func (s *AvContentService) GetContentList(uri string, stIdx, cnt int) ([]Content, error) {
	params := map[string]any{}
	if uri != "" {
		params["uri"] = uri
	}
	if stIdx >= 0 {
		params["stIdx"] = stIdx
	}
	if cnt >= 0 {
		params["cnt"] = cnt
	}

	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(88, "getContentList", "1.5", params),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var contents []Content
	if err := json.Unmarshal(raw, &contents); err != nil {
		return nil, fmt.Errorf("decode content list: %w", err)
	}
	return contents, nil
}

// GetCurrentExternalInputsStatus returns the status of all external
// input sources.
//
// Authentication level: None.
func (s *AvContentService) GetCurrentExternalInputsStatus(version string) ([]ExternalInputStatus, error) {
	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(105, "getCurrentExternalInputsStatus", version, nil),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var inputs []ExternalInputStatus
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("decode external input status: %w", err)
	}
	return inputs, nil
}

// GetSchemeList returns the URI schemes the device can handle, the
// first step of content discovery before GetSourceList and
// GetContentList.
//
// Authentication level: None.
func (s *AvContentService) GetSchemeList() ([]string, error) {
	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(1, "getSchemeList", "", nil),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}
	return flattenValues(raw, "scheme list")
}

// GetSourceList returns the sources available in the scheme.
//
// Authentication level: None.
func (s *AvContentService) GetSourceList(scheme string) ([]string, error) {
	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(1, "getSourceList", "", map[string]any{"scheme": scheme}),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}
	return flattenValues(raw, "source list")
}

// GetPlayingContentInfo returns information on the currently playing
// content or selected input.
//
// Authentication level: Private.
func (s *AvContentService) GetPlayingContentInfo() (PlayingContentInfo, error) {
	raw, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(103, "getPlayingContentInfo", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return PlayingContentInfo{}, err
	}

	var info PlayingContentInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return PlayingContentInfo{}, fmt.Errorf("decode playing content info: %w", err)
	}
	return info, nil
}

// SetPlayContent plays the content identified by a URI obtained from
// GetContentList.
//
// Authentication level: Generic.
func (s *AvContentService) SetPlayContent(uri string) error {
	_, err := s.c.do(request{
		endpoint:  avContentEndpoint,
		body:      newRequestBody(101, "setPlayContent", "", map[string]any{"uri": uri}),
		protected: true,
	})
	return err
}

// flattenValues collects the values of a list of single-entry objects,
// the shape the device uses for scheme and source lists.
func flattenValues(raw json.RawMessage, what string) ([]string, error) {
	var entries []map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	values := make([]string, 0, len(entries))
	for _, entry := range entries {
		for _, v := range entry {
			values = append(values, v)
		}
	}
	return values, nil
}
