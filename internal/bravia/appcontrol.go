package bravia

import (
	"encoding/json"
	"fmt"
)

const appControlEndpoint = "appControl"

// Application is one launchable application on the device. Icon is
// empty when the application has none.
type Application struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
	Icon  string `json:"icon,omitempty"`
}

// ApplicationStatus is the on/off state of a built-in application such
// as textInput, cursorDisplay or webBrowse.
type ApplicationStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// WebAppStatus reports whether the WebAppRuntime is active and which
// URL it has open.
type WebAppStatus struct {
	Active bool   `json:"active"`
	URL    string `json:"url,omitempty"`
}

// AppControlService launches applications and drives the accompanying
// manipulations such as the software keyboard.
type AppControlService struct {
	c *Client
}

// AppControl returns the appControl service.
func (c *Client) AppControl() *AppControlService {
	return &AppControlService{c: c}
}

// GetApplicationList returns the applications that SetActiveApp can
// launch.
//
// Authentication level: Private.
func (s *AppControlService) GetApplicationList() ([]Application, error) {
	raw, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(60, "getApplicationList", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var apps []Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("decode application list: %w", err)
	}
	return apps, nil
}

// GetApplicationStatusList returns the status of the built-in
// applications.
//
// Authentication level: None.
func (s *AppControlService) GetApplicationStatusList() ([]ApplicationStatus, error) {
	raw, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(55, "getApplicationStatusList", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var statuses []ApplicationStatus
	if err := json.Unmarshal(raw, &statuses); err != nil {
		return nil, fmt.Errorf("decode application status list: %w", err)
	}
	return statuses, nil
}

// GetTextForm returns the current text in the software keyboard field.
// encKey is an encryption key encrypted by the device's public key;
// when set the returned text is encrypted with it, and this client
// forwards it opaquely without performing any cryptography. Uses API
// version 1.1, which added encrypted transmission.
//
// Authentication level: Private.
func (s *AppControlService) GetTextForm(encKey string) (string, error) {
	params := map[string]any{}
	if encKey != "" {
		params["encKey"] = encKey
	}

	raw, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(60, "getTextForm", "1.1", params),
		protected: true,
		hasResult: true,
		get:       byField("text"),
	})
	if err != nil {
		return "", err
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("decode text form: %w", err)
	}
	return text, nil
}

// GetWebAppStatus returns the WebAppRuntime status and the URL of the
// current webpage.
//
// Authentication level: Private.
func (s *AppControlService) GetWebAppStatus() (WebAppStatus, error) {
	raw, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(1, "getWebAppStatus", "", nil),
		protected: true,
		hasResult: true,
	})
	if err != nil {
		return WebAppStatus{}, err
	}

	var status WebAppStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return WebAppStatus{}, fmt.Errorf("decode web app status: %w", err)
	}
	return status, nil
}

// SetActiveApp launches the application identified by uri, for example
// "localapp://webappruntime?url=<target>".
//
// Authentication level: Generic.
func (s *AppControlService) SetActiveApp(uri string) error {
	_, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(601, "setActiveApp", "", map[string]any{"uri": uri}),
		protected: true,
	})
	return err
}

// SetTextForm types text into the software keyboard field. API version
// 1.1 nests the payload as {"encKey": ..., "text": ...} to support
// encrypted transmission; every other version sends the bare string.
// The envelope version always matches the shape sent. When encKey is
// set the text must already be encrypted by the caller.
//
// Authentication level: Generic.
func (s *AppControlService) SetTextForm(text, encKey, version string) error {
	var params any = text
	if version == "1.1" {
		nested := map[string]any{"text": text}
		if encKey != "" {
			nested["encKey"] = encKey
		}
		params = nested
	}

	_, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(601, "setTextForm", version, params),
		protected: true,
	})
	return err
}

// TerminateApps terminates all applications.
//
// Authentication level: Generic.
func (s *AppControlService) TerminateApps() error {
	_, err := s.c.do(request{
		endpoint:  appControlEndpoint,
		body:      newRequestBody(55, "terminateApps", "", nil),
		protected: true,
	})
	return err
}
