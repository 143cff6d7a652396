package bravia

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// RemoteCode is an IRCC remote control code understood by the device.
type RemoteCode string

// Remote control codes for Sony Bravia devices.
const (
	// Power controls
	PowerButton RemoteCode = "AAAAAQAAAAEAAAAVAw=="
	PowerOn     RemoteCode = "AAAAAQAAAAEAAAAuAw=="
	PowerOff    RemoteCode = "AAAAAQAAAAEAAAAvAw=="

	// Volume controls
	VolumeUp   RemoteCode = "AAAAAQAAAAEAAAASAw=="
	VolumeDown RemoteCode = "AAAAAQAAAAEAAAATAw=="
	Mute       RemoteCode = "AAAAAQAAAAEAAAAUAw=="

	// Channel controls
	ChannelUp   RemoteCode = "AAAAAQAAAAEAAAAQAw=="
	ChannelDown RemoteCode = "AAAAAQAAAAEAAAARAw=="

	// Navigation controls
	Up      RemoteCode = "AAAAAQAAAAEAAAB0Aw=="
	Down    RemoteCode = "AAAAAQAAAAEAAAB1Aw=="
	Left    RemoteCode = "AAAAAQAAAAEAAAA0Aw=="
	Right   RemoteCode = "AAAAAQAAAAEAAAAzAw=="
	Confirm RemoteCode = "AAAAAQAAAAEAAABlAw=="

	// Menu controls
	Home    RemoteCode = "AAAAAQAAAAEAAABgAw=="
	Menu    RemoteCode = "AAAAAQAAAAEAAAAbAw=="
	Options RemoteCode = "AAAAAgAAAAEAAAA2Aw=="
	Back    RemoteCode = "AAAAAgAAAAEAAAAjAw=="

	// Input controls
	Input RemoteCode = "AAAAAQAAAAEAAAAlAw=="
	HDMI1 RemoteCode = "AAAAAgAAAAEAAABoAw=="
	HDMI2 RemoteCode = "AAAAAgAAAAEAAABpAw=="
	HDMI3 RemoteCode = "AAAAAgAAAAEAAABqAw=="
	HDMI4 RemoteCode = "AAAAAgAAAAEAAABrAw=="

	// Playback controls
	Play        RemoteCode = "AAAAAgAAAAEAAAAaAw=="
	Pause       RemoteCode = "AAAAAgAAAAEAAAAZAw=="
	Stop        RemoteCode = "AAAAAgAAAAEAAAAYAw=="
	Rewind      RemoteCode = "AAAAAgAAAAEAAAAbAw=="
	FastForward RemoteCode = "AAAAAgAAAAEAAAAcAw=="

	// Number keys
	Num0 RemoteCode = "AAAAAQAAAAEAAAAJAw=="
	Num1 RemoteCode = "AAAAAQAAAAEAAAAAAw=="
	Num2 RemoteCode = "AAAAAQAAAAEAAAABAw=="
	Num3 RemoteCode = "AAAAAQAAAAEAAAACAw=="
	Num4 RemoteCode = "AAAAAQAAAAEAAAADAw=="
	Num5 RemoteCode = "AAAAAQAAAAEAAAAEAw=="
	Num6 RemoteCode = "AAAAAQAAAAEAAAAFAw=="
	Num7 RemoteCode = "AAAAAQAAAAEAAAAGAw=="
	Num8 RemoteCode = "AAAAAQAAAAEAAAAHAw=="
	Num9 RemoteCode = "AAAAAQAAAAEAAAAIAw=="
)

const irccEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/" s:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <s:Body>
    <u:X_SendIRCC xmlns:u="urn:schemas-sony-com:service:IRCC:1">
      <IRCCCode>%s</IRCCCode>
    </u:X_SendIRCC>
  </s:Body>
</s:Envelope>`

// SendRemoteCode emulates a remote control key press. IRCC commands
// ride a SOAP envelope on a dedicated endpoint rather than the JSON-RPC
// dispatcher, so the capability cache does not apply; the same
// pre-shared key header is used.
func (c *Client) SendRemoteCode(code RemoteCode) error {
	soapBody := fmt.Sprintf(irccEnvelope, string(code))

	url := c.baseURL + "IRCC"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(soapBody))
	if err != nil {
		return fmt.Errorf("create ircc request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"urn:schemas-sony-com:service:IRCC:1#X_SendIRCC"`)
	req.Header.Set("X-Auth-PSK", c.credential)

	c.logger.Debug().
		Str("url", url).
		Str("code", string(code)).
		Msg("Sending IRCC remote request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send ircc request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("IRCC request failed")
		return &StatusError{StatusCode: resp.StatusCode}
	}

	return nil
}
