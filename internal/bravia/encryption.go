package bravia

import (
	"encoding/json"
	"fmt"
)

const encryptionEndpoint = "encryption"

// EncryptionService provides access to encryption service APIs. The
// client never performs cryptography itself; callers encrypt their
// payloads with the key obtained here and the encrypted strings are
// forwarded opaquely.
type EncryptionService struct {
	c *Client
}

// Encryption returns the encryption service.
func (c *Client) Encryption() *EncryptionService {
	return &EncryptionService{c: c}
}

// GetPublicKey returns the device's RSA public key.
//
// Authentication level: None.
func (s *EncryptionService) GetPublicKey() (string, error) {
	raw, err := s.c.do(request{
		endpoint:  encryptionEndpoint,
		body:      newRequestBody(1, "getPublicKey", "", nil),
		hasResult: true,
		get:       byField("publicKey"),
	})
	if err != nil {
		return "", err
	}

	var key string
	if err := json.Unmarshal(raw, &key); err != nil {
		return "", fmt.Errorf("decode public key: %w", err)
	}
	return key, nil
}
