package bravia

const videoScreenEndpoint = "videoScreen"

// VideoScreenService provides access to video screen functions. These
// APIs act on the device state at call time, which can vary with the
// current input source.
type VideoScreenService struct {
	c *Client
}

// VideoScreen returns the videoScreen service.
func (c *Client) VideoScreen() *VideoScreenService {
	return &VideoScreenService{c: c}
}

// SetSceneSetting changes the scene of the current input source:
// "auto", "auto24pSync" or "general".
//
// Authentication level: Generic.
func (s *VideoScreenService) SetSceneSetting(value string) error {
	_, err := s.c.do(request{
		endpoint:  videoScreenEndpoint,
		body:      newRequestBody(40, "setSceneSetting", "", map[string]any{"value": value}),
		protected: true,
	})
	return err
}
