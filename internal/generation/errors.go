package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned for transport or remote-service
	// errors on any content-generation call, including a missing or
	// invalid API credential at call time. The underlying cause is
	// wrapped. No automatic retry beyond the client's own policy.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrNoAudioData is returned when a narration response envelope
	// contains no decodable audio payload.
	ErrNoAudioData = errors.New("no audio data in narration response")

	// ErrMalformedResponse is returned when a structured response cannot
	// be parsed against the declared schema. There is no partial-result
	// recovery; callers must treat the whole operation as failed.
	ErrMalformedResponse = errors.New("malformed response from language model")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid at construction time.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
