package generation

import (
	"context"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// Voice names one of the fixed narration voice presets offered by the
// speech backend.
type Voice string

const (
	VoiceKore   Voice = "Kore"
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
)

// DefaultVoice is used when the caller does not pick a preset.
const DefaultVoice = VoiceKore

// Narration is synthesized speech for a topic, decoded to normalized
// PCM samples. Samples are in [-1.0, 1.0), one slice entry per frame
// per channel, interleaved when Channels > 1.
type Narration struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// FrameCount returns the number of frames per channel.
func (n *Narration) FrameCount() int {
	if n.Channels == 0 {
		return 0
	}
	return len(n.Samples) / n.Channels
}

// StudyPlanEntry is one day of a generated study schedule. All four
// fields are mandatory in the response schema.
type StudyPlanEntry struct {
	Day      int      `json:"day"`
	Date     string   `json:"date"`
	Focus    string   `json:"focus"`
	TopicIDs []string `json:"topicIds"`
}

// ContentGenerator defines the boundary between the application core and
// the external generative content service. Implementations own request
// shaping, retries for transient transport failures, and response
// decoding; callers own everything after that (playback, display).
type ContentGenerator interface {
	// SynthesizeNarration produces spoken narration for a topic's content
	// text, prefixed with a fixed instructional prompt. The audio is
	// requested as single-channel 24 kHz PCM16 and returned decoded and
	// normalized. Returns ErrNoAudioData when the response envelope holds
	// no decodable payload, ErrGenerationFailed on transport or service
	// errors.
	SynthesizeNarration(ctx context.Context, topicText string, voice Voice) (*Narration, error)

	// AnalyzeQuestion sends a mentoring-persona prompt plus the question
	// and returns the raw text response. No structural validation is
	// applied to the response.
	AnalyzeQuestion(ctx context.Context, questionText string) (string, error)

	// GenerateStudyPlan builds a 7-day schedule over the topic catalog.
	// Completed topics are labeled "Revision"; exactly 7 days are
	// requested regardless of how far away the target date is. Returns
	// ErrMalformedResponse when the result does not parse against the
	// schedule schema.
	GenerateStudyPlan(
		ctx context.Context,
		subjects []domain.Subject,
		targetDate string,
		topicCatalog []domain.Topic,
		completedTopicIDs []string,
	) ([]StudyPlanEntry, error)
}
