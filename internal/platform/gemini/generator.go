package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/rankers-app/rankers-api/internal/config"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
)

// Fixed prompt templates. The narration prefix and the mentor persona
// are part of the product contract and must not drift per call site.
const (
	narrationPromptPrefix = "Explain this UPSC topic clearly and concisely for an aspirant: "
	mentorPromptPrefix    = "As a UPSC mentor, analyze this question and provide a strategic tip: "
)

// Generator implements generation.ContentGenerator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client

	textModel string
	ttsModel  string
}

// Compile-time interface check.
var _ generation.ContentGenerator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration. The API
// key, text model, and TTS model are required; the client is created
// eagerly so credential plumbing problems surface at startup rather than
// on the first user action.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.TextModelName == "" || cfg.TTSModelName == "" {
		return nil, fmt.Errorf("%w: model names cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:    logger,
		config:    cfg,
		client:    client,
		textModel: cfg.TextModelName,
		ttsModel:  cfg.TTSModelName,
	}, nil
}

// SynthesizeNarration requests spoken narration for the topic text and
// decodes the returned inline PCM16 payload.
func (g *Generator) SynthesizeNarration(
	ctx context.Context,
	topicText string,
	voice generation.Voice,
) (*generation.Narration, error) {
	if voice == "" {
		voice = generation.DefaultVoice
	}

	prompt := narrationPromptPrefix + topicText
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: string(voice),
				},
			},
		},
	}

	resp, err := g.callWithRetry(ctx, g.ttsModel, prompt, cfg)
	if err != nil {
		return nil, err
	}

	data := inlineAudioData(resp)
	if len(data) == 0 {
		g.logger.WarnContext(ctx, "narration response carried no audio payload",
			"model", g.ttsModel)
		return nil, generation.ErrNoAudioData
	}

	narration, err := decodePCM16(data, narrationSampleRate, narrationChannels)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "narration synthesized",
		"model", g.ttsModel,
		"voice", string(voice),
		"frames", narration.FrameCount())
	return narration, nil
}

// AnalyzeQuestion returns the raw text of a mentoring tip for the
// question. The response is passed through without structural checks.
func (g *Generator) AnalyzeQuestion(ctx context.Context, questionText string) (string, error) {
	resp, err := g.callWithRetry(ctx, g.textModel, mentorPromptPrefix+questionText, nil)
	if err != nil {
		return "", err
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty text response", generation.ErrMalformedResponse)
	}
	return text, nil
}

// planResponse is the envelope the study-plan schema declares.
type planResponse struct {
	Schedule []generation.StudyPlanEntry `json:"schedule"`
}

// GenerateStudyPlan requests a strictly-typed 7-day schedule over the
// topic catalog and parses it.
func (g *Generator) GenerateStudyPlan(
	ctx context.Context,
	subjects []domain.Subject,
	targetDate string,
	topicCatalog []domain.Topic,
	completedTopicIDs []string,
) ([]generation.StudyPlanEntry, error) {
	prompt, err := buildPlanPrompt(subjects, targetDate, topicCatalog, completedTopicIDs)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   planSchema(),
	}

	resp, err := g.callWithRetry(ctx, g.textModel, prompt, cfg)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlanResponse(responseText(resp))
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "study plan generated",
		"model", g.textModel,
		"days", len(plan))
	return plan, nil
}

// buildPlanPrompt embeds the subject list, target date, a flattened
// id/title/subject projection of the catalog, and the completed ids.
func buildPlanPrompt(
	subjects []domain.Subject,
	targetDate string,
	topicCatalog []domain.Topic,
	completedTopicIDs []string,
) (string, error) {
	type topicProjection struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Subject string `json:"subject"`
	}

	projection := make([]topicProjection, 0, len(topicCatalog))
	for _, t := range topicCatalog {
		projection = append(projection, topicProjection{
			ID:      t.ID,
			Title:   t.Title,
			Subject: string(t.Subject),
		})
	}
	topicJSON, err := json.Marshal(projection)
	if err != nil {
		return "", fmt.Errorf("failed to marshal topic projection: %w", err)
	}

	subjectNames := make([]string, 0, len(subjects))
	for _, s := range subjects {
		subjectNames = append(subjectNames, string(s))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a realistic UPSC study plan for the following subjects: %s.\n",
		strings.Join(subjectNames, ", "))
	fmt.Fprintf(&b, "The target completion date is %s.\n", targetDate)
	fmt.Fprintf(&b, "Available topics list: %s.\n", topicJSON)
	fmt.Fprintf(&b, "The user has already completed these topic IDs: %s.\n",
		strings.Join(completedTopicIDs, ", "))
	b.WriteString("Prioritize uncompleted topics. If a topic is completed, mark it as 'Revision' in the focus field.\n")
	b.WriteString("Generate a schedule for the next 7 days only, even if the target date is further.")

	return b.String(), nil
}

// planSchema declares the response shape: an object holding a schedule
// array whose entries all carry day, date, focus, and topicIds.
func planSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"schedule": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":      {Type: genai.TypeInteger},
						"date":     {Type: genai.TypeString},
						"focus":    {Type: genai.TypeString},
						"topicIds": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{"day", "date", "focus", "topicIds"},
				},
			},
		},
		Required: []string{"schedule"},
	}
}

// parsePlanResponse decodes the schedule envelope and enforces the
// mandatory fields the schema declares. Any violation is
// ErrMalformedResponse; there is no partial-result recovery.
func parsePlanResponse(text string) ([]generation.StudyPlanEntry, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty response body", generation.ErrMalformedResponse)
	}

	var envelope planResponse
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}
	if len(envelope.Schedule) == 0 {
		return nil, fmt.Errorf("%w: schedule is empty", generation.ErrMalformedResponse)
	}
	for i, entry := range envelope.Schedule {
		if entry.Day <= 0 || entry.Date == "" || entry.Focus == "" || entry.TopicIDs == nil {
			return nil, fmt.Errorf("%w: schedule entry %d is incomplete", generation.ErrMalformedResponse, i)
		}
	}

	return envelope.Schedule, nil
}

// callWithRetry makes a Gemini API call with exponential backoff and
// jitter for transient transport errors. Service-side rejections
// (safety blocks, empty envelopes) are permanent and returned
// immediately as ErrGenerationFailed.
func (g *Generator) callWithRetry(
	ctx context.Context,
	model string,
	prompt string,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err == nil {
			if permErr := checkEnvelope(resp); permErr != nil {
				return nil, permErr
			}
			return resp, nil
		}

		lastErr = err
		g.logger.WarnContext(ctx, "gemini call failed",
			"model", model,
			"attempt", attempt+1,
			"max_attempts", maxRetries+1,
			"error", err)

		if attempt == maxRetries {
			break
		}

		// Exponential backoff with jitter:
		// delay = base * 2^attempt * (0.5 + rand(0, 0.5))
		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5) * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, ctx.Err())
		}
	}

	return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, lastErr)
}

// checkEnvelope rejects responses that cannot possibly be used. These
// are permanent failures: retrying the identical request will not help.
func checkEnvelope(resp *genai.GenerateContentResponse) error {
	if resp == nil || len(resp.Candidates) == 0 {
		return fmt.Errorf("%w: no candidates in response", generation.ErrGenerationFailed)
	}
	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return fmt.Errorf("%w: content blocked by safety filters", generation.ErrGenerationFailed)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}
	return nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// inlineAudioData returns the first inline binary payload of the first
// candidate, or nil when the envelope carries none.
func inlineAudioData(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}
