package gemini

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/generation"
)

func TestBuildPlanPrompt(t *testing.T) {
	t.Parallel()
	catalog := []domain.Topic{
		{ID: "p-1", Subject: domain.SubjectPolity, Title: "Basic Structure", Content: "c", XPReward: 100},
		{ID: "h-1", Subject: domain.SubjectHistory, Title: "Indus Valley", Content: "c", XPReward: 120},
	}

	prompt, err := buildPlanPrompt(
		[]domain.Subject{domain.SubjectPolity, domain.SubjectHistory},
		"2026-09-30",
		catalog,
		[]string{"p-1"},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, want := range []string{
		"Polity, History",
		"2026-09-30",
		`"id":"p-1"`,
		`"title":"Indus Valley"`,
		"already completed these topic IDs: p-1",
		"mark it as 'Revision'",
		"next 7 days only",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}

	// Only the projection goes into the prompt, not the content body.
	if strings.Contains(prompt, "xp_reward") {
		t.Error("Prompt should not embed full topic records")
	}
}

func TestParsePlanResponse(t *testing.T) {
	t.Parallel()
	valid := `{"schedule":[
		{"day":1,"date":"2026-09-01","focus":"Polity deep dive","topicIds":["p-1","p-2"]},
		{"day":2,"date":"2026-09-02","focus":"Revision","topicIds":[]}
	]}`

	plan, err := parsePlanResponse(valid)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(plan))
	}
	if plan[0].Day != 1 || plan[0].Focus != "Polity deep dive" || len(plan[0].TopicIDs) != 2 {
		t.Errorf("Entry 0 decoded wrong: %+v", plan[0])
	}

	malformed := []struct {
		name string
		text string
	}{
		{"empty body", ""},
		{"not JSON", "here is your plan!"},
		{"empty schedule", `{"schedule":[]}`},
		{"missing schedule key", `{"plan":[]}`},
		{"entry without date", `{"schedule":[{"day":1,"focus":"x","topicIds":[]}]}`},
		{"entry without focus", `{"schedule":[{"day":1,"date":"2026-09-01","topicIds":[]}]}`},
		{"entry without topicIds", `{"schedule":[{"day":1,"date":"2026-09-01","focus":"x"}]}`},
		{"entry with zero day", `{"schedule":[{"day":0,"date":"2026-09-01","focus":"x","topicIds":[]}]}`},
	}

	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePlanResponse(tc.text)
			if !errors.Is(err, generation.ErrMalformedResponse) {
				t.Errorf("Expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestCheckEnvelope(t *testing.T) {
	t.Parallel()
	if err := checkEnvelope(nil); !errors.Is(err, generation.ErrGenerationFailed) {
		t.Errorf("Expected ErrGenerationFailed for nil response, got %v", err)
	}

	empty := &genai.GenerateContentResponse{}
	if err := checkEnvelope(empty); !errors.Is(err, generation.ErrGenerationFailed) {
		t.Errorf("Expected ErrGenerationFailed for empty candidates, got %v", err)
	}

	blocked := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{FinishReason: genai.FinishReasonSafety},
		},
	}
	if err := checkEnvelope(blocked); !errors.Is(err, generation.ErrGenerationFailed) {
		t.Errorf("Expected ErrGenerationFailed for safety block, got %v", err)
	}

	ok := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "tip"}}}},
		},
	}
	if err := checkEnvelope(ok); err != nil {
		t.Errorf("Expected no error for usable envelope, got %v", err)
	}
}

func TestResponseTextAndInlineAudio(t *testing.T) {
	t.Parallel()
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "first "},
						{Text: "second"},
						{InlineData: &genai.Blob{Data: []byte{0x01, 0x00}}},
					},
				},
			},
		},
	}

	if got := responseText(resp); got != "first second" {
		t.Errorf("responseText = %q", got)
	}
	if data := inlineAudioData(resp); len(data) != 2 {
		t.Errorf("inlineAudioData returned %d bytes", len(data))
	}

	if responseText(nil) != "" || inlineAudioData(nil) != nil {
		t.Error("Expected zero values for nil response")
	}
}
