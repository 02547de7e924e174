package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
)

func TestListSubjects(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})

	rr := s.do(t, http.MethodGet, "/api/subjects", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	subjects := decodeBody[[]SubjectResponse](t, rr)
	assert.Len(t, subjects, len(domain.AllSubjects()))

	// Badge metadata present for badge-backed subjects only.
	for _, sub := range subjects {
		_, hasBadge := catalog.BadgeForSubject(sub.Subject)
		assert.Equal(t, hasBadge, sub.Badge != nil, "subject %s", sub.Subject)
	}
}

func TestGetTopic(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})

	rr := s.do(t, http.MethodGet, "/api/topics/p-1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	topic := decodeBody[domain.Topic](t, rr)
	assert.Equal(t, "p-1", topic.ID)
	assert.Equal(t, domain.SubjectPolity, topic.Subject)

	rr = s.do(t, http.MethodGet, "/api/topics/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListTopics(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	rr := s.do(t, http.MethodGet, "/api/subjects/Polity/topics", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[TopicListResponse](t, rr)
	assert.Equal(t, domain.SubjectPolity, resp.Subject)
	assert.Len(t, resp.Topics, len(catalog.TopicsBySubject(domain.SubjectPolity)))
	assert.Empty(t, resp.CompletedTopicIDs)
	assert.False(t, resp.EligibleForMastery)
}

func TestListTopics_EscapedSubject(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	path := "/api/subjects/" + url.PathEscape(string(domain.SubjectScienceTech)) + "/topics"
	rr := s.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[TopicListResponse](t, rr)
	assert.Equal(t, domain.SubjectScienceTech, resp.Subject)
}

func TestListTopics_UnknownSubject(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	rr := s.do(t, http.MethodGet, "/api/subjects/Astrology/topics", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompleteTopic(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	topic, ok := catalog.TopicByID("p-1")
	require.True(t, ok)

	rr := s.do(t, http.MethodPost, "/api/topics/p-1/complete", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[CompletionResponse](t, rr)
	assert.Equal(t, topic.XPReward, resp.XPAwarded)
	assert.Equal(t, topic.XPReward, resp.User.XP)
	assert.Contains(t, resp.CompletedTopicIDs, "p-1")

	// Repeat completion awards nothing.
	rr = s.do(t, http.MethodPost, "/api/topics/p-1/complete", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	repeat := decodeBody[CompletionResponse](t, rr)
	assert.Zero(t, repeat.XPAwarded)
	assert.Equal(t, topic.XPReward, repeat.User.XP)
}

func TestCompleteTopic_Unknown(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	rr := s.do(t, http.MethodPost, "/api/topics/nope/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
