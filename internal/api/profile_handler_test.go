package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
)

func TestGetProfile(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	rr := s.do(t, http.MethodPost, "/api/topics/p-1/complete", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = s.do(t, http.MethodPost, "/api/circles/Polity", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[ProfileResponse](t, rr)
	assert.Equal(t, []string{"p-1"}, resp.CompletedTopicIDs)
	assert.Equal(t, []domain.Subject{domain.SubjectPolity}, resp.Circles)
	assert.NotZero(t, resp.User.XP)
}

func TestSetIntroVideo_MediaDisabled(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	token := s.guestToken(t)

	rr := s.do(t, http.MethodPut, "/api/profile/intro-video", token, IntroVideoRequest{
		VideoData: "data:video/mp4;base64,AAAA",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = s.do(t, http.MethodPut, "/api/profile/intro-video", token, IntroVideoRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLeaderboard(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})

	rr := s.do(t, http.MethodGet, "/api/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[LeaderboardResponse](t, rr)
	assert.Len(t, resp.Entries, len(catalog.Leaderboard()))
	// Entries come pre-sorted by XP descending.
	for i := 1; i < len(resp.Entries); i++ {
		assert.GreaterOrEqual(t, resp.Entries[i-1].XP, resp.Entries[i].XP)
	}
}
