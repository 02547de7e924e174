package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/platform/memstore"
	"github.com/rankers-app/rankers-api/internal/store"
)

func newCommunityService() *CommunityService {
	return NewCommunityService(
		memstore.NewPostStore(catalog.SeedPosts()),
		memstore.NewCircleStore(),
		testLogger(),
	)
}

func TestCommunityService_FeedAndLike(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, feed)

	before := feed[0].Likes
	likes, err := svc.LikePost(ctx, feed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, likes)

	_, err = svc.LikePost(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestCommunityService_Circles(t *testing.T) {
	svc := newCommunityService()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.JoinCircle(ctx, userID, domain.SubjectHistory))
	require.NoError(t, svc.JoinCircle(ctx, userID, domain.SubjectPolity))
	// Joining twice is a no-op.
	require.NoError(t, svc.JoinCircle(ctx, userID, domain.SubjectHistory))

	joined, err := svc.JoinedCircles(ctx, userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Subject{domain.SubjectHistory, domain.SubjectPolity}, joined)

	require.NoError(t, svc.LeaveCircle(ctx, userID, domain.SubjectHistory))
	joined, err = svc.JoinedCircles(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Subject{domain.SubjectPolity}, joined)

	assert.ErrorIs(t, svc.JoinCircle(ctx, userID, domain.Subject("Astrology")), domain.ErrUnknownSubject)
}
