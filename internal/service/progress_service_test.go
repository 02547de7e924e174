package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/events"
	"github.com/rankers-app/rankers-api/internal/store"
)

func TestProgressService_CompleteTopic(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	user := f.newUser(t)

	topic, ok := catalog.TopicByID("p-1")
	require.True(t, ok)

	result, err := f.svc.CompleteTopic(ctx, user.ID, "p-1")
	require.NoError(t, err)
	assert.Equal(t, topic.XPReward, result.XPDelta)
	assert.Contains(t, result.CompletedTopics, "p-1")

	// Persisted through the stores, not just in the result.
	stored, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, topic.XPReward, stored.XP)

	completed, err := f.svc.CompletedTopics(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, completed)

	assert.Len(t, f.emitter.ofType(events.EventTopicCompleted), 1)
}

func TestProgressService_CompleteTopic_Idempotent(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	user := f.newUser(t)

	first, err := f.svc.CompleteTopic(ctx, user.ID, "p-1")
	require.NoError(t, err)

	second, err := f.svc.CompleteTopic(ctx, user.ID, "p-1")
	require.NoError(t, err)
	assert.Zero(t, second.XPDelta)
	assert.Equal(t, first.User.XP, second.User.XP)

	// Only the first completion emits an event.
	assert.Len(t, f.emitter.ofType(events.EventTopicCompleted), 1)
}

func TestProgressService_CompleteTopic_UnknownTopic(t *testing.T) {
	f := newProgressFixture(t)
	user := f.newUser(t)

	_, err := f.svc.CompleteTopic(context.Background(), user.ID, "no-such-topic")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestProgressService_CompleteTopic_UnknownUser(t *testing.T) {
	f := newProgressFixture(t)

	_, err := f.svc.CompleteTopic(context.Background(), uuid.New(), "p-1")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestProgressService_DeclareMastery(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	user := f.newUser(t)

	// Not eligible before all Polity topics are done.
	_, err := f.svc.DeclareMastery(ctx, user.ID, domain.SubjectPolity)
	assert.ErrorIs(t, err, ErrNotEligible)

	f.completeSubject(t, user, domain.SubjectPolity)

	eligible, err := f.svc.Eligibility(ctx, user.ID, domain.SubjectPolity)
	require.NoError(t, err)
	assert.True(t, eligible)

	result, err := f.svc.DeclareMastery(ctx, user.ID, domain.SubjectPolity)
	require.NoError(t, err)
	assert.True(t, result.Declared)
	assert.True(t, result.User.HasMastered(domain.SubjectPolity))

	badge, ok := catalog.BadgeForSubject(domain.SubjectPolity)
	require.True(t, ok)
	assert.True(t, result.User.HasBadge(badge.ID))

	// Achievement post lands at the head of the feed.
	feed, err := f.posts.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, feed)
	assert.Equal(t, domain.PostTypeAchievement, feed[0].Type)
	assert.Equal(t, user.ID, feed[0].UserID)

	assert.Len(t, f.emitter.ofType(events.EventMasteryUnlock), 1)

	// Declaring again is refused.
	_, err = f.svc.DeclareMastery(ctx, user.ID, domain.SubjectPolity)
	assert.ErrorIs(t, err, ErrAlreadyMastered)
	assert.Len(t, f.emitter.ofType(events.EventMasteryUnlock), 1)
}

func TestProgressService_DeclareMastery_UnknownSubject(t *testing.T) {
	f := newProgressFixture(t)
	user := f.newUser(t)

	_, err := f.svc.DeclareMastery(context.Background(), user.ID, domain.Subject("Astrology"))
	assert.ErrorIs(t, err, domain.ErrUnknownSubject)
}

func TestProgressService_ShareNote(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	user := f.newUser(t)

	// Without an image: a post but no XP.
	plain, err := f.svc.ShareNote(ctx, user.ID, "Preamble", "")
	require.NoError(t, err)
	assert.Zero(t, plain.XPDelta)
	assert.Empty(t, plain.Post.NoteImageURL)

	// With an image: uploaded URL attached and bonus XP awarded.
	withImage, err := f.svc.ShareNote(ctx, user.ID, "Preamble", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, 50, withImage.XPDelta)
	assert.Equal(t, "https://media.test/note.png", withImage.Post.NoteImageURL)

	// Shares are never deduplicated.
	feed, err := f.posts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 2)

	assert.Len(t, f.emitter.ofType(events.EventNoteShared), 2)
}

func TestProgressService_ShareNote_MediaDisabled(t *testing.T) {
	f := newProgressFixture(t)
	f.svc.uploader = nil
	user := f.newUser(t)

	_, err := f.svc.ShareNote(context.Background(), user.ID, "Preamble", "data:image/png;base64,AAAA")
	assert.ErrorIs(t, err, ErrMediaDisabled)
}

func TestProgressService_LevelUpEmittedOncePerBoundary(t *testing.T) {
	f := newProgressFixture(t)
	ctx := context.Background()
	user := f.newUser(t)

	// The full catalog is worth 800 XP, below the first boundary.
	for _, topic := range catalog.Topics() {
		_, err := f.svc.CompleteTopic(ctx, user.ID, topic.ID)
		require.NoError(t, err)
	}
	assert.Empty(t, f.emitter.ofType(events.EventLevelUp))

	// The mastery bonus pushes the total to 1300 and across level 2.
	result, err := f.svc.DeclareMastery(ctx, user.ID, domain.SubjectPolity)
	require.NoError(t, err)
	require.NotNil(t, result.LevelUp)
	assert.Equal(t, 2, result.User.Level)

	levelUps := f.emitter.ofType(events.EventLevelUp)
	require.Len(t, levelUps, 1)
	assert.Equal(t, 2, levelUps[0].Level)
}
