package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rankers-app/rankers-api/internal/catalog"
	"github.com/rankers-app/rankers-api/internal/domain"
	"github.com/rankers-app/rankers-api/internal/events"
	"github.com/rankers-app/rankers-api/internal/platform/memstore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// capturingEmitter records every emitted event for assertions.
type capturingEmitter struct {
	mu     sync.Mutex
	events []*events.ProgressEvent
}

func (e *capturingEmitter) EmitEvent(_ context.Context, event *events.ProgressEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *capturingEmitter) ofType(eventType events.ProgressEventType) []*events.ProgressEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []*events.ProgressEvent
	for _, ev := range e.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

// fakeUploader returns a fixed URL for any payload.
type fakeUploader struct {
	noteURL  string
	videoURL string
}

func (u *fakeUploader) UploadNoteImage(_ context.Context, _ string) (string, error) {
	return u.noteURL, nil
}

func (u *fakeUploader) UploadIntroVideo(_ context.Context, _ string) (string, error) {
	return u.videoURL, nil
}

type progressFixture struct {
	users    *memstore.UserStore
	progress *memstore.ProgressStore
	posts    *memstore.PostStore
	emitter  *capturingEmitter
	svc      *ProgressService
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	f := &progressFixture{
		users:    memstore.NewUserStore(bcrypt.MinCost),
		progress: memstore.NewProgressStore(),
		posts:    memstore.NewPostStore(nil),
		emitter:  &capturingEmitter{},
	}
	f.svc = NewProgressService(f.users, f.progress, f.posts, f.emitter,
		&fakeUploader{noteURL: "https://media.test/note.png"}, nil, testLogger())
	return f
}

func (f *progressFixture) newUser(t *testing.T) *domain.User {
	t.Helper()
	user := domain.NewGuestUser("Test Aspirant")
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

// completeSubject walks the user through every catalog topic of a
// subject.
func (f *progressFixture) completeSubject(t *testing.T, user *domain.User, subject domain.Subject) {
	t.Helper()
	for _, topic := range catalog.TopicsBySubject(subject) {
		_, err := f.svc.CompleteTopic(context.Background(), user.ID, topic.ID)
		require.NoError(t, err)
	}
}
