package catalog

import (
	"testing"

	"github.com/rankers-app/rankers-api/internal/domain"
)

func TestEverySubjectHasConfig(t *testing.T) {
	for _, subject := range domain.AllSubjects() {
		info, ok := Info(subject)
		if !ok {
			t.Errorf("Subject %s missing from configuration", subject)
			continue
		}
		if info.Icon == "" || info.Color == "" {
			t.Errorf("Subject %s has incomplete presentation config", subject)
		}
		if info.Badge != nil && info.Badge.Subject != subject {
			t.Errorf("Subject %s carries badge for %s", subject, info.Badge.Subject)
		}
	}
}

func TestTopicsValidateAndBelongToKnownSubjects(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range Topics() {
		if err := topic.Validate(); err != nil {
			t.Errorf("Topic %s fails validation: %v", topic.ID, err)
		}
		if seen[topic.ID] {
			t.Errorf("Duplicate topic id %s", topic.ID)
		}
		seen[topic.ID] = true
		if _, ok := Info(topic.Subject); !ok {
			t.Errorf("Topic %s references unconfigured subject %s", topic.ID, topic.Subject)
		}
	}
}

func TestTopicLookups(t *testing.T) {
	topic, ok := TopicByID("p-1")
	if !ok {
		t.Fatal("Expected topic p-1 to exist")
	}
	if topic.Subject != domain.SubjectPolity {
		t.Errorf("Expected p-1 to belong to Polity, got %s", topic.Subject)
	}

	if _, ok := TopicByID("nope"); ok {
		t.Error("Expected lookup miss for unknown id")
	}

	polity := TopicsBySubject(domain.SubjectPolity)
	if len(polity) != 2 {
		t.Errorf("Expected 2 Polity topics, got %d", len(polity))
	}
}

func TestBadgesMapToDistinctSubjects(t *testing.T) {
	bySubject := map[domain.Subject]string{}
	for _, badge := range Badges() {
		if prev, dup := bySubject[badge.Subject]; dup {
			t.Errorf("Subjects %s has two badges: %s and %s", badge.Subject, prev, badge.ID)
		}
		bySubject[badge.Subject] = badge.ID
	}

	badge, ok := BadgeForSubject(domain.SubjectPolity)
	if !ok || badge.ID != "b-polity" {
		t.Errorf("Expected b-polity for Polity, got %+v ok=%v", badge, ok)
	}
	if _, ok := BadgeForSubject(domain.SubjectCurrentAffairs); ok {
		t.Error("Expected Current Affairs to have no badge")
	}
}

func TestLeaderboardIsOrderedByRank(t *testing.T) {
	entries := Leaderboard()
	if len(entries) == 0 {
		t.Fatal("Expected a non-empty leaderboard snapshot")
	}
	for i, entry := range entries {
		if entry.Rank != i+1 {
			t.Errorf("Entry %d has rank %d", i, entry.Rank)
		}
	}
}

func TestSeedPostsValidate(t *testing.T) {
	for _, post := range SeedPosts() {
		if err := post.Validate(); err != nil {
			t.Errorf("Seed post %s fails validation: %v", post.ID, err)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Topics()
	first[0].Title = "tampered"

	fresh := Topics()
	if fresh[0].Title == "tampered" {
		t.Error("Topics() exposed the fixture backing array")
	}
}
