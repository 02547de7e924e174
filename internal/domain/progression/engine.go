package progression

import (
	"fmt"
	"time"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// LevelUp reports that an XP award pushed the user across a level
// boundary. It is produced at most once per operation, for the boundary
// crossing itself, never per unit of XP gained within the same band.
type LevelUp struct {
	Level int
}

// CompletionResult is the outcome of CompleteTopic.
type CompletionResult struct {
	User            *domain.User
	CompletedTopics []string
	XPDelta         int
	LevelUp         *LevelUp
}

// MasteryResult is the outcome of DeclareMastery. Declared is false when
// the call was a no-op (subject already mastered or not eligible), in
// which case Post is nil and User is the input user unchanged.
type MasteryResult struct {
	User     *domain.User
	Post     *domain.Post
	Declared bool
	LevelUp  *LevelUp
}

// NoteShareResult is the outcome of ShareNote.
type NoteShareResult struct {
	User    *domain.User
	Post    *domain.Post
	XPDelta int
	LevelUp *LevelUp
}

// CompleteTopic records a topic completion and awards its XP.
//
// The operation is idempotent on topic id: completing a topic that is
// already in completedTopics returns the inputs unchanged, with no XP
// award and no event. Otherwise the topic id is appended, the reward is
// added to the user's XP, and the level is recomputed; crossing a level
// boundary is reported through LevelUp exactly once.
func CompleteTopic(
	user *domain.User,
	topicID string,
	xpReward int,
	completedTopics []string,
	params *Params,
) CompletionResult {
	if containsString(completedTopics, topicID) {
		return CompletionResult{
			User:            user,
			CompletedTopics: completedTopics,
		}
	}

	newCompleted := make([]string, 0, len(completedTopics)+1)
	newCompleted = append(newCompleted, completedTopics...)
	newCompleted = append(newCompleted, topicID)

	newUser, levelUp := applyXP(user, xpReward, params)

	return CompletionResult{
		User:            newUser,
		CompletedTopics: newCompleted,
		XPDelta:         xpReward,
		LevelUp:         levelUp,
	}
}

// IsEligible reports whether the subject can be declared mastered:
// the set of catalog topics belonging to the subject must be non-empty
// and every one of them must appear in completedTopics. A subject with
// zero topics is never eligible.
func IsEligible(subject domain.Subject, topicCatalog []domain.Topic, completedTopics []string) bool {
	found := false
	for i := range topicCatalog {
		if topicCatalog[i].Subject != subject {
			continue
		}
		found = true
		if !containsString(completedTopics, topicCatalog[i].ID) {
			return false
		}
	}
	return found
}

// DeclareMastery marks the subject as mastered for the user.
//
// The guard is re-checked here: the subject must be eligible and must
// not already be in the user's completed-subjects set, otherwise the
// call is a no-op with Declared=false. On success the subject is
// appended, the subject's badge (if any) is awarded, the mastery bonus
// XP is added, and an achievement post announcing the mastery is
// returned for the caller to prepend to the feed.
//
// The operation is not safely re-entrant for the same user: callers with
// concurrent writers must serialize the surrounding read-modify-write.
func DeclareMastery(
	user *domain.User,
	subject domain.Subject,
	topicCatalog []domain.Topic,
	completedTopics []string,
	badgeCatalog []domain.Badge,
	params *Params,
) MasteryResult {
	if user.HasMastered(subject) || !IsEligible(subject, topicCatalog, completedTopics) {
		return MasteryResult{User: user}
	}

	newUser, levelUp := applyXP(user, params.MasteryBonusXP, params)

	newUser.CompletedSubjects = appendSubject(user.CompletedSubjects, subject)
	newUser.EarnedBadges = user.EarnedBadges
	for i := range badgeCatalog {
		if badgeCatalog[i].Subject == subject && !user.HasBadge(badgeCatalog[i].ID) {
			newUser.EarnedBadges = appendString(user.EarnedBadges, badgeCatalog[i].ID)
			break
		}
	}

	content := fmt.Sprintf(
		"MASTERY UNLOCKED: I have officially completed the entire %s syllabus! 🎖️ #UPSC2025 #Rankers",
		subject,
	)
	post, err := domain.NewPost(newUser, domain.PostTypeAchievement, content)
	if err != nil {
		// The content is templated and the user already validated, so the
		// post cannot fail validation; treat it as a no-op if it does.
		return MasteryResult{User: user}
	}

	return MasteryResult{
		User:     newUser,
		Post:     post,
		Declared: true,
		LevelUp:  levelUp,
	}
}

// ShareNote publishes an active-recall recording post for the topic.
//
// Unlike topic completion, note sharing is deliberately not deduplicated:
// every call produces a new post. The bonus XP is awarded only when a
// note image is attached.
func ShareNote(
	user *domain.User,
	topicTitle string,
	noteImageURL string,
	params *Params,
) NoteShareResult {
	var content string
	if noteImageURL != "" {
		content = fmt.Sprintf(
			"I just mastered %q through Active Recall. Check out my notes! 🎙️ #UPSC2025",
			topicTitle,
		)
	} else {
		content = fmt.Sprintf(
			"I just mastered %q through Active Recall. Explaining it out loud is a game changer! 🎙️ #UPSC2025",
			topicTitle,
		)
	}

	xpDelta := 0
	newUser := user
	var levelUp *LevelUp
	if noteImageURL != "" {
		xpDelta = params.NoteShareBonusXP
		newUser, levelUp = applyXP(user, xpDelta, params)
	}

	post, err := domain.NewPost(newUser, domain.PostTypeRecording, content)
	if err != nil {
		return NoteShareResult{User: user}
	}
	post.NoteImageURL = noteImageURL

	return NoteShareResult{
		User:    newUser,
		Post:    post,
		XPDelta: xpDelta,
		LevelUp: levelUp,
	}
}

// applyXP returns a copy of the user with the XP delta applied and the
// level recomputed. A LevelUp is reported only when the new level
// exceeds the old one; XP never decreases in any flow, so the level is
// monotonically non-decreasing.
func applyXP(user *domain.User, delta int, params *Params) (*domain.User, *LevelUp) {
	newUser := *user
	newUser.XP = user.XP + delta
	newUser.Level = LevelForXP(newUser.XP, params)
	newUser.UpdatedAt = time.Now().UTC()

	var levelUp *LevelUp
	if newUser.Level > user.Level {
		levelUp = &LevelUp{Level: newUser.Level}
	}
	return &newUser, levelUp
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func appendString(list []string, s string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, s)
}

func appendSubject(list []domain.Subject, s domain.Subject) []domain.Subject {
	out := make([]domain.Subject, 0, len(list)+1)
	out = append(out, list...)
	return append(out, s)
}
