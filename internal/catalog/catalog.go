// Package catalog holds the static fixture data of the app: the subject
// configuration, the badge and topic catalogs, the seed feed posts, and
// the leaderboard snapshot. Everything here is fixed at process start
// and never mutated; accessors return copies so callers cannot corrupt
// the fixtures.
//
// Per-subject presentation data (icon, colour) and the subject's badge
// live in one SubjectInfo lookup keyed by the Subject enum, so an entry
// cannot exist in one table and be missing from another.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/rankers-app/rankers-api/internal/domain"
)

// SubjectInfo bundles everything keyed by a subject: its presentation
// hints and, when one exists, the badge awarded on mastery.
type SubjectInfo struct {
	Subject domain.Subject `json:"subject"`
	Icon    string         `json:"icon"`
	Color   string         `json:"color"`
	Badge   *domain.Badge  `json:"badge,omitempty"`
}

var subjectInfos = []SubjectInfo{
	{
		Subject: domain.SubjectHistory,
		Icon:    "fa-landmark",
		Color:   "bg-amber-100 text-amber-700",
		Badge:   &domain.Badge{ID: "b-history", Name: "Time Traveler", Icon: "fa-landmark", Color: "bg-amber-500", Subject: domain.SubjectHistory},
	},
	{
		Subject: domain.SubjectGeography,
		Icon:    "fa-earth-asia",
		Color:   "bg-emerald-100 text-emerald-700",
		Badge:   &domain.Badge{ID: "b-geography", Name: "Global Explorer", Icon: "fa-earth-asia", Color: "bg-emerald-500", Subject: domain.SubjectGeography},
	},
	{
		Subject: domain.SubjectPolity,
		Icon:    "fa-gavel",
		Color:   "bg-blue-100 text-blue-700",
		Badge:   &domain.Badge{ID: "b-polity", Name: "Constitutional Master", Icon: "fa-gavel", Color: "bg-blue-500", Subject: domain.SubjectPolity},
	},
	{
		Subject: domain.SubjectEconomy,
		Icon:    "fa-chart-line",
		Color:   "bg-indigo-100 text-indigo-700",
		Badge:   &domain.Badge{ID: "b-economy", Name: "Market Maestro", Icon: "fa-chart-line", Color: "bg-indigo-500", Subject: domain.SubjectEconomy},
	},
	{
		Subject: domain.SubjectEnvironment,
		Icon:    "fa-leaf",
		Color:   "bg-green-100 text-green-700",
	},
	{
		Subject: domain.SubjectScienceTech,
		Icon:    "fa-microscope",
		Color:   "bg-purple-100 text-purple-700",
	},
	{
		Subject: domain.SubjectCurrentAffairs,
		Icon:    "fa-newspaper",
		Color:   "bg-rose-100 text-rose-700",
	},
}

var topics = []domain.Topic{
	{
		ID:       "p-1",
		Subject:  domain.SubjectPolity,
		Module:   "Constitutional Framework",
		XPReward: 100,
		Title:    "Doctrine of Basic Structure",
		Content:  "The Basic Structure Doctrine (Kesavananda Bharati v. State of Kerala, 1973) dictates that while Parliament can amend the Constitution, it cannot alter its essential features like democracy, secularism, or federalism.",
		Questions: []domain.Question{
			{
				ID:            "pq-1",
				Type:          domain.QuestionTypePrelims,
				Text:          `Which case established the "Basic Structure" doctrine?`,
				Options:       []string{"Golaknath", "Kesavananda Bharati", "Minerva Mills", "S.R. Bommai"},
				CorrectAnswer: "Kesavananda Bharati",
			},
			{
				ID:       "pq-2",
				Type:     domain.QuestionTypeMains,
				Text:     "Critically examine the evolution of the basic structure doctrine in Indian constitutional history.",
				Guidance: "Discuss key cases from 1951 to 1973.",
			},
		},
	},
	{
		ID:       "p-2",
		Subject:  domain.SubjectPolity,
		Module:   "Constitutional Framework",
		XPReward: 100,
		Title:    "The Preamble",
		Content:  "The Preamble declares India a sovereign, socialist, secular, democratic republic and sets out the objectives of justice, liberty, equality, and fraternity. It is part of the Constitution but not enforceable in courts.",
		Questions: []domain.Question{
			{
				ID:            "pq-3",
				Type:          domain.QuestionTypePrelims,
				Text:          "Which amendment added the words 'socialist' and 'secular' to the Preamble?",
				Options:       []string{"42nd", "44th", "52nd", "61st"},
				CorrectAnswer: "42nd",
			},
		},
	},
	{
		ID:       "h-1",
		Subject:  domain.SubjectHistory,
		Module:   "Ancient India",
		XPReward: 120,
		Title:    "Indus Valley Urbanization",
		Content:  "Harappan civilization was known for its sophisticated town planning, drainage systems, and grid-iron street layouts. Major sites include Harappa, Mohenjodaro, and Dholavira.",
		Questions: []domain.Question{
			{
				ID:            "hq-1",
				Type:          domain.QuestionTypePrelims,
				Text:          "Which Harappan site is famous for its water management system?",
				Options:       []string{"Lothal", "Dholavira", "Kalibangan", "Banawali"},
				CorrectAnswer: "Dholavira",
			},
		},
	},
	{
		ID:       "g-1",
		Subject:  domain.SubjectGeography,
		Module:   "Physical Geography",
		XPReward: 100,
		Title:    "Monsoon Mechanism",
		Content:  "The Indian monsoon is driven by differential heating of land and sea, the shifting of the ITCZ, and jet streams. The southwest monsoon delivers the bulk of annual rainfall between June and September.",
		Questions: []domain.Question{
			{
				ID:            "gq-1",
				Type:          domain.QuestionTypePrelims,
				Text:          "The ITCZ shifts northward in summer primarily because of?",
				Options:       []string{"Ocean currents", "Differential heating", "El Nino", "Jet streams"},
				CorrectAnswer: "Differential heating",
			},
		},
	},
	{
		ID:       "e-1",
		Subject:  domain.SubjectEconomy,
		Module:   "Monetary Policy",
		XPReward: 110,
		Title:    "Inflation Targeting",
		Content:  "Under the 2016 monetary policy framework, the RBI's Monetary Policy Committee targets 4% CPI inflation within a band of 2-6%, using the repo rate as its primary instrument.",
		Questions: []domain.Question{
			{
				ID:       "eq-1",
				Type:     domain.QuestionTypeMains,
				Text:     "Evaluate the performance of flexible inflation targeting in India.",
				Guidance: "Contrast growth and price-stability mandates since 2016.",
			},
		},
	},
	{
		ID:       "en-1",
		Subject:  domain.SubjectEnvironment,
		Module:   "Ecology",
		XPReward: 90,
		Title:    "Carbon Sequestration",
		Content:  "Carbon sequestration is the capture and long-term storage of atmospheric CO2 in sinks such as forests, soil, and oceans. Blue carbon refers to carbon stored in coastal ecosystems like mangroves.",
		Questions: []domain.Question{
			{
				ID:            "enq-1",
				Type:          domain.QuestionTypePrelims,
				Text:          "'Blue carbon' is associated with which ecosystem?",
				Options:       []string{"Grasslands", "Coastal wetlands", "Deserts", "Tundra"},
				CorrectAnswer: "Coastal wetlands",
			},
		},
	},
	{
		ID:       "s-1",
		Subject:  domain.SubjectScienceTech,
		Module:   "Space",
		XPReward: 100,
		Title:    "Chandrayaan Missions",
		Content:  "India's lunar programme progressed from orbital study (Chandrayaan-1, which confirmed lunar water) to the successful soft landing of Chandrayaan-3 near the lunar south pole in 2023.",
		Questions: []domain.Question{
			{
				ID:            "sq-1",
				Type:          domain.QuestionTypePrelims,
				Text:          "Chandrayaan-3 landed near which lunar region?",
				Options:       []string{"Equator", "North pole", "South pole", "Far side"},
				CorrectAnswer: "South pole",
			},
		},
	},
	{
		ID:       "ca-1",
		Subject:  domain.SubjectCurrentAffairs,
		Module:   "Reports & Indices",
		XPReward: 80,
		Title:    "Reading Economic Surveys",
		Content:  "The Economic Survey, tabled before the Union Budget, reviews the economy's performance over the past year and outlines policy priorities. Aspirants should focus on themes rather than memorizing figures.",
		Questions: []domain.Question{
			{
				ID:       "caq-1",
				Type:     domain.QuestionTypeMains,
				Text:     "How should policy surveys inform answer writing?",
				Guidance: "Use one or two survey findings as evidence, not as the argument itself.",
			},
		},
	},
}

var seedPosts = []domain.Post{
	{
		ID:         uuid.MustParse("8f8b3c1e-0b5a-4f63-9c60-1a2047cf6f21"),
		UserID:     uuid.MustParse("d1a9c8e2-5a7b-4f11-8b0d-3d9d3f2b9a77"),
		UserName:   "Abhishek (AIR 14)",
		UserAvatar: "https://i.pravatar.cc/150?u=abhishek",
		Content:    "Just shared a recording on 'Basic Structure'. Remember, focus on the Kesavananda case timeline. Keep grinding! 🚀",
		Type:       domain.PostTypeRecording,
		Likes:      42,
		CreatedAt:  time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
	},
}

var leaderboard = []domain.LeaderboardEntry{
	{UserID: "1", Name: "Sneha Rao", PhotoURL: "https://i.pravatar.cc/150?u=sneha", XP: 12450, Level: 13, Rank: 1},
	{UserID: "2", Name: "Rahul V.", PhotoURL: "https://i.pravatar.cc/150?u=rahul", XP: 11200, Level: 12, Rank: 2},
	{UserID: "3", Name: "Priya S.", PhotoURL: "https://i.pravatar.cc/150?u=priya", XP: 10800, Level: 11, Rank: 3},
	{UserID: "4", Name: "Ankit Sharma", PhotoURL: "https://i.pravatar.cc/150?u=ankit", XP: 9500, Level: 10, Rank: 4},
	{UserID: "5", Name: "Vikram Singh", PhotoURL: "https://i.pravatar.cc/150?u=vikram", XP: 8700, Level: 9, Rank: 5},
}

// Subjects returns the subject configuration in catalog order.
func Subjects() []SubjectInfo {
	out := make([]SubjectInfo, len(subjectInfos))
	copy(out, subjectInfos)
	return out
}

// Info returns the configuration for one subject.
func Info(subject domain.Subject) (SubjectInfo, bool) {
	for _, info := range subjectInfos {
		if info.Subject == subject {
			return info, true
		}
	}
	return SubjectInfo{}, false
}

// Badges returns every badge defined in the subject configuration.
func Badges() []domain.Badge {
	var out []domain.Badge
	for _, info := range subjectInfos {
		if info.Badge != nil {
			out = append(out, *info.Badge)
		}
	}
	return out
}

// BadgeForSubject returns the badge awarded for mastering the subject,
// or false when the subject has none.
func BadgeForSubject(subject domain.Subject) (domain.Badge, bool) {
	info, ok := Info(subject)
	if !ok || info.Badge == nil {
		return domain.Badge{}, false
	}
	return *info.Badge, true
}

// Topics returns the full topic catalog.
func Topics() []domain.Topic {
	out := make([]domain.Topic, len(topics))
	copy(out, topics)
	return out
}

// TopicsBySubject returns the topics belonging to the subject, in
// catalog order.
func TopicsBySubject(subject domain.Subject) []domain.Topic {
	var out []domain.Topic
	for _, t := range topics {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}

// TopicByID returns a copy of the topic with the given id.
func TopicByID(id string) (domain.Topic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Topic{}, false
}

// SeedPosts returns the posts the feed starts with.
func SeedPosts() []domain.Post {
	out := make([]domain.Post, len(seedPosts))
	copy(out, seedPosts)
	return out
}

// Leaderboard returns the external ranking snapshot.
func Leaderboard() []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(leaderboard))
	copy(out, leaderboard)
	return out
}
