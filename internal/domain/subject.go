package domain

import "fmt"

// Subject identifies one of the fixed syllabus areas covered by the app.
// The set is closed: subjects are defined here and nowhere else, and no
// subject is ever created at runtime.
type Subject string

const (
	SubjectHistory        Subject = "History"
	SubjectGeography      Subject = "Geography"
	SubjectPolity         Subject = "Polity"
	SubjectEconomy        Subject = "Economy"
	SubjectEnvironment    Subject = "Environment"
	SubjectScienceTech    Subject = "Science & Tech"
	SubjectCurrentAffairs Subject = "Current Affairs"
)

// AllSubjects returns every subject in catalog order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectHistory,
		SubjectGeography,
		SubjectPolity,
		SubjectEconomy,
		SubjectEnvironment,
		SubjectScienceTech,
		SubjectCurrentAffairs,
	}
}

// ParseSubject converts a string into a Subject, accepting only members
// of the closed set. Returns ErrUnknownSubject for anything else.
func ParseSubject(s string) (Subject, error) {
	for _, subject := range AllSubjects() {
		if string(subject) == s {
			return subject, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
}

// Valid reports whether the subject is a member of the closed set.
func (s Subject) Valid() bool {
	_, err := ParseSubject(string(s))
	return err == nil
}
