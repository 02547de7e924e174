// Package progression implements the XP, level, and mastery rules of the
// app as pure functions. The engine never touches a store and never
// mutates its inputs: every operation returns new values, and the caller
// is responsible for replacing its state with them. One-time facts such
// as a level-up are returned as explicit event values for the caller to
// display, never acted on here.
package progression

// Params defines all tunable constants of the progression rules.
type Params struct {
	// XPPerLevel is the width of one level band. Level is always derived
	// as floor(xp/XPPerLevel)+1 and never stored independently.
	XPPerLevel int

	// MasteryBonusXP is the fixed reward for declaring mastery of a
	// subject.
	MasteryBonusXP int

	// NoteShareBonusXP is the fixed reward for sharing a note with an
	// image attached. Sharing without an image awards nothing.
	NoteShareBonusXP int
}

// NewDefaultParams returns the production progression constants.
func NewDefaultParams() *Params {
	return &Params{
		XPPerLevel:       1000,
		MasteryBonusXP:   500,
		NoteShareBonusXP: 50,
	}
}

// LevelForXP derives the level for an XP total. Levels start at 1 and
// advance every Params.XPPerLevel points.
func LevelForXP(xp int, params *Params) int {
	if xp < 0 {
		xp = 0
	}
	return xp/params.XPPerLevel + 1
}
