package models

// SessionStep is the cursor of the profile onboarding conversation. Steps
// advance strictly in declaration order; StepCompleted is terminal.
type SessionStep int

const (
	StepSex SessionStep = iota
	StepWeight
	StepHeight
	StepAge
	StepActivity
	StepCity
	StepCaloriesGoal
	StepCompleted
)

func (s SessionStep) String() string {
	switch s {
	case StepSex:
		return "awaiting_sex"
	case StepWeight:
		return "awaiting_weight"
	case StepHeight:
		return "awaiting_height"
	case StepAge:
		return "awaiting_age"
	case StepActivity:
		return "awaiting_activity"
	case StepCity:
		return "awaiting_city"
	case StepCaloriesGoal:
		return "awaiting_calories_goal"
	case StepCompleted:
		return "completed"
	}
	return "unknown"
}

// SessionState is the transient per-user conversational cursor plus the
// attribute values collected so far. The transport layer keeps it between
// messages and discards it on completion.
type SessionState struct {
	Step  SessionStep
	Draft ProfileDraft
}

// ProfileDraft holds partially collected profile attributes.
type ProfileDraft struct {
	Sex                  Sex
	WeightKg             float64
	HeightCm             float64
	Age                  int
	ActivityMinutes      int
	City                 string
	CaloriesGoalOverride int
}

// NewSessionState returns the state a fresh onboarding conversation starts in.
func NewSessionState() SessionState {
	return SessionState{Step: StepSex}
}
