package models

// DateLayout is the textual form used for day keys wherever they are
// persisted or exchanged. Lexicographic order matches calendar order.
const DateLayout = "2006-01-02"

// DailyRecord accumulates one user's goals and logged quantities for one
// calendar day. Keyed by (user_id, date); created once per day, the four
// accumulator fields start at zero and only ever grow.
type DailyRecord struct {
	UserID         int64   `gorm:"primaryKey;autoIncrement:false" json:"user_id" example:"123456789"`
	Date           string  `gorm:"primaryKey;type:varchar(10)" json:"date" example:"2024-01-01"`
	Temperature    float64 `json:"temperature" example:"28"`
	WaterGoal      int     `json:"water_goal" example:"3600"`
	CaloriesGoal   int     `json:"calories_goal" example:"2033"`
	LoggedWater    int     `json:"logged_water" example:"500"`
	LoggedCalories int     `json:"logged_calories" example:"700"`
	BurnedCalories int     `json:"burned_calories" example:"200"`
}

// DailyField is the closed set of DailyRecord counters that may be
// incremented after creation. WaterGoal is included because workout logging
// raises the target by a water bonus.
type DailyField string

const (
	FieldLoggedWater    DailyField = "logged_water"
	FieldLoggedCalories DailyField = "logged_calories"
	FieldBurnedCalories DailyField = "burned_calories"
	FieldWaterGoal      DailyField = "water_goal"
)

func (f DailyField) Valid() bool {
	switch f {
	case FieldLoggedWater, FieldLoggedCalories, FieldBurnedCalories, FieldWaterGoal:
		return true
	}
	return false
}

// Column returns the database column the field maps to.
func (f DailyField) Column() string {
	return string(f)
}

// ProgressSnapshot is the derived progress view of a DailyRecord.
type ProgressSnapshot struct {
	Date           string  `json:"date" example:"2024-01-01"`
	Temperature    float64 `json:"temperature" example:"28"`
	WaterGoal      int     `json:"water_goal" example:"3600"`
	LoggedWater    int     `json:"logged_water" example:"500"`
	RemainingWater int     `json:"remaining_water" example:"3100"`
	CaloriesGoal   int     `json:"calories_goal" example:"2033"`
	LoggedCalories int     `json:"logged_calories" example:"700"`
	BurnedCalories int     `json:"burned_calories" example:"200"`
	CalorieBalance int     `json:"calorie_balance" example:"500"`
}
