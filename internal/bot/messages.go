package bot

const (
	msgStart = "Hi! I track your daily water and calorie balance.\n" +
		"Send /set_profile to get started, or /help for the full command list."

	msgHelp = "Commands:\n" +
		"/set_profile - fill in your profile\n" +
		"/cancel - abort profile setup\n" +
		"/log_water <mL> - log drunk water\n" +
		"/log_food <description> - log eaten food\n" +
		"/log_workout <description> <minutes> - log a workout\n" +
		"/check_progress - today's progress\n" +
		"/new_day - start a new day\n" +
		"/set_weight <kg> - update your weight\n" +
		"/report [days] - daily records for the last days"

	msgEnterSex          = "Let's set up your profile. What is your sex?"
	msgEnterWeight       = "Your weight in kg?"
	msgEnterHeight       = "Your height in cm?"
	msgEnterAge          = "Your age?"
	msgEnterActivity     = "Minutes of activity per day?"
	msgEnterCity         = "Which city are you in?"
	msgEnterCaloriesGoal = "Daily calorie goal in kcal (0 to compute it for you)?"

	msgEnterNumber  = "Please enter a valid number."
	msgEnterInteger = "Please enter a valid whole number."

	msgProfileMissing = "You don't have a profile yet. Send /set_profile first."
	msgDayNotBegun    = "Today hasn't been started yet. Send /new_day first."
	msgDayAlreadyOpen = "Today has already been started."
	msgCityNotFound   = "I couldn't find that city. Please enter it again."
	msgFoodNotFound   = "I couldn't recognize that food."
	msgNoRecords      = "No records found for that period."

	msgWorkoutNotFound = "I couldn't recognize that workout."
	msgWorkoutArgs     = "Usage: /log_workout <description> <minutes>"
	msgWaterArgs       = "Usage: /log_water <mL>"
	msgFoodArgs        = "Usage: /log_food <description>"
	msgWeightArgs      = "Usage: /set_weight <kg>"

	msgCancelled = "Profile setup cancelled."

	msgInternalError = "Something went wrong, please try again later."
)
