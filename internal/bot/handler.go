package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aquabalance/internal/models"
	"aquabalance/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func formatCompletion(result *services.CompletionResult) string {
	p := result.Profile
	return fmt.Sprintf(
		"Your profile:\n"+
			"Sex: %s\n"+
			"Weight: %g kg\n"+
			"Height: %g cm\n"+
			"Age: %d\n"+
			"Activity: %d min\n"+
			"City: %s\n"+
			"Temperature: %g C\n"+
			"Calorie goal: %d kcal\n"+
			"Water goal: %d mL",
		p.Sex, p.WeightKg, p.HeightCm, p.Age, p.ActivityMinutes, p.City,
		result.Temperature, result.CaloriesGoal, result.WaterGoal,
	)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message, state *userState) {
	userID := message.From.ID
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		b.reply(chatID, msgStart)
	case "help":
		b.reply(chatID, msgHelp)
	case "set_profile":
		b.startProfileForm(chatID, state)
	case "cancel":
		state.session = nil
		b.reply(chatID, msgCancelled)
	case "log_water":
		b.logWater(chatID, userID, args)
	case "log_food":
		b.logFood(ctx, chatID, userID, args)
	case "log_workout":
		b.logWorkout(ctx, chatID, userID, args)
	case "check_progress":
		b.checkProgress(chatID, userID)
	case "new_day":
		b.newDay(ctx, chatID, userID)
	case "set_weight":
		b.setWeight(chatID, userID, args)
	case "report":
		b.report(chatID, userID, args)
	default:
		b.reply(chatID, msgHelp)
	}
}

func (b *Bot) startProfileForm(chatID int64, state *userState) {
	session := models.NewSessionState()
	state.session = &session

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Male", string(models.SexMale)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Female", string(models.SexFemale)),
		),
	)

	msg := tgbotapi.NewMessage(chatID, msgEnterSex)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.reply(chatID, msgInternalError)
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery, state *userState) {
	// Acknowledge the button press so the client stops spinning.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		return
	}

	if state.session == nil || state.session.Step != models.StepSex {
		return
	}

	b.advanceSession(ctx, callback.From.ID, callback.Message.Chat.ID, callback.Data, state)
}

// advanceSession feeds one input into the onboarding conversation and sends
// the prompt for whatever step comes next.
func (b *Bot) advanceSession(ctx context.Context, userID, chatID int64, input string, state *userState) {
	next, done, err := b.session.Advance(ctx, userID, *state.session, input)
	*state.session = next

	if err != nil {
		switch {
		case models.IsValidation(err):
			b.reply(chatID, msgEnterNumber)
		case errors.Is(err, models.ErrCityNotFound):
			b.reply(chatID, msgCityNotFound)
		default:
			b.reply(chatID, msgInternalError)
		}
		return
	}

	if done != nil {
		state.session = nil
		b.reply(chatID, formatCompletion(done))
		return
	}

	b.reply(chatID, promptFor(next.Step))
}

func promptFor(step models.SessionStep) string {
	switch step {
	case models.StepWeight:
		return msgEnterWeight
	case models.StepHeight:
		return msgEnterHeight
	case models.StepAge:
		return msgEnterAge
	case models.StepActivity:
		return msgEnterActivity
	case models.StepCity:
		return msgEnterCity
	case models.StepCaloriesGoal:
		return msgEnterCaloriesGoal
	}
	return msgHelp
}

func (b *Bot) logWater(chatID, userID int64, args string) {
	amount, err := parseIntArg(args)
	if err != nil {
		b.reply(chatID, msgWaterArgs)
		return
	}

	if err := b.tracker.LogWater(userID, amount); err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf("Logged: %d mL of water.", amount))
}

func (b *Bot) logFood(ctx context.Context, chatID, userID int64, args string) {
	if args == "" {
		b.reply(chatID, msgFoodArgs)
		return
	}

	kcal, err := b.tracker.LogFood(ctx, userID, args)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf("Logged: %d kcal.", kcal))
}

func (b *Bot) logWorkout(ctx context.Context, chatID, userID int64, args string) {
	description, duration, err := parseWorkoutArgs(args)
	if err != nil {
		b.reply(chatID, msgWorkoutArgs)
		return
	}

	result, err := b.tracker.LogWorkout(ctx, userID, description, duration)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	msg := fmt.Sprintf("%s, %d min - %d kcal burned.", description, duration, result.BurnedCalories)
	if result.ExtraWaterML > 0 {
		msg += fmt.Sprintf(" Drink an extra %d mL of water.", result.ExtraWaterML)
	}
	b.reply(chatID, msg)
}

func (b *Bot) checkProgress(chatID, userID int64) {
	snapshot, err := b.tracker.Snapshot(userID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf(
		"Progress for %s:\n"+
			"Water:\n"+
			"- Drunk: %d mL of %d mL\n"+
			"- Remaining: %d mL\n"+
			"Calories:\n"+
			"- Consumed: %d kcal of %d kcal\n"+
			"- Burned: %d kcal\n"+
			"- Balance: %d kcal",
		snapshot.Date,
		snapshot.LoggedWater, snapshot.WaterGoal,
		snapshot.RemainingWater,
		snapshot.LoggedCalories, snapshot.CaloriesGoal,
		snapshot.BurnedCalories,
		snapshot.CalorieBalance,
	))
}

func (b *Bot) newDay(ctx context.Context, chatID, userID int64) {
	goals, err := b.tracker.NewDay(ctx, userID)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf(
		"Goals for today:\n- Drink: %d mL\n- Consume: %d kcal",
		goals.WaterGoal, goals.CaloriesGoal,
	))
}

func (b *Bot) setWeight(chatID, userID int64, args string) {
	weight, err := strconv.ParseFloat(firstField(args), 64)
	if err != nil {
		b.reply(chatID, msgWeightArgs)
		return
	}

	if err := b.tracker.SetWeight(userID, weight); err != nil {
		b.replyError(chatID, err)
		return
	}

	b.reply(chatID, fmt.Sprintf("Weight set: %g kg.", weight))
}

func (b *Bot) report(chatID, userID int64, args string) {
	days := 7
	if args != "" {
		parsed, err := parseIntArg(args)
		if err != nil {
			b.reply(chatID, msgEnterInteger)
			return
		}
		days = parsed
	}

	records, err := b.tracker.RecentRecords(userID, days)
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	if len(records) == 0 {
		b.reply(chatID, msgNoRecords)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Last %d day(s):\n", days))
	for _, r := range records {
		sb.WriteString(fmt.Sprintf(
			"%s: water %d/%d mL, calories %d/%d kcal, burned %d kcal\n",
			r.Date, r.LoggedWater, r.WaterGoal,
			r.LoggedCalories, r.CaloriesGoal, r.BurnedCalories,
		))
	}
	b.reply(chatID, sb.String())
}

// replyError turns the domain error taxonomy into user-facing messages.
func (b *Bot) replyError(chatID int64, err error) {
	switch {
	case errors.Is(err, models.ErrProfileMissing):
		b.reply(chatID, msgProfileMissing)
	case errors.Is(err, models.ErrNoSuchDay):
		b.reply(chatID, msgDayNotBegun)
	case errors.Is(err, models.ErrDayAlreadyOpen):
		b.reply(chatID, msgDayAlreadyOpen)
	case errors.Is(err, models.ErrCityNotFound):
		b.reply(chatID, msgCityNotFound)
	case errors.Is(err, models.ErrProductNotFound):
		b.reply(chatID, msgFoodNotFound)
	case errors.Is(err, models.ErrExerciseNotFound):
		b.reply(chatID, msgWorkoutNotFound)
	case models.IsValidation(err):
		b.reply(chatID, msgEnterNumber)
	default:
		b.reply(chatID, msgInternalError)
	}
}

func parseIntArg(args string) (int, error) {
	return strconv.Atoi(firstField(args))
}

func firstField(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseWorkoutArgs splits "<description...> <minutes>": everything except
// the trailing number is the description.
func parseWorkoutArgs(args string) (string, int, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("expected a description and a duration")
	}

	duration, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, fmt.Errorf("duration must be a whole number of minutes")
	}

	return strings.Join(fields[:len(fields)-1], " "), duration, nil
}
