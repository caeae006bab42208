package bot

import (
	"context"
	"log"
	"sync"

	"aquabalance/internal/models"
	"aquabalance/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the telegram transport over the tracking core. It owns the
// per-user conversation state and serializes handling per user so that a
// slow lookup for one user never reorders that user's own commands nor
// blocks anyone else's.
type Bot struct {
	api     *tgbotapi.BotAPI
	session *services.ProfileSession
	tracker *services.Tracker

	mu    sync.Mutex
	users map[int64]*userState
}

// userState carries one user's onboarding cursor plus the lock that keeps
// that user's updates sequential.
type userState struct {
	mu      sync.Mutex
	session *models.SessionState // nil when no onboarding is in progress
}

func New(token string, session *services.ProfileSession, tracker *services.Tracker) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized as @%s", api.Self.UserName)

	return &Bot{
		api:     api,
		session: session,
		tracker: tracker,
		users:   make(map[int64]*userState),
	}, nil
}

// Start runs the update loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var userID, chatID int64
	switch {
	case update.CallbackQuery != nil:
		userID = update.CallbackQuery.From.ID
		chatID = update.CallbackQuery.Message.Chat.ID
	case update.Message != nil:
		userID = update.Message.From.ID
		chatID = update.Message.Chat.ID
	default:
		return
	}

	state := b.userState(userID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery, state)
		return
	}

	log.Printf("Message from %d: %s", userID, update.Message.Text)

	if update.Message.IsCommand() {
		b.handleCommand(ctx, update.Message, state)
		return
	}

	if state.session != nil {
		b.advanceSession(ctx, userID, chatID, update.Message.Text, state)
		return
	}

	b.reply(chatID, msgHelp)
}

func (b *Bot) userState(userID int64) *userState {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, ok := b.users[userID]
	if !ok {
		state = &userState{}
		b.users[userID] = state
	}
	return state
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}
