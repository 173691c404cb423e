package bot

import (
	"context"
	"fmt"
	"log"
	"regexp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vip_gate_bot/internal/config"
	"vip_gate_bot/internal/monitoring"
	"vip_gate_bot/internal/service"
)

const welcomeText = `👋 أهلاً بك في بوت المحتوى!

اشترك في القناة لمتابعة كل جديد، وفعّل اشتراك VIP للوصول إلى الأقسام وخدمات الذكاء الاصطناعي.`

const errorText = "⚠️ حدث خطأ، حاول مرة أخرى لاحقًا."

// numericPattern intercepts bare-integer messages for the admin console
// before any AI routing happens.
var numericPattern = regexp.MustCompile(`^\d+$`)

// AIRelay forwards text to an external AI provider and returns its raw
// output.
type AIRelay interface {
	Chat(ctx context.Context, text string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type handlerFunc func(query *tgbotapi.CallbackQuery)

type Bot struct {
	api          *tgbotapi.BotAPI
	config       *config.Config
	userService  service.UserService
	aiRelay      AIRelay
	stateManager *StateManager
	actions      map[string]handlerFunc
}

func NewBot(cfg *config.Config, userService service.UserService, aiRelay AIRelay) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false

	log.Printf("Authorized on account %s", api.Self.UserName)

	b := &Bot{
		api:          api,
		config:       cfg,
		userService:  userService,
		aiRelay:      aiRelay,
		stateManager: NewStateManager(),
	}

	// Every callback id is bound here once; unknown ids fall through to a
	// silent callback answer.
	b.actions = map[string]handlerFunc{
		actionSections:   b.handleSectionsCallback,
		actionAIMenu:     b.handleAIMenuCallback,
		actionAIChat:     b.handleAIChatCallback,
		actionAIImage:    b.handleAIImageCallback,
		actionAdminMenu:  b.handleAdminMenuCallback,
		actionGrantVIP:   b.handleGrantVIPCallback,
		actionRevokeVIP:  b.handleRevokeVIPCallback,
		actionAdminStats: b.handleAdminStatsCallback,
	}

	return b, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			monitoring.UpdatesProcessed.WithLabelValues("message").Inc()
			b.handleMessage(update.Message)
		} else if update.CallbackQuery != nil {
			monitoring.UpdatesProcessed.WithLabelValues("callback").Inc()
			b.handleCallbackQuery(update.CallbackQuery)
		}
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	if err := b.userService.EnsureUser(message.From.ID, message.From.UserName); err != nil {
		log.Printf("Failed to ensure user %d: %v", message.From.ID, err)
		b.sendMessage(message.Chat.ID, errorText)
		return
	}

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	b.handleTextMessage(message)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStartCommand(message)
	default:
		b.sendMessage(message.Chat.ID, "استخدم /start لعرض القائمة الرئيسية.")
	}
}

func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	isVIP, err := b.userService.IsVIP(message.From.ID)
	if err != nil {
		log.Printf("Failed to check VIP for user %d: %v", message.From.ID, err)
		b.sendMessage(message.Chat.ID, errorText)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = mainMenu(b.config, isVIP, b.isAdmin(message.From.ID))
	b.send(msg)
}

func (b *Bot) handleTextMessage(message *tgbotapi.Message) {
	// Bare integers belong to the admin console and take priority over the
	// AI relay regardless of the current mode.
	if numericPattern.MatchString(message.Text) {
		b.handleNumericMessage(message)
		return
	}

	switch b.stateManager.GetMode(message.From.ID) {
	case ModeChat:
		b.relayChat(message)
	case ModeImage:
		b.relayImage(message)
	default:
		// No active mode: the message is ignored without a reply.
	}
}

// relayChat keeps ModeChat active, every following free-text message is
// treated as a chat prompt until another button is pressed.
func (b *Bot) relayChat(message *tgbotapi.Message) {
	reply, err := b.aiRelay.Chat(context.Background(), message.Text)
	if err != nil {
		log.Printf("Chat relay failed for user %d: %v", message.From.ID, err)
		monitoring.AIRequests.WithLabelValues("chat", "error").Inc()
		b.sendMessage(message.Chat.ID, errorText)
		return
	}
	monitoring.AIRequests.WithLabelValues("chat", "ok").Inc()

	b.sendMessage(message.Chat.ID, reply)
}

func (b *Bot) relayImage(message *tgbotapi.Message) {
	url, err := b.aiRelay.GenerateImage(context.Background(), message.Text)
	if err != nil {
		log.Printf("Image relay failed for user %d: %v", message.From.ID, err)
		monitoring.AIRequests.WithLabelValues("image", "error").Inc()
		b.sendMessage(message.Chat.ID, errorText)
		return
	}
	monitoring.AIRequests.WithLabelValues("image", "ok").Inc()

	// Delivery by reference: Telegram fetches the hosted URL itself.
	photo := tgbotapi.NewPhoto(message.Chat.ID, tgbotapi.FileURL(url))
	b.send(photo)
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if err := b.userService.EnsureUser(query.From.ID, query.From.UserName); err != nil {
		log.Printf("Failed to ensure user %d: %v", query.From.ID, err)
	}

	if handler, ok := b.actions[query.Data]; ok {
		handler(query)
		return
	}
	b.answerCallbackQuery(query.ID, "")
}

func (b *Bot) handleSectionsCallback(query *tgbotapi.CallbackQuery) {
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "📚 الأقسام المتاحة:")
	msg.ReplyMarkup = sectionsMenu(b.config)
	b.send(msg)
	b.answerCallbackQuery(query.ID, "")
}

func (b *Bot) handleAIMenuCallback(query *tgbotapi.CallbackQuery) {
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "🤖 اختر الخدمة:")
	msg.ReplyMarkup = aiMenu()
	b.send(msg)
	b.answerCallbackQuery(query.ID, "")
}

func (b *Bot) handleAIChatCallback(query *tgbotapi.CallbackQuery) {
	b.stateManager.SetMode(query.From.ID, ModeChat)
	b.answerCallbackQuery(query.ID, "")
	b.sendMessage(query.Message.Chat.ID, "💬 أرسل رسالتك وسيرد عليك الذكاء الاصطناعي.")
}

func (b *Bot) handleAIImageCallback(query *tgbotapi.CallbackQuery) {
	b.stateManager.SetMode(query.From.ID, ModeImage)
	b.answerCallbackQuery(query.ID, "")
	b.sendMessage(query.Message.Chat.ID, "🎨 صف الصورة التي تريد توليدها.")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) answerCallbackQuery(queryID, text string) {
	callback := tgbotapi.NewCallback(queryID, text)
	if _, err := b.api.Request(callback); err != nil {
		log.Printf("Failed to answer callback query: %v", err)
	}
}
