package bot

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	grantConfirmText  = "✅ تم منح VIP"
	revokeConfirmText = "✅ تمت إزالة VIP"
)

func (b *Bot) isAdmin(userID int64) bool {
	return userID == b.config.AdminID
}

// Admin entry points ignore non-admin senders without any reply. That is the
// intended minimal-disclosure policy, not an oversight.

func (b *Bot) handleAdminMenuCallback(query *tgbotapi.CallbackQuery) {
	if !b.isAdmin(query.From.ID) {
		return
	}

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "🛠 أوامر المشرف:")
	msg.ReplyMarkup = adminMenu()
	b.send(msg)
	b.answerCallbackQuery(query.ID, "")
}

func (b *Bot) handleGrantVIPCallback(query *tgbotapi.CallbackQuery) {
	if !b.isAdmin(query.From.ID) {
		return
	}

	b.stateManager.SetMode(query.From.ID, ModeGrantVIP)
	b.answerCallbackQuery(query.ID, "")
	b.sendMessage(query.Message.Chat.ID, "أرسل معرف المستخدم الرقمي:")
}

func (b *Bot) handleRevokeVIPCallback(query *tgbotapi.CallbackQuery) {
	if !b.isAdmin(query.From.ID) {
		return
	}

	b.stateManager.SetMode(query.From.ID, ModeRevokeVIP)
	b.answerCallbackQuery(query.ID, "")
	b.sendMessage(query.Message.Chat.ID, "أرسل معرف المستخدم الرقمي:")
}

func (b *Bot) handleAdminStatsCallback(query *tgbotapi.CallbackQuery) {
	if !b.isAdmin(query.From.ID) {
		return
	}

	stats, err := b.userService.GetStats()
	if err != nil {
		log.Printf("Failed to get stats: %v", err)
		b.answerCallbackQuery(query.ID, "")
		b.sendMessage(query.Message.Chat.ID, errorText)
		return
	}

	text := "📊 الإحصائيات:\n\n"
	text += fmt.Sprintf("👥 عدد المستخدمين: %d\n", stats.TotalUsers)
	text += fmt.Sprintf("💎 مشتركو VIP: %d\n", stats.VIPUsers)

	b.send(tgbotapi.NewMessage(query.Message.Chat.ID, text))
	b.answerCallbackQuery(query.ID, "")
}

// handleNumericMessage consumes a bare-integer message as an admin console
// target id. Numeric messages from non-admins, or from the admin without an
// active grant/revoke mode, are ignored.
func (b *Bot) handleNumericMessage(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		return
	}

	mode := b.stateManager.GetMode(message.From.ID)
	if mode != ModeGrantVIP && mode != ModeRevokeVIP {
		return
	}

	targetID, err := strconv.ParseInt(message.Text, 10, 64)
	if err != nil {
		b.sendMessage(message.Chat.ID, "⚠️ معرف غير صالح.")
		return
	}

	switch mode {
	case ModeGrantVIP:
		if err := b.userService.GrantVIP(targetID); err != nil {
			log.Printf("Failed to grant VIP to %d: %v", targetID, err)
			b.sendMessage(message.Chat.ID, errorText)
			return
		}
		b.sendMessage(message.Chat.ID, grantConfirmText)
	case ModeRevokeVIP:
		if err := b.userService.RevokeVIP(targetID); err != nil {
			log.Printf("Failed to revoke VIP from %d: %v", targetID, err)
			b.sendMessage(message.Chat.ID, errorText)
			return
		}
		b.sendMessage(message.Chat.ID, revokeConfirmText)
	}

	// The target id has been consumed, drop the mode so later numeric
	// messages are not re-applied.
	b.stateManager.ClearMode(message.From.ID)
}
