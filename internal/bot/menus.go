package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vip_gate_bot/internal/config"
)

// Callback identifiers. Closed vocabulary: every id is bound to exactly one
// handler when the bot is constructed.
const (
	actionSections   = "sections"
	actionAIMenu     = "ai_menu"
	actionAIChat     = "ai_chat"
	actionAIImage    = "ai_image"
	actionAdminMenu  = "admin_menu"
	actionGrantVIP   = "grant_vip"
	actionRevokeVIP  = "revoke_vip"
	actionAdminStats = "admin_stats"
)

// mainMenu renders the /start keyboard. Non-VIP users get the payment link
// where VIP users get the sections entry; the admin row is only rendered for
// the configured admin id.
func mainMenu(cfg *config.Config, isVIP, isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 الاشتراك في القناة", cfg.ChannelURL),
		),
	}

	if isVIP {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 الأقسام", actionSections),
		))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("💎 تفعيل الاشتراك - 10$", cfg.PaymentURL),
		))
	}

	if isAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠 أوامر المشرف", actionAdminMenu),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// sectionsMenu is not VIP-gated at render level; gating happens on the main
// menu branch.
func sectionsMenu(cfg *config.Config) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎓 الدورات", cfg.ResourceURL1),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📖 الكتب", cfg.ResourceURL2),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 قائمة الذكاء الاصطناعي", actionAIMenu),
		),
	)
}

func aiMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 الدردشة مع الذكاء الاصطناعي", actionAIChat),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 توليد صورة", actionAIImage),
		),
	)
}

func adminMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ منح VIP", actionGrantVIP),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ إزالة VIP", actionRevokeVIP),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 الإحصائيات", actionAdminStats),
		),
	)
}
