package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService — опциональные пинги админу (новая регистрация, одобрение).
// При пустом токене или chat_id все вызовы — no-op.
type TelegramService struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	dryRun      bool
}

func NewTelegramService(botToken string, adminChatID int64, dryRun bool) *TelegramService {
	s := &TelegramService{adminChatID: adminChatID, dryRun: dryRun}
	if botToken == "" || adminChatID == 0 {
		log.Printf("[tg] disabled: token or admin chat not configured")
		return s
	}
	if dryRun {
		log.Printf("[tg] dry run: messages will be logged, not sent")
		return s
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] init failed, notifications disabled: %v", err)
		return s
	}
	s.bot = bot
	return s
}

func (s *TelegramService) notifyAdmin(text string) {
	if s == nil || s.adminChatID == 0 {
		return
	}
	if s.dryRun || s.bot == nil {
		log.Printf("[tg][dry] chat_id=%d text=%q", s.adminChatID, text)
		return
	}
	msg := tgbotapi.NewMessage(s.adminChatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("[tg][send] failed: %v", err)
	}
}

func (s *TelegramService) NotifyRegistration(fullName, email string) {
	s.notifyAdmin(fmt.Sprintf("New lecturer registration pending approval: %s <%s>", fullName, email))
}

func (s *TelegramService) NotifyApproval(fullName, email string) {
	s.notifyAdmin(fmt.Sprintf("Account approved: %s <%s>", fullName, email))
}
