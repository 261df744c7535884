package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
)

// Notifier mirrors commerce events into a Telegram ops chat, one forum topic
// per event class. Fully disabled when no chat id or token is configured;
// every method is then a no-op.
type Notifier struct {
	bot *bot.Bot
	cfg *config.Config
}

func New(cfg *config.Config) *Notifier {
	n := &Notifier{cfg: cfg}
	if cfg.BotToken == "" || cfg.LogTelegramChatID == 0 {
		return n
	}
	b, err := bot.New(cfg.BotToken)
	if err != nil {
		slog.Error("create notifier bot", "error", err)
		return n
	}
	n.bot = b
	return n
}

type EventType string

const (
	EventError         EventType = "error"
	EventPurchase      EventType = "purchase"
	EventMembership    EventType = "membership"
	EventCoupon        EventType = "coupon"
	EventReconcileMiss EventType = "reconcileMiss"
)

func (n *Notifier) send(eventType EventType, message string) {
	if n.bot == nil {
		return
	}

	topicID := n.topicID(eventType)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > config.MaxMessageLen {
		message = string([]rune(message)[:config.MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.NotifyTimeout)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send ops notification", "type", eventType, "error", err)
	}
}

func (n *Notifier) Error(err error, where string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		where, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	n.send(EventError, msg)
}

func (n *Notifier) Purchase(userID, productID, transactionID, method string, amount float64, currency string) {
	msg := fmt.Sprintf("💳 *Purchase*\n\n*User:* `%s`\n*Product:* %s\n*Amount:* %.2f %s\n*Method:* %s\n*Tx:* `%s`",
		userID, productID, amount, currency, method, transactionID)
	n.send(EventPurchase, msg)
}

func (n *Notifier) MembershipExtended(userID, planID string, expiry time.Time) {
	msg := fmt.Sprintf("⭐ *Membership*\n\n*User:* `%s`\n*Plan:* %s\n*Expires:* %s",
		userID, planID, expiry.Format("2006-01-02"))
	n.send(EventMembership, msg)
}

func (n *Notifier) CouponRedeemed(userID, code string) {
	msg := fmt.Sprintf("🎟 *Coupon Redeemed*\n\n*User:* `%s`\n*Code:* `%s`", userID, code)
	n.send(EventCoupon, msg)
}

func (n *Notifier) ReconcileMiss(userID, transactionID, paymentID string) {
	msg := fmt.Sprintf("🔍 *Reconciliation Miss*\n\n*User:* `%s`\n*Tx:* `%s`\n*Payment:* `%s`\nBooking confirmed to user; record needs manual attach.",
		userID, transactionID, paymentID)
	n.send(EventReconcileMiss, msg)
}

func (n *Notifier) topicID(eventType EventType) int {
	switch eventType {
	case EventError:
		return n.cfg.LogTopicError
	case EventPurchase:
		return n.cfg.LogTopicPurchase
	case EventMembership:
		return n.cfg.LogTopicMembership
	case EventCoupon:
		return n.cfg.LogTopicCoupon
	case EventReconcileMiss:
		return n.cfg.LogTopicReconcileMiss
	default:
		return 0
	}
}
