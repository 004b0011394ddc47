package telegram

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/models"
	"github.com/ytinfo/backend/internal/videos"
)

const usage = "Send me a YouTube link (watch, youtu.be or shorts) and I will reply with its title, author and download options.\n\nYou can also use /info <url>."

// Sender delivers outgoing messages. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// MetadataService resolves a pasted URL into video metadata.
type MetadataService interface {
	FetchMetadata(ctx context.Context, rawURL string) (models.VideoMetadataResult, error)
}

// Bot answers chat messages containing YouTube links.
type Bot struct {
	sender   Sender
	metadata MetadataService
	logger   *slog.Logger
}

// New returns a Bot replying through sender.
func New(sender Sender, metadata MetadataService, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{sender: sender, metadata: metadata, logger: logger}
}

// Run handles updates until ctx is cancelled or the channel is closed.
// A failed reply is logged and does not stop the loop.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.HandleUpdate(ctx, update); err != nil {
				b.logger.Error("handle telegram update", "update_id", update.UpdateID, "error", err)
			}
		}
	}
}

// HandleUpdate replies to a single update. Updates without message text are ignored.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	requestID := uuid.NewString()
	logger := b.logger.With(
		slog.String("request_id", requestID),
		slog.Int("update_id", update.UpdateID),
		slog.Int64("chat_id", msg.Chat.ID),
	)
	ctx = logging.WithLogger(ctx, logger)
	ctx = logging.WithRequestID(ctx, requestID)

	input := msg.Text
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			return b.send(newReply(msg, html.EscapeString(usage), ""))
		case "info":
			input = msg.CommandArguments()
		default:
			return b.send(newReply(msg, "Unknown command.\n\n"+html.EscapeString(usage), ""))
		}
	}

	if b.metadata == nil {
		return b.send(newReply(msg, failureText(videos.ResultFor(videos.ErrProviderUnavailable)), ""))
	}

	result, err := b.metadata.FetchMetadata(ctx, input)
	if err != nil {
		res := videos.ResultFor(err)
		logger.Warn("telegram lookup failed", "kind", res.Kind, "error", err)
		return b.send(newReply(msg, failureText(res), watchURL(res.VideoID)))
	}

	logger.Info("telegram lookup succeeded", "videoId", result.VideoID)
	return b.send(newReply(msg, successText(result), watchURL(result.VideoID)))
}

func (b *Bot) send(reply tgbotapi.MessageConfig) error {
	if b.sender == nil {
		return fmt.Errorf("telegram sender not configured")
	}
	if _, err := b.sender.Send(reply); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

func newReply(msg *tgbotapi.Message, text, buttonURL string) tgbotapi.MessageConfig {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeHTML
	reply.ReplyToMessageID = msg.MessageID
	reply.DisableWebPagePreview = true
	if buttonURL != "" {
		reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("Open on YouTube", buttonURL)),
		)
	}
	return reply
}

func watchURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return videos.WatchURLFor(videoID)
}

func successText(result models.VideoMetadataResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(result.Title))
	fmt.Fprintf(&sb, "By %s\n", html.EscapeString(result.Author))
	fmt.Fprintf(&sb, "Duration: %s\n", html.EscapeString(result.Duration))
	fmt.Fprintf(&sb, "Video ID: <code>%s</code>\n", html.EscapeString(result.VideoID))
	writeList(&sb, result.Instructions)
	return sb.String()
}

func failureText(res models.ErrorResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(res.Error))
	writeList(&sb, res.Instructions)
	return sb.String()
}

func writeList(sb *strings.Builder, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString(html.EscapeString(line))
		sb.WriteString("\n")
	}
}
