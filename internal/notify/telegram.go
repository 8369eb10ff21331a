package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jobradar/internal/domain"
)

type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

// SendCurated pushes the top curated listings as one message. Notification
// failure is the caller's to log; the run's artifacts are already written.
func (t *Telegram) SendCurated(listings []domain.Listing, topN int) error {
	if len(listings) == 0 {
		return nil
	}
	if topN > 0 && len(listings) > topN {
		listings = listings[:topN]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "jobradar: %d curated postings\n\n", len(listings))
	for _, l := range listings {
		fmt.Fprintf(&b, "%s — %s [%d %s]\n", l.Title, l.Company, l.Score, l.Label)
		if len(l.MatchedLocations) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(l.MatchedLocations, ", "))
		}
		if l.Link != "" {
			fmt.Fprintf(&b, "  %s\n", l.Link)
		}
	}

	msg := tgbotapi.NewMessage(t.chatID, b.String())
	msg.DisableWebPagePreview = true
	_, err := t.api.Send(msg)
	return err
}
