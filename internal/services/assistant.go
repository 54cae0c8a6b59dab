package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultReplyDelay is the minimum time before the assistant answers; the
// canned reply is deferred, never delivered earlier.
const DefaultReplyDelay = 800 * time.Millisecond

const fallbackReply = "I'm not sure about that one. Try asking about 'Wallet', 'Points', 'Shop', or 'Stream'."

// knowledgeBase maps keywords to canned answers, mirroring the client's help
// agent.
var knowledgeBase = map[string]string{
	"wallet":  "Your wallet holds your balance (£) and Points. You can top it up, send funds to other users using their address, or receive funds via your QR code.",
	"points":  "PTS (Points) are earned by subscribing to the stream, chatting, and attending events. You can spend them in the Shop on exclusive emoji packs.",
	"shop":    "The Drop (Shop) is where you buy Asset Packs. These include emojis and reactions to use during the live stream.",
	"emoji":   "Emojis are 'Assets' in your inventory. You start with none. Visit the Shop to buy packs like the 'Rave Starter Pack' to get Fire and Rewind reactions.",
	"stream":  "The Live Stream is powered by Livepeer. If it's lagging, try refreshing. You can interact using the reaction bar at the bottom if you have assets.",
	"admin":   "Admin access is restricted to the Core Team. If you have a key, use the Shield icon in the bottom right to access the CMS.",
	"profile": "Your profile has two sides: Private (Account/Wallet) and Public (Myspace-style). You can customize your public look in the settings.",
	"upload":  "To upload content, you must be an Admin. Use the CMS console to add Livepeer Playback IDs for video or image URLs.",
	"james":   "That's me! I'm James, your virtual guide to the underground. I'm running on a neural net trained on 90s rave flyers and basslines.",
	"hello":   "Safe! Good to see you. How can I help you navigate the platform today?",
	"hi":      "Yo! Welcome to Four To The Floor. Need a hand?",
}

// AssistantService is the help agent "James". Replies come from keyword
// matching and are delivered no earlier than the configured delay, via a
// timer rather than a blocking sleep so the caller's context still cancels.
type AssistantService struct {
	log   *slog.Logger
	delay time.Duration
}

func NewAssistantService(log *slog.Logger, delay time.Duration) *AssistantService {
	if delay <= 0 {
		delay = DefaultReplyDelay
	}

	return &AssistantService{
		log:   log,
		delay: delay,
	}
}

// Greeting opens the conversation.
func (s *AssistantService) Greeting(username string) string {
	return fmt.Sprintf("Yo %s. I'm James. Need help with the site?", username)
}

// Ask answers a user question after the minimum delay.
func (s *AssistantService) Ask(ctx context.Context, username, message string) (string, error) {
	const op = "services.AssistantService.Ask"

	reply := s.lookup(message)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
	}

	s.log.Info("assistant replied", slog.String("op", op), slog.String("username", username))

	return reply, nil
}

func (s *AssistantService) lookup(message string) string {
	lowered := strings.ToLower(message)

	for keyword, answer := range knowledgeBase {
		if strings.Contains(lowered, keyword) {
			return answer
		}
	}

	return fallbackReply
}
