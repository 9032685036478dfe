package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/foglight/battlesolitaire/internal/events"
)

// subscribeToEvents subscribes the bot to session events across all sessions.
func (b *DiscordBot) subscribeToEvents() {
	_, ch := b.notifier.SubscribeAll()
	go func() {
		for event := range ch {
			b.handleSessionEvent(event)
		}
	}()
}

// handleSessionEvent processes a session event and notifies its channel.
func (b *DiscordBot) handleSessionEvent(event *events.SessionEvent) {
	channelID, ok := b.channelForSession(event.SessionID)

	if !ok || channelID == "" {
		return // No channel tracked for this session
	}

	embed := b.formatEventEmbed(event)
	if embed == nil {
		return
	}

	if err := b.sendChannelMessage(channelID, "", embed); err != nil {
		log.Printf("Failed to send message to channel %s: %v", channelID, err)
	}
}

// formatEventEmbed creates an embed for the given event.
func (b *DiscordBot) formatEventEmbed(event *events.SessionEvent) *discordgo.MessageEmbed {
	switch event.Type {
	case events.EventPlayerJoined:
		return &discordgo.MessageEmbed{
			Title:       "A player joined",
			Description: "Someone joined the puzzle session.",
			Color:       0x00ff00,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Session ID: %s", event.SessionID),
			},
		}

	case events.EventGuessMade:
		data, ok := event.Data.(events.GuessEventData)
		if !ok {
			return nil
		}
		coord := CoordinateToChess(data.X, data.Y)
		return &discordgo.MessageEmbed{
			Title:       "Guess made",
			Description: fmt.Sprintf("A player guessed %s. Result: %s", coord, data.Result),
			Color:       0xff9900,
		}

	case events.EventPuzzleSolved:
		data, ok := event.Data.(events.PuzzleSolvedEventData)
		if !ok {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "Puzzle solved!",
			Description: fmt.Sprintf("A player finished their board with %d mistake(s).", data.Mistakes),
			Color:       0x00ff00,
		}

	case events.EventSessionOver:
		data, ok := event.Data.(events.SessionOverEventData)
		if !ok {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "Session over",
			Description: fmt.Sprintf("Winner: %s", data.Winner),
			Color:       0xffd700,
		}

	default:
		return nil
	}
}

// sendChannelMessage sends a message to a Discord channel.
func (b *DiscordBot) sendChannelMessage(
	channelID, content string,
	embed *discordgo.MessageEmbed,
) error {
	_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("failed to send channel message: %w", err)
	}
	return nil
}
