// Package bot provides Discord integration for puzzle sessions.
package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/foglight/battlesolitaire/internal/controller"
)

// DiscordBot represents the Discord bot instance.
type DiscordBot struct {
	session  *discordgo.Session
	appID    string
	ctrl     *controller.AppController
	notifier controller.NotificationService
	tracking sessionTracking
}

// sessionTracking holds the bot's view of who is playing what, and where,
// behind a single lock: hosting a session updates all three maps in one
// locked step, and joining updates the player and active-session maps,
// so splitting them across separate mutexes only bought false
// independence. A session's channel is the one it was hosted from.
type sessionTracking struct {
	mu               sync.RWMutex
	activeSessions   map[string]string // discordUserID -> sessionID
	playerToDiscord  map[string]string // playerID -> discordUserID
	sessionToChannel map[string]string // sessionID -> channelID
}

// NewDiscordBot creates a new Discord bot instance.
func NewDiscordBot(
	token, appID string,
	ctrl *controller.AppController,
	notifier controller.NotificationService,
) (*DiscordBot, error) {
	if appID == "" {
		return nil, fmt.Errorf("app ID is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &DiscordBot{
		session:  session,
		appID:    appID,
		ctrl:     ctrl,
		notifier: notifier,
		tracking: sessionTracking{
			activeSessions:   make(map[string]string),
			playerToDiscord:  make(map[string]string),
			sessionToChannel: make(map[string]string),
		},
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands.
func (b *DiscordBot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Discord bot connected successfully")

	b.subscribeToEvents()
	log.Println("Subscribed to session events")

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	log.Println("Slash commands registered successfully")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Received shutdown signal")
	case <-ctx.Done():
		log.Println("Context cancelled")
	}

	return b.Shutdown()
}

// Shutdown gracefully closes the Discord connection.
func (b *DiscordBot) Shutdown() error {
	log.Println("Shutting down Discord bot...")
	return b.session.Close()
}
