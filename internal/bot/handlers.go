package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/foglight/battlesolitaire/internal/dto"
	"github.com/foglight/battlesolitaire/internal/server"
)

// handleInteraction is the main handler for all Discord interactions.
func (b *DiscordBot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "puzzle" {
		return
	}

	if len(data.Options) == 0 {
		respondError(s, i, "No subcommand provided")
		return
	}

	subcommand := data.Options[0]
	ctx := context.Background()

	userID := i.Member.User.ID
	username := i.Member.User.Username

	authResp, err := b.ctrl.Login(ctx, username, "discord", userID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to authenticate: %v", err))
		return
	}

	playerID := authResp.User.ID

	switch subcommand.Name {
	case "host":
		b.handleHost(ctx, s, i, authResp.User)
	case "join":
		b.handleJoin(ctx, s, i, playerID, subcommand.Options)
	case "list":
		b.handleList(ctx, s, i)
	case "guess":
		b.handleGuess(ctx, s, i, playerID, subcommand.Options)
	case "status":
		b.handleStatus(ctx, s, i, authResp.User)
	default:
		respondError(s, i, "Unknown subcommand")
	}
}

func (b *DiscordBot) handleHost(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	player dto.User,
) {
	sessionID, err := b.ctrl.HostSessionAction(ctx, player.ID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to create session: %v", err))
		return
	}

	discordUserID := i.Member.User.ID
	b.registerSession(player.ID, discordUserID, sessionID, i.ChannelID)

	embed := &discordgo.MessageEmbed{
		Title: "Puzzle session created!",
		Description: fmt.Sprintf(
			"Session ID: `%s`\n\nShare this ID with others so they can join!",
			sessionID,
		),
		Color: 0x00ff00,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf(
				"Use /puzzle guess to start revealing your board · lifetime solves: %d",
				player.PuzzlesSolved,
			),
		},
	}

	respondEmbed(s, i, embed, false) // Public announcement
}

func (b *DiscordBot) handleJoin(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	sessionID := options[0].StringValue()

	view, err := b.ctrl.JoinSessionAction(ctx, sessionID, playerID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to join session: %v", err))
		return
	}

	discordUserID := i.Member.User.ID
	b.trackPlayer(playerID, discordUserID)
	b.trackSession(discordUserID, sessionID)

	embed := &discordgo.MessageEmbed{
		Title:       "Joined session!",
		Description: fmt.Sprintf("Session ID: `%s`\n\nState: %s", sessionID, view.State),
		Color:       0x00ff00,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /puzzle guess to start revealing your board",
		},
	}

	respondEmbed(s, i, embed, true) // Ephemeral
}

func (b *DiscordBot) handleList(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
) {
	sessions, err := b.ctrl.ListSessionsAction(ctx)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to list sessions: %v", err))
		return
	}

	if len(sessions) == 0 {
		embed := &discordgo.MessageEmbed{
			Title:       "Open sessions",
			Description: "No sessions available. Use `/puzzle host` to create one!",
			Color:       0xffaa00,
		}
		respondEmbed(s, i, embed, true) // Ephemeral
		return
	}

	description := ""
	for _, sess := range sessions {
		description += fmt.Sprintf(
			"**%s** - Host: %s (%d player(s), %dx%d board)\n",
			sess.ID,
			sess.HostName,
			sess.PlayerCount,
			sess.Width,
			sess.Height,
		)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Open sessions",
		Description: description,
		Color:       0x0099ff,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /puzzle join <session_id> to join a session",
		},
	}

	respondEmbed(s, i, embed, true) // Ephemeral
}

func (b *DiscordBot) handleGuess(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	playerID string,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) {
	discordUserID := i.Member.User.ID
	sessionID, ok := b.getActiveSession(discordUserID)
	if !ok {
		respondError(
			s,
			i,
			"You are not in an active session. Use `/puzzle host` or `/puzzle join` first.",
		)
		return
	}

	optMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range options {
		optMap[opt.Name] = opt
	}

	x := int(optMap["x"].IntValue())
	y := int(optMap["y"].IntValue())

	label, err := server.ParseGuessLabel(optMap["label"].StringValue())
	if err != nil {
		respondError(s, i, err.Error())
		return
	}

	view, err := b.ctrl.GuessAction(ctx, sessionID, playerID, x, y, label)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to guess: %v", err))
		return
	}

	embed := FormatSessionState(&view)
	embed.Title = fmt.Sprintf("Guess at %s", CoordinateToChess(x, y))
	respondEmbed(s, i, embed, true) // Ephemeral
}

func (b *DiscordBot) handleStatus(
	ctx context.Context,
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	player dto.User,
) {
	discordUserID := i.Member.User.ID
	sessionID, ok := b.getActiveSession(discordUserID)
	if !ok {
		respondError(
			s,
			i,
			"You are not in an active session. Use `/puzzle host` or `/puzzle join` first.",
		)
		return
	}

	view, err := b.ctrl.GetSessionStateAction(ctx, sessionID, player.ID)
	if err != nil {
		respondError(s, i, fmt.Sprintf("Failed to get session state: %v", err))
		return
	}

	embed := FormatSessionState(&view)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Lifetime solves",
		Value:  fmt.Sprintf("%d", player.PuzzlesSolved),
		Inline: true,
	})
	respondEmbed(s, i, embed, true) // Ephemeral
}

// Helper functions for responding

func respondEmbed(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	embed *discordgo.MessageEmbed,
	ephemeral bool,
) {
	flags := discordgo.MessageFlags(0)
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       0xff0000,
	}
	respondEmbed(s, i, embed, true) // Errors are always ephemeral
}
