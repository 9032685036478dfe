package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "puzzle",
		Description: "Race others to solve a battleship puzzle!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "host",
				Description: "Start a new puzzle session",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "join",
				Description: "Join an existing puzzle session",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "session_id",
						Description: "The session ID to join",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
					},
				},
			},
			{
				Name:        "list",
				Description: "List open puzzle sessions",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "guess",
				Description: "Declare what a cell on your board contains",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "x",
						Description: "X coordinate (0-based)",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
						MinValue:    floatPtr(0),
					},
					{
						Name:        "y",
						Description: "Y coordinate (0-based)",
						Type:        discordgo.ApplicationCommandOptionInteger,
						Required:    true,
						MinValue:    floatPtr(0),
					},
					{
						Name:        "label",
						Description: "What you believe the cell holds",
						Type:        discordgo.ApplicationCommandOptionString,
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "water", Value: "water"},
							{Name: "ship", Value: "ship"},
						},
					},
				},
			},
			{
				Name:        "status",
				Description: "View your current board and progress",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	},
}

func floatPtr(f float64) *float64 {
	return &f
}

// registerCommands registers all slash commands with Discord.
func (b *DiscordBot) registerCommands() error {
	log.Println("Registering slash commands...")

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.appID, "", cmd)
		if err != nil {
			return err
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}
