package services

import (
	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/services/interactionService"
)

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	switch i.ApplicationCommandData().Name {
	case "challenge":
		interactionService.CreateWager(s, i, db)
	case "accept-wager":
		interactionService.AcceptWager(s, i, db)
	case "resolve-wager":
		interactionService.ResolveWager(s, i, db)
	case "balance":
		ShowBalance(s, i, db)
	case "open-wagers":
		interactionService.ListWagers(s, i, db)
	case "leaderboard":
		ShowLeaderboard(s, i, db)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "challenge",
			Description: "Challenge someone to a head-to-head wager (or the house)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "sport",
					Description: "Sport the wager is on",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "market",
					Description: "Market (e.g. spread, moneyline)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "side",
					Description: "Your side of the market",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "A", Value: "A"},
						{Name: "B", Value: "B"},
					},
				},
				{
					Name:        "stake",
					Description: "Credits each side puts up",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
				{
					Name:        "opponent",
					Description: "Specific opponent to challenge",
					Type:        discordgo.ApplicationCommandOptionUser,
					Required:    false,
				},
				{
					Name:        "vs-house",
					Description: "Have the house take the other side immediately",
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Required:    false,
				},
			},
		},
		{
			Name:        "accept-wager",
			Description: "Accept an open wager",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "wager-id",
					Description: "Wager ID",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
			},
		},
		{
			Name:        "resolve-wager",
			Description: "Declare the winner of an active wager",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "wager-id",
					Description: "Wager ID",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
				{
					Name:        "winner",
					Description: "Which side won",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Creator", Value: "CREATOR"},
						{Name: "Opponent", Value: "OPPONENT"},
					},
				},
			},
		},
		{
			Name:        "balance",
			Description: "Show your credits and recent transactions",
		},
		{
			Name:        "open-wagers",
			Description: "List your wagers and open challenges",
		},
		{
			Name:        "leaderboard",
			Description: "Top wallets by credits",
		},
	}

	for _, command := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, "", command)
		if err != nil {
			return err
		}
	}
	return nil
}
