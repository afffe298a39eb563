package interactionService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/betService"
	"pitBossBot/services/common"
)

func ListWagers(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	userID := i.Member.User.ID

	bets, err := betService.ListBets(db, userID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error listing wagers: %v", err), db)
		return
	}

	if len(bets) == 0 {
		respondEphemeral(s, i, "No wagers to show. Start one with `/challenge`.")
		return
	}

	description := ""
	for _, bet := range bets {
		line := fmt.Sprintf("**#%d** %s / %s - %d credits - %s",
			bet.ID, bet.Sport, bet.Market, bet.Stake, bet.Status)
		if bet.Status == models.BetStatusPending && bet.CreatorID != userID {
			line += " (open to accept)"
		}
		description += line + "\n"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎲 Wagers",
		Description: description,
		Color:       0xe67e22,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return
	}
}
