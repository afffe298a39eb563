package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/common"
	"pitBossBot/services/ledgerService"
	"pitBossBot/services/userService"
)

func ShowBalance(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	userID := i.Member.User.ID

	_, err := userService.EnsureUser(db, userID, common.GetUsernameFromUser(i.Member.User))
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error provisioning user: %v", err), db)
		return
	}

	balance, records, err := ledgerService.GetBalanceWithHistory(db, userID, 10)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error fetching balance: %v", err), db)
		return
	}

	response := fmt.Sprintf("You have **%d** credits.", balance)
	if len(records) > 0 {
		response += "\n\nRecent activity:"
		for _, record := range records {
			line := fmt.Sprintf("\n`%+d` %s", record.Amount, record.Kind)
			if record.BetID != nil {
				line += fmt.Sprintf(" (wager #%d)", *record.BetID)
			}
			response += line
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: response,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return
	}
}

func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	var wallets []models.Wallet
	db.Order("balance desc").Limit(10).Find(&wallets)

	if len(wallets) == 0 {
		response := "No wallets found on the leaderboard."
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: response,
			},
		})
		if err != nil {
			return
		}
		return
	}

	description := ""
	for idx, wallet := range wallets {
		username := wallet.OwnerID
		var user models.User
		if err := db.Where("discord_id = ?", wallet.OwnerID).First(&user).Error; err == nil {
			if user.Username != nil && *user.Username != "" {
				username = *user.Username
			}
		}
		description += fmt.Sprintf("**%d. %s** - %d credits\n", idx+1, username, wallet.Balance)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: description,
		Color:       0x00ff00,
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		return
	}
}
