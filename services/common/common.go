package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pitBossBot/models"
)

// OppositeSide returns the complementary side of a two-sided market.
func OppositeSide(side string) string {
	if side == models.SideA {
		return models.SideB
	}
	return models.SideA
}

func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, db *gorm.DB) {
	Logger().Error("interaction failed", zap.Error(err))

	userID := ""
	if i != nil {
		if i.Member != nil && i.Member.User != nil {
			userID = i.Member.User.ID
		}
		localErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("An error occured: %v", err),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if localErr != nil {
			Logger().Error("error sending interaction response", zap.Error(localErr))
		}
	}
	errLog := models.ErrorLog{
		UserID:  userID,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

// GetUsernameFromUser extracts a display name from a discordgo.User object
func GetUsernameFromUser(user *discordgo.User) string {
	if user == nil {
		return "Unknown User"
	}
	username := user.GlobalName
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return "Unknown User"
	}
	return username
}

// UpdateUserUsername updates the username field in the database if it's different
func UpdateUserUsername(db *gorm.DB, user *models.User, username string) {
	if user.Username == nil || *user.Username != username {
		user.Username = &username
		db.Save(user)
	}
}
