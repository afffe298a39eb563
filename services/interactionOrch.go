package services

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pitBossBot/services/common"
	"pitBossBot/services/interactionService"
)

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, "accept_wager_") {
		betID, err := strconv.Atoi(strings.TrimPrefix(customID, "accept_wager_"))
		if err != nil {
			common.Logger().Error("error parsing wager ID", zap.Error(err))
			return
		}
		interactionService.AcceptWagerByID(s, i, db, uint(betID))
	}
}
