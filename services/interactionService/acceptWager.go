package interactionService

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/services/betService"
	"pitBossBot/services/common"
	"pitBossBot/services/userService"
)

func AcceptWager(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	options := i.ApplicationCommandData().Options
	betID := uint(options[0].IntValue())
	AcceptWagerByID(s, i, db, betID)
}

// AcceptWagerByID backs both the slash command and the accept button.
func AcceptWagerByID(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, betID uint) {
	userID := i.Member.User.ID

	_, err := userService.EnsureUser(db, userID, common.GetUsernameFromUser(i.Member.User))
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error provisioning user: %v", err), db)
		return
	}

	err = betService.AcceptBet(db, betID, userID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			respondEphemeral(s, i, fmt.Sprintf("Wager #%d doesn't exist.", betID))
		case errors.Is(err, common.ErrInvalidTransition):
			respondEphemeral(s, i, "That wager can't be accepted - it may already be matched, or it's your own.")
		case errors.Is(err, common.ErrInsufficientCredits):
			respondEphemeral(s, i, "You don't have enough credits to cover that stake.")
		default:
			common.SendError(s, i, fmt.Errorf("error accepting wager: %v", err), db)
		}
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("<@%s> accepted wager **#%d**! Both stakes are in escrow.", userID, betID),
		},
	})
	if err != nil {
		return
	}
}
