package interactionService

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/services/betService"
	"pitBossBot/services/common"
)

func ResolveWager(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	betID := uint(optionMap["wager-id"].IntValue())
	winner := optionMap["winner"].StringValue()
	resolverID := i.Member.User.ID

	result, err := betService.ResolveBet(db, betID, resolverID, winner)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			respondEphemeral(s, i, fmt.Sprintf("Wager #%d doesn't exist.", betID))
		case errors.Is(err, common.ErrInvalidTransition):
			respondEphemeral(s, i, "That wager can't be resolved - it's not active.")
		case errors.Is(err, common.ErrValidation):
			respondEphemeral(s, i, fmt.Sprintf("Invalid resolution: %v", err))
		default:
			common.SendError(s, i, fmt.Errorf("error resolving wager: %v", err), db)
		}
		return
	}

	content := fmt.Sprintf("Wager **#%d** resolved: <@%s> takes the pot of **%d** credits!",
		betID, result.WinnerID, result.Payout)
	if result.BotLine != nil {
		content += fmt.Sprintf("\n\n*%s*", *result.BotLine)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		return
	}
}
