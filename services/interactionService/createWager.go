package interactionService

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"pitBossBot/models"
	"pitBossBot/services/betService"
	"pitBossBot/services/common"
	"pitBossBot/services/userService"
)

func CreateWager(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	userID := i.Member.User.ID

	_, err := userService.EnsureUser(db, userID, common.GetUsernameFromUser(i.Member.User))
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error provisioning user: %v", err), db)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	in := betService.CreateBetInput{
		CreatorID: userID,
		Sport:     optionMap["sport"].StringValue(),
		Market:    optionMap["market"].StringValue(),
		Side:      optionMap["side"].StringValue(),
		Stake:     optionMap["stake"].IntValue(),
	}
	if opt, ok := optionMap["opponent"]; ok {
		opponent := opt.UserValue(s)
		if opponent != nil {
			opponentID := opponent.ID
			in.OpponentID = &opponentID
		}
	}
	if opt, ok := optionMap["vs-house"]; ok && opt.BoolValue() {
		flag := "house"
		in.BotFlag = &flag
	}

	result, err := betService.CreateBet(db, in)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInsufficientCredits):
			respondEphemeral(s, i, "You don't have enough credits to cover that stake.")
		case errors.Is(err, common.ErrValidation):
			respondEphemeral(s, i, fmt.Sprintf("Invalid wager: %v", err))
		default:
			common.SendError(s, i, fmt.Errorf("error creating wager: %v", err), db)
		}
		return
	}

	if result.Status == models.BetStatusAccepted {
		content := fmt.Sprintf("Wager **#%d** is on! <@%s> takes side **%s** for **%d** credits, the house takes **%s**.",
			result.BetID, userID, in.Side, in.Stake, common.OppositeSide(in.Side))
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
		return
	}

	content := fmt.Sprintf("Wager **#%d**: <@%s> stakes **%d** credits on **%s / %s**, side **%s**. Who's in?",
		result.BetID, userID, in.Stake, in.Sport, in.Market, in.Side)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept Wager",
							Style:    discordgo.PrimaryButton,
							CustomID: fmt.Sprintf("accept_wager_%d", result.BetID),
						},
					},
				},
			},
		},
	})
	if err != nil {
		return
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return
	}
}
