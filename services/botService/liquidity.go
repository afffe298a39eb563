package botService

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pitBossBot/config"
	"pitBossBot/models"
	"pitBossBot/services/common"
	"pitBossBot/services/ledgerService"
)

// Well-known house identity. Resolved once per call site, never mutated.
const (
	BotDiscordID = "pit-boss-house"
	BotUsername  = "Pit Boss"
)

// EnsureBotIdentity makes sure the house identity and its bankroll wallet
// exist, and returns the house owner ID. Idempotent and safe under
// concurrent first-time invocation: uniqueness conflicts on either row are
// treated as success. An identity row without a wallet (a crashed first run)
// gets its wallet provisioned without recreating the identity.
func EnsureBotIdentity(db *gorm.DB) (string, error) {
	bankroll := config.Load().BotBankroll

	err := db.Transaction(func(tx *gorm.DB) error {
		var bot models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("discord_id = ?", BotDiscordID).
			First(&bot).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			username := BotUsername
			bot = models.User{DiscordID: BotDiscordID, Username: &username, IsBot: true}
			if err := tx.Create(&bot).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		} else if err != nil {
			return err
		}

		err = ledgerService.ProvisionWallet(tx, BotDiscordID, bankroll)
		if err != nil && !errors.Is(err, common.ErrAlreadyExists) {
			return err
		}
		return nil
	})
	if err != nil {
		return "", common.StoreFailure(err)
	}
	return BotDiscordID, nil
}
