package userService

import (
	"errors"

	"gorm.io/gorm"

	"pitBossBot/config"
	"pitBossBot/models"
	"pitBossBot/services/common"
	"pitBossBot/services/ledgerService"
)

// EnsureUser creates the identity row and its wallet on first contact,
// funding the wallet with the configured starting credits. Repeat calls just
// refresh the stored username.
func EnsureUser(db *gorm.DB, discordID string, username string) (models.User, error) {
	starting := config.Load().StartingCredits

	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(models.User{DiscordID: discordID}).
			Attrs(models.User{Username: &username}).
			FirstOrCreate(&user)
		if result.Error != nil {
			// Concurrent first contact: someone else just created the row.
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return tx.Where("discord_id = ?", discordID).First(&user).Error
			}
			return result.Error
		}

		if username != "" {
			common.UpdateUserUsername(tx, &user, username)
		}

		err := ledgerService.ProvisionWallet(tx, discordID, starting)
		if err != nil && !errors.Is(err, common.ErrAlreadyExists) {
			return err
		}
		return nil
	})
	if err != nil {
		return models.User{}, common.StoreFailure(err)
	}
	return user, nil
}
