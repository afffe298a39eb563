package betService

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pitBossBot/models"
	"pitBossBot/services/botService"
	"pitBossBot/services/common"
	"pitBossBot/services/escrowService"
	"pitBossBot/services/flavorService"
)

const (
	WinnerCreator  = "CREATOR"
	WinnerOpponent = "OPPONENT"
)

type CreateBetInput struct {
	CreatorID  string
	Sport      string
	Market     string
	Side       string
	Stake      int64
	OpponentID *string
	BotFlag    *string
}

type CreateBetResult struct {
	BetID   uint
	Status  string
	BotLine *string
}

type ResolveBetResult struct {
	WinnerID string
	Payout   int64
	BotLine  *string
}

// CreateBet inserts a PENDING bet and escrows the creator's stake. With a
// bot flag the house is matched in the same transaction: its stake is
// escrowed, the bet lands directly in ACCEPTED, and the accept event is
// attributed to the house identity. Everything rolls back together, so a
// failed escrow leaves no bet row and no events.
func CreateBet(db *gorm.DB, in CreateBetInput) (*CreateBetResult, error) {
	if in.CreatorID == "" || in.Sport == "" || in.Market == "" {
		return nil, fmt.Errorf("%w: creator, sport and market are required", common.ErrValidation)
	}
	if in.Stake <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", common.ErrValidation)
	}
	if in.Side != models.SideA && in.Side != models.SideB {
		return nil, fmt.Errorf("%w: side must be %q or %q", common.ErrValidation, models.SideA, models.SideB)
	}

	var botID string
	if in.BotFlag != nil {
		// Provisioning is idempotent and commits on its own; the match
		// itself still happens inside the bet transaction below.
		id, err := botService.EnsureBotIdentity(db)
		if err != nil {
			return nil, err
		}
		botID = id
	}

	bet := models.Bet{
		CreatorID:   in.CreatorID,
		OpponentID:  in.OpponentID,
		BotFlag:     in.BotFlag,
		Sport:       in.Sport,
		Market:      in.Market,
		SideCreator: in.Side,
		Stake:       in.Stake,
		Status:      models.BetStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bet).Error; err != nil {
			return err
		}
		if err := escrowService.Hold(tx, in.CreatorID, bet.ID, in.Stake); err != nil {
			return err
		}
		if err := appendEvent(tx, bet.ID, in.CreatorID, models.BetActionCreated, nil); err != nil {
			return err
		}

		if in.BotFlag != nil {
			if err := escrowService.Hold(tx, botID, bet.ID, in.Stake); err != nil {
				return err
			}
			opposite := common.OppositeSide(in.Side)
			if err := tx.Model(&bet).Updates(map[string]interface{}{
				"opponent_id":   botID,
				"side_opponent": opposite,
				"status":        models.BetStatusAccepted,
			}).Error; err != nil {
				return err
			}
			bet.OpponentID = &botID
			bet.SideOpponent = &opposite
			bet.Status = models.BetStatusAccepted
			if err := appendEvent(tx, bet.ID, botID, models.BetActionAccepted, in.BotFlag); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, asCoreError(err)
	}

	result := &CreateBetResult{BetID: bet.ID, Status: bet.Status}
	if in.BotFlag != nil {
		line := flavorService.GenerateFlavorLine(flavorService.PhasePreBet)
		result.BotLine = &line
	}

	common.Logger().Info("bet created",
		zap.Uint("bet_id", bet.ID),
		zap.String("creator_id", in.CreatorID),
		zap.String("status", bet.Status),
		zap.Int64("stake", in.Stake),
	)
	return result, nil
}

// AcceptBet matches an open bet. The bet row is locked for the whole
// transition, so concurrent accepts serialize: the first one wins and every
// later one sees a non-PENDING status.
func AcceptBet(db *gorm.DB, betID uint, accepterID string) error {
	if accepterID == "" {
		return fmt.Errorf("%w: accepter is required", common.ErrValidation)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var bet models.Bet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bet, betID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}

		if bet.Status != models.BetStatusPending {
			return fmt.Errorf("%w: bet %d is %s", common.ErrInvalidTransition, bet.ID, bet.Status)
		}
		if bet.CreatorID == accepterID {
			return fmt.Errorf("%w: creator cannot accept their own bet", common.ErrInvalidTransition)
		}

		if err := escrowService.Hold(tx, accepterID, bet.ID, bet.Stake); err != nil {
			return err
		}

		opposite := common.OppositeSide(bet.SideCreator)
		if err := tx.Model(&bet).Updates(map[string]interface{}{
			"opponent_id":   accepterID,
			"side_opponent": opposite,
			"status":        models.BetStatusAccepted,
		}).Error; err != nil {
			return err
		}
		return appendEvent(tx, bet.ID, accepterID, models.BetActionAccepted, nil)
	})
	if err != nil {
		return asCoreError(err)
	}

	common.Logger().Info("bet accepted",
		zap.Uint("bet_id", betID),
		zap.String("accepter_id", accepterID),
	)
	return nil
}

// ResolveBet settles an ACCEPTED bet, paying the winner both stakes exactly
// once. The row lock makes concurrent resolves mutually exclusive; any second
// attempt sees RESOLVED and fails. The resolver is deliberately not required
// to be a participant.
func ResolveBet(db *gorm.DB, betID uint, resolverID string, winner string) (*ResolveBetResult, error) {
	if resolverID == "" {
		return nil, fmt.Errorf("%w: resolver is required", common.ErrValidation)
	}
	if winner != WinnerCreator && winner != WinnerOpponent {
		return nil, fmt.Errorf("%w: winner must be %q or %q", common.ErrValidation, WinnerCreator, WinnerOpponent)
	}

	var result ResolveBetResult
	var botOpponent bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var bet models.Bet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bet, betID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}

		if bet.Status != models.BetStatusAccepted {
			return fmt.Errorf("%w: bet %d is %s", common.ErrInvalidTransition, bet.ID, bet.Status)
		}

		winnerID := bet.CreatorID
		if winner == WinnerOpponent {
			winnerID = *bet.OpponentID
		}
		payout := 2 * bet.Stake

		if err := escrowService.Release(tx, winnerID, bet.ID, payout); err != nil {
			return err
		}
		if err := tx.Model(&bet).Update("status", models.BetStatusResolved).Error; err != nil {
			return err
		}
		if err := appendEvent(tx, bet.ID, resolverID, models.BetActionResolved, &winner); err != nil {
			return err
		}

		result = ResolveBetResult{WinnerID: winnerID, Payout: payout}
		botOpponent = bet.BotFlag != nil
		return nil
	})
	if err != nil {
		return nil, asCoreError(err)
	}

	// Flavor is a pure lookup over the already-settled outcome; it never
	// touches the ledger.
	if botOpponent {
		phase := flavorService.PhasePostLose
		if winner == WinnerOpponent {
			phase = flavorService.PhasePostWin
		}
		line := flavorService.GenerateFlavorLine(phase)
		result.BotLine = &line
	}

	common.Logger().Info("bet resolved",
		zap.Uint("bet_id", betID),
		zap.String("winner_id", result.WinnerID),
		zap.Int64("payout", result.Payout),
	)
	return &result, nil
}

// ListBets returns every bet the user participates in, plus open PENDING
// bets available for matching, newest first.
func ListBets(db *gorm.DB, userID string) ([]models.Bet, error) {
	var bets []models.Bet
	err := db.Where("creator_id = ? OR opponent_id = ? OR status = ?",
		userID, userID, models.BetStatusPending).
		Order("created_at DESC").
		Find(&bets).Error
	if err != nil {
		return nil, common.StoreFailure(err)
	}
	return bets, nil
}

func appendEvent(tx *gorm.DB, betID uint, actorID, action string, metadata *string) error {
	event := models.BetEvent{
		BetID:    betID,
		ActorID:  actorID,
		Action:   action,
		Metadata: metadata,
	}
	return tx.Create(&event).Error
}

// asCoreError passes caller-facing error kinds through unchanged and wraps
// anything else as an opaque store failure, after the transaction has rolled
// back.
func asCoreError(err error) error {
	if common.IsDomainError(err) {
		return err
	}
	return common.StoreFailure(err)
}
