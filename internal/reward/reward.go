package reward

import (
	"errors"
	"math"

	"github.com/mirgames/donate-api/internal/models"
)

// Calculator converts a monetary amount into in-game currency using
// fixed, process-wide conversion rates.
type Calculator struct {
	coinRate  float64
	moneyRate float64
}

func NewCalculator(coinRate, moneyRate float64) (*Calculator, error) {
	if coinRate <= 0 || moneyRate <= 0 {
		return nil, errors.New("conversion rates must be positive")
	}
	return &Calculator{coinRate: coinRate, moneyRate: moneyRate}, nil
}

// Compute maps (kind, amount) to a reward. Rewards are whole units,
// always rounded down so floating-point noise never over-issues.
func (c *Calculator) Compute(kind string, amount float64) (models.Reward, error) {
	switch kind {
	case models.KindCoins:
		return models.Reward{Coins: int64(math.Floor(amount * c.coinRate))}, nil
	case models.KindMoney:
		return models.Reward{Money: int64(math.Floor(amount * c.moneyRate))}, nil
	default:
		return models.Reward{}, models.ErrInvalidRewardKind
	}
}
