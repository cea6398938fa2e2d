package rewards

import (
	"github.com/buxdao/holder-bot/internal/domain"
)

// DailyRates is the BUX earned per day for each token held in a collection.
// This is the only rate table; every reward computation reads it.
var DailyRates = map[domain.CollectionKey]uint64{
	domain.CollectionCelebCatz:       20,
	domain.CollectionMoneyMonsters3D: 4,
	domain.CollectionFckedCatz:       2,
	domain.CollectionMoneyMonsters:   2,
	domain.CollectionAIBitbots:       1,
	domain.CollectionAIWarriors:      1,
	domain.CollectionAISquirrels:     1,
	domain.CollectionAIEnergyApes:    1,
	domain.CollectionRjctdBots:       1,
	domain.CollectionCandyBots:       1,
	domain.CollectionDoodleBots:      1,
}

// DailyRate returns the BUX per day earned by a snapshot: each collection's size times its rate
func DailyRate(snapshot *domain.HoldingsSnapshot) uint64 {
	var total uint64
	for key, count := range snapshot.Counts() {
		total += DailyRates[key] * uint64(count)
	}
	return total
}
