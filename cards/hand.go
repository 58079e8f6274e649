package cards

// BlackjackValue is the best a hand can be worth.
const BlackjackValue = 21

// Hand is the ordered cards held by the player or the dealer.
type Hand []Card

// hardValue counts every ace as 1 and also returns the number of aces.
func (h Hand) hardValue() (value, aces int) {
	for _, card := range h {
		if card.Rank == Ace {
			aces++
		}
		value += card.Rank.Points()
	}
	return value, aces
}

// Value is the highest total not over 21 obtainable by counting each ace
// as 1 or 11, or the all-aces-as-1 total when even that busts.
func (h Hand) Value() int {
	value, aces := h.hardValue()
	for range aces {
		if value+10 <= BlackjackValue {
			value += 10
		}
	}
	return value
}

// IsBust checks if the hand is over 21.
func (h Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

// IsSoft is true when at least one ace is counted as 11.
func (h Hand) IsSoft() bool {
	hard, _ := h.hardValue()
	return h.Value() != hard
}

// IsBlackjack checks if a hand is a natural (21 with the first two cards).
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == BlackjackValue
}
