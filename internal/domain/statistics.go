package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Statistics is the per-user study record. It is owned by exactly one user.
type Statistics struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	DaysStreak  int           `json:"daysStreak"`
	LastLogin   time.Time     `json:"lastLogin"`
	UsageTime   time.Duration `json:"usageTime"`
	RecentDecks []uuid.UUID   `json:"recentlyViewedDeckIds"`

	// Cards holds one entry per card the user has answered at least once.
	Cards map[uuid.UUID]*CardStatistics `json:"cardStatistics"`
}

func (s Statistics) EntityKind() Kind    { return KindStatistics }
func (s Statistics) EntityID() uuid.UUID { return s.ID }

// NewStatistics returns an empty statistics record for userID.
func NewStatistics(id, userID uuid.UUID) *Statistics {
	return &Statistics{
		ID:     id,
		UserID: userID,
		Cards:  make(map[uuid.UUID]*CardStatistics),
	}
}

// CardStatistics counts right and wrong answers for one (user, card) pair.
type CardStatistics struct {
	CardID        uuid.UUID `json:"cardId"`
	AnsweredRight int       `json:"answeredRight"`
	AnsweredWrong int       `json:"answeredWrong"`
}

// CardStats returns the entry for cardID, creating a zeroed one first if the
// pair has never been recorded.
func (s *Statistics) CardStats(cardID uuid.UUID) *CardStatistics {
	if s.Cards == nil {
		s.Cards = make(map[uuid.UUID]*CardStatistics)
	}
	cs, ok := s.Cards[cardID]
	if !ok {
		cs = &CardStatistics{CardID: cardID}
		s.Cards[cardID] = cs
	}
	return cs
}

// RecordAnswer applies one answer event for cardID and returns a copy of
// the updated entry.
func (s *Statistics) RecordAnswer(cardID uuid.UUID, correct bool) CardStatistics {
	cs := s.CardStats(cardID)
	if correct {
		cs.AnsweredRight++
	} else {
		cs.AnsweredWrong++
	}
	return *cs
}

// ViewDeck moves deckID to the front of the recently-viewed list and keeps
// at most limit entries. It returns a copy of the resulting list.
func (s *Statistics) ViewDeck(deckID uuid.UUID, limit int) []uuid.UUID {
	s.RecentDecks = PushRecent(s.RecentDecks, deckID, limit)
	return slices.Clone(s.RecentDecks)
}

// PushRecent returns list with id at the front, any earlier occurrence of id
// removed, truncated to limit elements. A non-positive limit yields an
// empty list.
func PushRecent(list []uuid.UUID, id uuid.UUID, limit int) []uuid.UUID {
	if limit <= 0 {
		return []uuid.UUID{}
	}
	out := make([]uuid.UUID, 0, min(len(list)+1, limit))
	out = append(out, id)
	for _, v := range list {
		if len(out) == limit {
			break
		}
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// RecordLogin updates the day streak for a login at now. Consecutive
// calendar days (UTC) extend the streak, a second login on the same day
// leaves it unchanged and any gap restarts it at one.
func (s *Statistics) RecordLogin(now time.Time) {
	today := truncateDay(now)
	switch {
	case s.LastLogin.IsZero():
		s.DaysStreak = 1
	case truncateDay(s.LastLogin).Equal(today):
		if s.DaysStreak == 0 {
			s.DaysStreak = 1
		}
	case truncateDay(s.LastLogin).AddDate(0, 0, 1).Equal(today):
		s.DaysStreak++
	default:
		s.DaysStreak = 1
	}
	s.LastLogin = now
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
