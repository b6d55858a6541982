package economy

import (
	"context"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// Leaderboard returns the top accounts by points, served from a short-lived cache
func (s *service) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if entries, ok := s.board.Get(domain.LeaderboardSize); ok {
		logger.FromContext(ctx).Debug(LogMsgLeaderboardCached, "entries", len(entries))
		return entries, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entries, err := s.store.TopAccounts(ctx, domain.LeaderboardSize)
	if err != nil {
		return nil, err
	}
	s.board.Set(domain.LeaderboardSize, entries)
	return entries, nil
}
