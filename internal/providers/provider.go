package providers

import (
	"context"

	"roster-service/internal/domain/players"
)

// PlayerSource fetches one page of normalized players from an upstream feed.
// Pages start at 1. Short and empty pages are returned as-is so the caller
// can decide when the feed is exhausted.
type PlayerSource interface {
	FetchPlayers(ctx context.Context, page, perPage int) ([]players.Player, error)
}
