package server

import "sort"

type leaderboardEntry struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
	IsWinner bool   `json:"is_winner"`
}

// buildLeaderboard ranks the non-host players by drink score and by action
// score independently, descending, ties kept in original roster order. The
// top entry is a winner only when it actually scored.
func buildLeaderboard(players []Player) (drink, action []leaderboardEntry) {
	contenders := make([]Player, 0, len(players))
	for _, p := range players {
		if p.IsHost {
			continue
		}
		contenders = append(contenders, p)
	}

	drink = rankBy(contenders, func(p Player) int { return p.DrinkScore })
	action = rankBy(contenders, func(p Player) int { return p.ActionScore })
	return drink, action
}

func rankBy(players []Player, score func(Player) int) []leaderboardEntry {
	ranked := make([]Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	entries := make([]leaderboardEntry, 0, len(ranked))
	for i, p := range ranked {
		entries = append(entries, leaderboardEntry{
			ID:       p.ID,
			Nickname: p.Nickname,
			Score:    score(p),
			IsWinner: i == 0 && score(p) > 0,
		})
	}
	return entries
}
