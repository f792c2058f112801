package server

// Projections of room state in the wire format clients consume. All of
// them are built while holding the room lock, so a reader never observes
// a half-applied mutation.

func playerView(p *Player) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"nickname":     p.Nickname,
		"is_host":      p.IsHost,
		"drink_score":  p.DrinkScore,
		"action_score": p.ActionScore,
	}
}

func cardView(c Card) map[string]any {
	return map[string]any{
		"id":            c.ID,
		"image_path":    c.ImagePath,
		"card_type":     c.Type,
		"drink_points":  c.DrinkPoints,
		"action_points": c.ActionPoints,
	}
}

func roomView(room *Room) map[string]any {
	players := make([]map[string]any, 0, len(room.Players))
	for i := range room.Players {
		players = append(players, playerView(&room.Players[i]))
	}
	return map[string]any{
		"id":                   room.ID,
		"code":                 room.Code,
		"game_id":              room.GameID,
		"game_name":            room.GameName,
		"status":               room.Status,
		"players":              players,
		"current_player_index": room.CurrentPlayerIndex,
		"current_card_index":   room.CurrentCardIndex,
		"total_cards":          room.TotalCards(),
	}
}

// roomStateView is roomView plus the current card and current player,
// which only exist while the room is playing.
func roomStateView(room *Room) map[string]any {
	state := map[string]any{
		"room":           roomView(room),
		"current_card":   nil,
		"current_player": nil,
	}
	if room.Status != statusPlaying {
		return state
	}
	if assignment := room.CurrentAssignment(); assignment != nil {
		state["current_card"] = cardView(assignment.Card)
	}
	if current := room.CurrentPlayer(); current != nil {
		state["current_player"] = playerView(current)
	}
	return state
}

func leaderboardView(room *Room) map[string]any {
	drink, action := buildLeaderboard(room.Players)
	return map[string]any{
		"drink_leaderboard":  drink,
		"action_leaderboard": action,
	}
}
