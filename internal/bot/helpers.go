package bot

// trackPlayer associates a player ID with their Discord user ID.
func (b *DiscordBot) trackPlayer(playerID, discordUserID string) {
	b.tracking.mu.Lock()
	defer b.tracking.mu.Unlock()
	b.tracking.playerToDiscord[playerID] = discordUserID
}

// trackSession stores the active puzzle session for a Discord user.
func (b *DiscordBot) trackSession(discordUserID, sessionID string) {
	b.tracking.mu.Lock()
	defer b.tracking.mu.Unlock()
	b.tracking.activeSessions[discordUserID] = sessionID
}

// getActiveSession retrieves the active puzzle session for a Discord user.
func (b *DiscordBot) getActiveSession(discordUserID string) (string, bool) {
	b.tracking.mu.RLock()
	defer b.tracking.mu.RUnlock()
	sessionID, ok := b.tracking.activeSessions[discordUserID]
	return sessionID, ok
}

// channelForSession returns the channel tracking session events for
// sessionID: the channel it was hosted from, if it was hosted via the bot.
func (b *DiscordBot) channelForSession(sessionID string) (string, bool) {
	b.tracking.mu.RLock()
	defer b.tracking.mu.RUnlock()
	channelID, ok := b.tracking.sessionToChannel[sessionID]
	return channelID, ok
}

// registerSession records the player, their active session, and the
// channel that session should notify, as one atomic update.
func (b *DiscordBot) registerSession(playerID, discordUserID, sessionID, channelID string) {
	b.tracking.mu.Lock()
	defer b.tracking.mu.Unlock()

	b.tracking.playerToDiscord[playerID] = discordUserID
	b.tracking.activeSessions[discordUserID] = sessionID
	b.tracking.sessionToChannel[sessionID] = channelID
}
