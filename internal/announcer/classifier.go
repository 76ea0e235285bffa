package announcer

// Result pairs the classified transition with the snapshot to carry into
// the next event.
type Result struct {
	Transition Transition
	Snapshot   Snapshot
}

// Classify decides which of the six transitions a voice-state update
// represents and computes the next snapshot. It is pure apart from
// directory reads: the caller owns the snapshot and passes it in on every
// call. privateName substitutes for the channel title whenever the channel
// is a DM-style one.
func Classify(dir Directory, ev Event, prev Snapshot, localUserID string, privateName string) Result {
	if ev.UserID == localUserID {
		return classifySelf(dir, ev, prev, localUserID, privateName)
	}
	return classifyOther(dir, ev, prev, privateName)
}

func classifySelf(dir Directory, ev Event, prev Snapshot, localUserID string, privateName string) Result {
	// The snapshot is always replaced with the live roster of wherever the
	// local user ended up, even when no announcement comes out of the event.
	next := dir.Roster(ev.ChannelID)

	user, known := dir.Username(localUserID)

	if ev.ChannelID == "" {
		// The event carries no previous channel; the one just left is
		// recovered from the first snapshot entry. An empty snapshot means
		// the leave was already accounted for, so there is nothing to say.
		if len(prev) == 0 {
			return Result{Snapshot: next}
		}
		channel, found := dir.Channel(prev[0].ChannelID)
		if !found || !known {
			return Result{Snapshot: next}
		}
		return Result{
			Transition: Transition{Kind: SelfLeave, User: user, Channel: displayName(channel, privateName)},
			Snapshot:   next,
		}
	}

	channel, found := dir.Channel(ev.ChannelID)
	if !found || !known {
		return Result{Snapshot: next}
	}

	var kind Kind
	switch {
	case !channel.Private && len(prev) > 0 && prev[0].ChannelID != ev.ChannelID:
		kind = SelfMove
	case len(prev) == 0:
		kind = SelfJoin
	default:
		// Redundant update for the channel already occupied
		return Result{Snapshot: next}
	}

	return Result{
		Transition: Transition{Kind: kind, User: user, Channel: displayName(channel, privateName)},
		Snapshot:   next,
	}
}

func classifyOther(dir Directory, ev Event, prev Snapshot, privateName string) Result {
	watchedID := dir.CurrentVoiceChannelID()
	if watchedID == "" {
		return Result{Snapshot: prev}
	}
	watched, found := dir.Channel(watchedID)
	if !found {
		return Result{Snapshot: prev}
	}

	var kind Kind
	switch {
	case ev.ChannelID == watched.ID && !prev.Contains(ev.UserID):
		kind = OtherJoin
	case ev.ChannelID == "" && prev.Contains(ev.UserID):
		kind = OtherLeave
	default:
		// The event does not touch the watched channel, or repeats what the
		// snapshot already records
		return Result{Snapshot: prev}
	}

	next := dir.Roster(watched.ID)

	user, known := dir.Username(ev.UserID)
	if !known {
		return Result{Snapshot: next}
	}

	return Result{
		Transition: Transition{Kind: kind, User: user, Channel: displayName(watched, privateName)},
		Snapshot:   next,
	}
}

func displayName(channel Channel, privateName string) string {
	if channel.Private {
		return privateName
	}
	return channel.Name
}
