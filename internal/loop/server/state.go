package server

import "sort"

// maxScoreEntries bounds the in-memory leaderboard.
const maxScoreEntries = 100

// ScoreEntry represents a single entry on the leaderboard.
type ScoreEntry struct {
	Username string
	Score    int
	clientID int
	seq      int // Insertion order, for a deterministic tie-break
}

// scoreboard keeps entries sorted best first. Equal scores keep the earlier entry ahead.
type scoreboard struct {
	entries []ScoreEntry
	nextSeq int
}

// add inserts e and reports whether it is now in first place.
func (b *scoreboard) add(e ScoreEntry) bool {
	if e.Score <= 0 {
		return false
	}
	e.seq = b.nextSeq
	b.nextSeq++
	b.entries = append(b.entries, e)
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].Score != b.entries[j].Score {
			return b.entries[i].Score > b.entries[j].Score
		}
		return b.entries[i].seq < b.entries[j].seq
	})
	if len(b.entries) > maxScoreEntries {
		b.entries = b.entries[:maxScoreEntries]
	}
	return b.entries[0].seq == e.seq
}

func (b *scoreboard) top(n int) []ScoreEntry {
	n = min(n, len(b.entries))
	if n <= 0 {
		return nil
	}
	out := make([]ScoreEntry, n)
	copy(out, b.entries[:n])
	return out
}
