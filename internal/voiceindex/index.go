// Package voiceindex tracks which members currently occupy which voice
// channels, fed exclusively by live gateway events.
package voiceindex

import (
	"sync"
)

// Index is an in-memory map of voice channel occupancy. A new Index is empty;
// it only ever reflects events observed since its construction, so it must
// never be trusted for channels it has not seen. Safe for concurrent use.
type Index struct {
	mu       sync.Mutex
	channels map[string][]string
}

// New returns an empty index.
func New() *Index {
	return &Index{
		channels: make(map[string][]string),
	}
}

// Join records a member entering a channel. Duplicate joins are collapsed.
func (ix *Index) Join(channelID, memberID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.join(channelID, memberID)
}

func (ix *Index) join(channelID, memberID string) {
	for _, m := range ix.channels[channelID] {
		if m == memberID {
			return
		}
	}
	ix.channels[channelID] = append(ix.channels[channelID], memberID)
}

// Leave records a member leaving a channel; no-op if they were not tracked.
func (ix *Index) Leave(channelID, memberID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.leave(channelID, memberID)
}

func (ix *Index) leave(channelID, memberID string) {
	members := ix.channels[channelID]
	for i, m := range members {
		if m == memberID {
			ix.channels[channelID] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(ix.channels[channelID]) == 0 {
		delete(ix.channels, channelID)
	}
}

// Move records a member switching channels. The leave and the join are applied
// under one lock, leave first, so the member is never counted in two channels
// at once.
func (ix *Index) Move(memberID, fromChannelID, toChannelID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if fromChannelID != "" {
		ix.leave(fromChannelID, memberID)
	}
	ix.join(toChannelID, memberID)
}

// Members returns a copy of the member set for a channel; empty if the channel
// is unknown.
func (ix *Index) Members(channelID string) []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	members := ix.channels[channelID]
	if len(members) == 0 {
		return nil
	}
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// Forget drops a channel from the index entirely, used when the channel has
// been deleted.
func (ix *Index) Forget(channelID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	delete(ix.channels, channelID)
}
