package runtime

import (
	"chat-hub/domain"
	chaterrors "chat-hub/errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type observedEdge struct {
	userID domain.UserID
	online bool
}

type recordingObserver struct {
	mu    sync.Mutex
	edges []observedEdge
}

func (o *recordingObserver) OccupancyChanged(userID domain.UserID, online bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.edges = append(o.edges, observedEdge{userID: userID, online: online})
}

func TestRegistry_First_Channel_Goes_Online(t *testing.T) {
	req := require.New(t)
	observer := &recordingObserver{}
	registry := NewRegistry().WithObserver(observer)
	laptop := newFakeChannel("laptop")

	// Given no user is connected
	req.False(registry.IsOnline("alice"))

	// When Alice registers her first channel
	transition, err := registry.Register("alice", laptop)

	// Then she went online and the observer saw it
	req.NoError(err)
	req.Equal(domain.WentOnline, transition)
	req.True(registry.IsOnline("alice"))
	req.Equal([]observedEdge{{"alice", true}}, observer.edges)

	owner, ok := registry.OwnerOf(laptop)
	req.True(ok)
	req.Equal(domain.UserID("alice"), owner)
	checkConsistency(t, registry)
}

func TestRegistry_Second_Channel_Is_Not_An_Edge(t *testing.T) {
	req := require.New(t)
	observer := &recordingObserver{}
	registry := NewRegistry().WithObserver(observer)

	_, err := registry.Register("alice", newFakeChannel("laptop"))
	req.NoError(err)
	transition, err := registry.Register("alice", newFakeChannel("phone"))
	req.NoError(err)

	req.Equal(domain.NoTransition, transition)
	req.Len(registry.ChannelsFor("alice"), 2)
	req.Len(observer.edges, 1)
	checkConsistency(t, registry)
}

func TestRegistry_Duplicate_Channel_Changes_Nothing(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	laptop := newFakeChannel("laptop")

	_, err := registry.Register("alice", laptop)
	req.NoError(err)

	// The same channel under another user
	transition, err := registry.Register("bob", laptop)
	req.ErrorIs(err, chaterrors.ErrDuplicateChannel)
	req.Equal(domain.NoTransition, transition)
	req.False(registry.IsOnline("bob"))

	// The same channel again under its owner
	_, err = registry.Register("alice", laptop)
	req.ErrorIs(err, chaterrors.ErrDuplicateChannel)
	req.Len(registry.ChannelsFor("alice"), 1)
	checkConsistency(t, registry)
}

func TestRegistry_Last_Channel_Goes_Offline(t *testing.T) {
	req := require.New(t)
	observer := &recordingObserver{}
	registry := NewRegistry().WithObserver(observer)
	laptop, phone := newFakeChannel("laptop"), newFakeChannel("phone")

	_, err := registry.Register("alice", laptop)
	req.NoError(err)
	_, err = registry.Register("alice", phone)
	req.NoError(err)

	userID, transition, err := registry.Unregister(laptop)
	req.NoError(err)
	req.Equal(domain.UserID("alice"), userID)
	req.Equal(domain.NoTransition, transition)
	req.True(registry.IsOnline("alice"))

	userID, transition, err = registry.Unregister(phone)
	req.NoError(err)
	req.Equal(domain.UserID("alice"), userID)
	req.Equal(domain.WentOffline, transition)
	req.False(registry.IsOnline("alice"))
	req.Nil(registry.ChannelsFor("alice"))

	// No empty set is left behind
	users, channels := registry.Stats()
	req.Zero(users)
	req.Zero(channels)
	req.Equal([]observedEdge{{"alice", true}, {"alice", false}}, observer.edges)
}

func TestRegistry_Unregister_Unknown_Channel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	laptop := newFakeChannel("laptop")

	_, _, err := registry.Unregister(laptop)
	req.ErrorIs(err, chaterrors.ErrNotFound)

	_, err = registry.Register("alice", laptop)
	req.NoError(err)
	_, _, err = registry.Unregister(laptop)
	req.NoError(err)

	// Second removal of the same channel
	_, transition, err := registry.Unregister(laptop)
	req.ErrorIs(err, chaterrors.ErrNotFound)
	req.Equal(domain.NoTransition, transition)
	checkConsistency(t, registry)
}

func TestRegistry_ChannelsFor_Returns_A_Copy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	laptop := newFakeChannel("laptop")
	_, err := registry.Register("alice", laptop)
	req.NoError(err)

	snapshot := registry.ChannelsFor("alice")
	_, _, err = registry.Unregister(laptop)
	req.NoError(err)

	// The snapshot taken before still holds the channel
	req.Len(snapshot, 1)
	req.Nil(registry.ChannelsFor("alice"))
}

func TestRegistry_Concurrent_Register_Unregister(t *testing.T) {
	req := require.New(t)
	observer := &recordingObserver{}
	registry := NewRegistry().WithObserver(observer)

	const users = 10
	const devices = 20
	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		for d := 0; d < devices; d++ {
			wg.Add(1)
			go func(u, d int) {
				defer wg.Done()
				userID := domain.UserID(fmt.Sprintf("user-%d", u))
				ch := newFakeChannel(fmt.Sprintf("user-%d-device-%d", u, d))
				_, err := registry.Register(userID, ch)
				req.NoError(err)
				_ = registry.ChannelsFor(userID)
				_, _, err = registry.Unregister(ch)
				req.NoError(err)
			}(u, d)
		}
	}
	wg.Wait()

	checkConsistency(t, registry)
	usersLeft, channelsLeft := registry.Stats()
	req.Zero(usersLeft)
	req.Zero(channelsLeft)

	// Edges alternate per user: online, offline, online, offline...
	perUser := make(map[domain.UserID][]bool)
	for _, e := range observer.edges {
		perUser[e.userID] = append(perUser[e.userID], e.online)
	}
	req.Len(perUser, users)
	for userID, edges := range perUser {
		req.Equal(0, len(edges)%2, "user %s", userID)
		for i, online := range edges {
			req.Equal(i%2 == 0, online, "user %s edge %d", userID, i)
		}
	}
}
