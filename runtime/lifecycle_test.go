package runtime

import (
	"chat-hub/domain"
	chaterrors "chat-hub/errors"
	"chat-hub/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator(storage *memStorage, settings Settings) *Orchestrator {
	if settings.SendTimeout == 0 {
		settings.SendTimeout = time.Second
	}
	if settings.ReaperBufferSize == 0 {
		settings.ReaperBufferSize = 16
	}
	if settings.RestartInterval == 0 {
		settings.RestartInterval = 10 * time.Millisecond
	}
	return NewOrchestrator(logs.GetLoggerFromLevel(slog.LevelDebug), storage, nil, nil, settings)
}

func connect(t *testing.T, o *Orchestrator, userID domain.UserID, id string) *fakeChannel {
	t.Helper()
	ch := newFakeChannel(id)
	require.NoError(t, o.Lifecycle().HandleConnect(context.Background(), ch, userID))
	return ch
}

func statusEvent(userID domain.UserID, status domain.Status) map[string]any {
	return map[string]any{"type": "status", "user_id": string(userID), "status": string(status)}
}

func TestLifecycle_Connect_Greets_And_Announces(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})

	// Given Bob is online
	bob := connect(t, o, "bob", "bob-laptop")

	// When Alice connects
	alice := connect(t, o, "alice", "alice-laptop")

	// Then Alice is greeted
	req.Equal([]map[string]any{{"type": "connected", "user_id": "alice"}}, alice.received(t))
	// And Bob hears about it once
	req.Equal([]map[string]any{statusEvent("alice", domain.StatusOnline)}, bob.receivedOfType(t, "status"))
	req.True(o.Presence().IsOnline("alice"))
	req.Contains(storage.statusRecords(), statusRecord{userID: "alice", online: true})
}

func TestLifecycle_Second_Device_Is_Silent(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")

	laptop := connect(t, o, "alice", "alice-laptop")
	phone := connect(t, o, "alice", "alice-phone")

	req.Len(bob.receivedOfType(t, "status"), 1)

	// Closing one device keeps Alice online
	req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), laptop))
	req.True(o.Presence().IsOnline("alice"))
	req.Len(bob.receivedOfType(t, "status"), 1)

	// Closing the last one announces offline, exactly once
	req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), phone))
	req.False(o.Presence().IsOnline("alice"))
	req.Equal([]map[string]any{
		statusEvent("alice", domain.StatusOnline),
		statusEvent("alice", domain.StatusOffline),
	}, bob.receivedOfType(t, "status"))
	req.Equal(statusRecord{userID: "alice", online: false}, storage.statusRecords()[len(storage.statusRecords())-1])
}

func TestLifecycle_Disconnect_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")
	alice := connect(t, o, "alice", "alice-laptop")

	for i := 0; i < 3; i++ {
		req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), alice))
	}

	req.Len(bob.receivedOfType(t, "status"), 2)
	req.True(alice.isClosed())
	checkConsistency(t, o.registry)
}

func TestLifecycle_Disconnect_After_Cancellation_Still_Announces(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")
	alice := connect(t, o, "alice", "alice-laptop")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.NoError(o.Lifecycle().HandleDisconnect(ctx, alice))

	req.Contains(bob.receivedOfType(t, "status"), statusEvent("alice", domain.StatusOffline))
}

func TestLifecycle_Failed_Greeting_Rolls_Back(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")

	alice := newFakeChannel("alice-laptop")
	alice.fail()
	err := o.Lifecycle().HandleConnect(context.Background(), alice, "alice")

	req.Error(err)
	req.False(o.Presence().IsOnline("alice"))
	req.Empty(o.Registry().ChannelsFor("alice"))
	req.Empty(bob.receivedOfType(t, "status"))
	req.True(alice.isClosed())
	checkConsistency(t, o.registry)
}

func TestLifecycle_Failed_Greeting_Announces_Online_Kept_By_Sibling(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")

	// Given Alice's laptop registers first, and her phone connects while the
	// laptop greeting is still in flight, then the laptop greeting fails
	laptop := newFakeChannel("alice-laptop")
	var phone *fakeChannel
	laptop.onFirstSend(func() {
		phone = connect(t, o, "alice", "alice-phone")
		laptop.fail()
	})

	// When the laptop connect gives up
	err := o.Lifecycle().HandleConnect(context.Background(), laptop, "alice")

	// Then Alice stays online through her phone and Bob hears it exactly once
	req.Error(err)
	req.True(laptop.isClosed())
	req.True(o.Presence().IsOnline("alice"))
	req.Len(o.Registry().ChannelsFor("alice"), 1)
	req.Equal([]map[string]any{statusEvent("alice", domain.StatusOnline)}, bob.receivedOfType(t, "status"))

	// And the phone leaving later is announced as offline
	req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), phone))
	req.Equal([]map[string]any{
		statusEvent("alice", domain.StatusOnline),
		statusEvent("alice", domain.StatusOffline),
	}, bob.receivedOfType(t, "status"))
	checkConsistency(t, o.registry)
}

func TestLifecycle_Failed_Greeting_Announces_Offline_Left_By_Sibling(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})
	bob := connect(t, o, "bob", "bob-laptop")

	// Given Alice is online on her phone
	phone := connect(t, o, "alice", "alice-phone")

	// And her laptop registers, then the phone leaves while the laptop
	// greeting is in flight, then the laptop greeting fails
	laptop := newFakeChannel("alice-laptop")
	laptop.onFirstSend(func() {
		req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), phone))
		laptop.fail()
	})

	// When the laptop connect gives up
	err := o.Lifecycle().HandleConnect(context.Background(), laptop, "alice")

	// Then Alice is offline and Bob is told so
	req.Error(err)
	req.False(o.Presence().IsOnline("alice"))
	req.Empty(o.Registry().ChannelsFor("alice"))
	req.Equal([]map[string]any{
		statusEvent("alice", domain.StatusOnline),
		statusEvent("alice", domain.StatusOffline),
	}, bob.receivedOfType(t, "status"))
	records := storage.statusRecords()
	req.Equal(statusRecord{userID: "alice", online: false}, records[len(records)-1])
	checkConsistency(t, o.registry)
}

func TestLifecycle_Duplicate_Connect_Is_Rejected(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(newMemStorage(), Settings{})
	alice := connect(t, o, "alice", "alice-laptop")

	err := o.Lifecycle().HandleConnect(context.Background(), alice, "alice")
	req.ErrorIs(err, chaterrors.ErrDuplicateChannel)
	req.Len(o.Registry().ChannelsFor("alice"), 1)
}

func TestLifecycle_Private_Message_Reaches_Every_Device(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage()
	o := newTestOrchestrator(storage, Settings{})
	alice := connect(t, o, "alice", "alice-laptop")
	laptop := connect(t, o, "bob", "bob-laptop")
	phone := connect(t, o, "bob", "bob-phone")

	// The sender field sent by the client is ignored
	raw := []byte(`{"type":"private","sender":"mallory","receiver":"bob","text":"hi"}`)
	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice, raw))

	expected := []map[string]any{{"type": "private", "sender": "alice", "receiver": "bob", "text": "hi"}}
	req.Equal(expected, laptop.receivedOfType(t, "private"))
	req.Equal(expected, phone.receivedOfType(t, "private"))
	req.Empty(alice.receivedOfType(t, "private"))

	messages := storage.storedMessages()
	req.Len(messages, 1)
	req.Equal(domain.UserID("alice"), messages[0].Sender)
}

func TestLifecycle_Numeric_Receiver_Is_Accepted(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage()
	o := newTestOrchestrator(storage, Settings{})
	alice := connect(t, o, "1", "alice-laptop")
	bob := connect(t, o, "2", "bob-laptop")

	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice,
		[]byte(`{"type":"private","receiver":2,"text":"hi"}`)))

	req.Len(bob.receivedOfType(t, "private"), 1)
}

func TestLifecycle_Message_To_Offline_User_Is_Stored(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage()
	o := newTestOrchestrator(storage, Settings{})
	alice := connect(t, o, "alice", "alice-laptop")

	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice,
		[]byte(`{"type":"private","receiver":"carol","text":"see you"}`)))

	req.Empty(alice.receivedOfType(t, "error"))
	req.Len(storage.storedMessages(), 1)
}

func TestLifecycle_Malformed_Payloads_Keep_The_Session(t *testing.T) {
	storage := newMemStorage()
	o := newTestOrchestrator(storage, Settings{})
	alice := connect(t, o, "alice", "alice-laptop")

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `hello`},
		{"missing type", `{"receiver":"bob","text":"hi"}`},
		{"missing receiver", `{"type":"private","text":"hi"}`},
		{"missing text", `{"type":"private","receiver":"bob"}`},
		{"unsupported type", `{"type":"group","receiver":"bob","text":"hi"}`},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice, []byte(tt.raw)))
			req.Len(alice.receivedOfType(t, "error"), i+1)
			req.True(o.Presence().IsOnline("alice"))
		})
	}
	require.Empty(t, storage.storedMessages())
}

func TestLifecycle_Ping_Gets_A_Pong(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(newMemStorage(), Settings{})
	alice := connect(t, o, "alice", "alice-laptop")

	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice, []byte(`{"type":"ping"}`)))
	req.Equal([]map[string]any{{"type": "pong"}}, alice.receivedOfType(t, "pong"))
}

func TestLifecycle_Inbound_On_Unknown_Channel(t *testing.T) {
	o := newTestOrchestrator(newMemStorage(), Settings{})
	err := o.Lifecycle().HandleInboundPayload(context.Background(), newFakeChannel("ghost"), []byte(`{"type":"ping"}`))
	require.ErrorIs(t, err, chaterrors.ErrUnknownChannel)
}

func TestLifecycle_Rate_Limited_Payloads(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage()
	o := newTestOrchestrator(storage, Settings{InboundRate: 0.001, InboundBurst: 2})
	alice := connect(t, o, "alice", "alice-laptop")
	raw := []byte(`{"type":"private","receiver":"bob","text":"spam"}`)

	for i := 0; i < 4; i++ {
		req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice, raw))
	}

	req.Len(storage.storedMessages(), 2)
	errs := alice.receivedOfType(t, "error")
	req.Len(errs, 2)
	req.Equal(chaterrors.ErrRateLimited.Error(), errs[0]["error"])
}

func TestLifecycle_Disconnect_Drops_Rate_Bucket(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(newMemStorage(), Settings{InboundRate: 10, InboundBurst: 2})
	alice := connect(t, o, "alice", "alice-laptop")

	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice, []byte(`{"type":"ping"}`)))
	req.True(o.lifecycle.limiter.tracks(alice.ID()))

	req.NoError(o.Lifecycle().HandleDisconnect(context.Background(), alice))
	req.False(o.lifecycle.limiter.tracks(alice.ID()))

	// A payload read just before teardown does not bring the bucket back
	err := o.Lifecycle().HandleInboundPayload(context.Background(), alice, []byte(`{"type":"ping"}`))
	req.ErrorIs(err, chaterrors.ErrUnknownChannel)
	req.False(o.lifecycle.limiter.tracks(alice.ID()))
}

func TestLifecycle_Inbound_Racing_Teardown_Leaves_No_Bucket(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)
	limiter := NewChannelLimiter(10, 2)
	lifecycle := NewLifecycle(logs.GetLoggerFromLevel(slog.LevelDebug), registry,
		mocks.NewMockIPresenceTracker(ctrl), mocks.NewMockIDispatcher(ctrl), nil, limiter, nil)
	ch := newFakeChannel("alice-laptop")

	// Given the channel was unregistered by the time ownership is checked
	registry.EXPECT().OwnerOf(ch).Return(domain.UserID(""), false)

	// When the payload is handled
	err := lifecycle.HandleInboundPayload(context.Background(), ch, []byte(`{"type":"ping"}`))

	// Then the bucket taken for it is released
	req.ErrorIs(err, chaterrors.ErrUnknownChannel)
	req.False(limiter.tracks(ch.ID()))
}

func TestOrchestrator_Reaper_Cleans_Broken_Channels(t *testing.T) {
	req := require.New(t)
	storage := newMemStorage().link("alice", "bob")
	o := newTestOrchestrator(storage, Settings{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Start(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	alice := connect(t, o, "alice", "alice-laptop")
	bob := connect(t, o, "bob", "bob-laptop")

	// Bob's transport dies silently
	bob.fail()
	req.NoError(o.Lifecycle().HandleInboundPayload(context.Background(), alice,
		[]byte(`{"type":"private","receiver":"bob","text":"are you there?"}`)))

	// The reaper unregisters Bob and Alice is told he left
	req.Eventually(func() bool {
		return !o.Presence().IsOnline("bob")
	}, time.Second, 10*time.Millisecond)
	req.Eventually(func() bool {
		return len(alice.receivedOfType(t, "status")) == 2
	}, time.Second, 10*time.Millisecond)
	req.True(bob.isClosed())
	req.Len(storage.storedMessages(), 1)
}
