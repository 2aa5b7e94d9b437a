package runtime

import (
	"chat-hub/domain"
	"chat-hub/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresenceTracker_Flag_Follows_Occupancy(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	tracker := NewPresenceTracker(slog.Default(), mocks.NewMockIDispatcher(ctrl), nil)

	req.False(tracker.IsOnline("alice"))
	tracker.OccupancyChanged("alice", true)
	req.True(tracker.IsOnline("alice"))
	tracker.OccupancyChanged("alice", false)
	req.False(tracker.IsOnline("alice"))
}

func TestPresenceTracker_Announce_Edges_Only(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockIDispatcher(ctrl)
	tracker := NewPresenceTracker(slog.Default(), dispatcher, nil)
	ctx := context.Background()

	// Exactly one notification per edge, none for intermediate channels
	gomock.InOrder(
		dispatcher.EXPECT().NotifyContacts(ctx, domain.UserID("alice"), domain.StatusOnline).Return(nil).Times(1),
		dispatcher.EXPECT().NotifyContacts(ctx, domain.UserID("alice"), domain.StatusOffline).Return(nil).Times(1),
	)

	tracker.Announce(ctx, "alice", domain.WentOnline)
	tracker.Announce(ctx, "alice", domain.NoTransition)
	tracker.Announce(ctx, "alice", domain.NoTransition)
	tracker.Announce(ctx, "alice", domain.WentOffline)
}

func TestPresenceTracker_Notification_Failure_Keeps_Flag(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockIDispatcher(ctrl)
	tracker := NewPresenceTracker(slog.Default(), dispatcher, nil)

	dispatcher.EXPECT().
		NotifyContacts(gomock.Any(), domain.UserID("alice"), domain.StatusOnline).
		Return(fmt.Errorf("contacts unavailable"))

	tracker.OccupancyChanged("alice", true)
	tracker.Announce(context.Background(), "alice", domain.WentOnline)

	req.True(tracker.IsOnline("alice"))
}
