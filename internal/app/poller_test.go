package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samber/mo"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/state"
)

type fakeRequester struct {
	mu          sync.Mutex
	status      *fuo.StatusResponse
	statusErr   error
	playlist    []fuo.BriefSong
	playlistErr error
	calls       int
}

func (f *fakeRequester) FetchStatus(context.Context) (*fuo.StatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.status, f.statusErr
}

func (f *fakeRequester) FetchPlaylist(context.Context) ([]fuo.BriefSong, error) {
	return f.playlist, f.playlistErr
}

func (f *fakeRequester) Control(context.Context, fuo.PlayerCommand) error { return nil }

func (f *fakeRequester) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, maxBackoff},
		{"many failures capped", 50, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestSyncNow_AppliesStatusAndPlaylist(t *testing.T) {
	client := &fakeRequester{
		status: &fuo.StatusResponse{
			Song:     &fuo.StatusSong{Title: "T", AlbumName: "Al", ArtistsName: "Ar"},
			Duration: 180,
			Position: 42,
			State:    "paused",
		},
		playlist: []fuo.BriefSong{{Title: "T"}, {Title: "U"}},
	}
	store := state.NewStore(nil)

	if err := SyncNow(context.Background(), client, store); err != nil {
		t.Fatalf("SyncNow returned error: %v", err)
	}

	snap := store.Snapshot()
	if snap.State != fuo.StatePaused || snap.Position != 42*time.Second || snap.Duration != 180*time.Second {
		t.Fatalf("snapshot = %+v", snap)
	}
	if len(snap.Playlist) != 2 {
		t.Fatalf("Playlist = %v, want 2 songs", snap.Playlist)
	}
}

func TestSyncNow_StatusFailureKeepsState(t *testing.T) {
	client := &fakeRequester{status: &fuo.StatusResponse{Song: &fuo.StatusSong{Title: "T"}, State: "playing"}}
	store := state.NewStore(nil)
	if err := SyncNow(context.Background(), client, store); err != nil {
		t.Fatalf("SyncNow returned error: %v", err)
	}

	boom := &fuo.ConnectionError{Addr: "127.0.0.1:23333", Err: errors.New("refused")}
	client.statusErr = boom
	err := SyncNow(context.Background(), client, store)
	var cerr *fuo.ConnectionError
	if !errors.As(err, &cerr) {
		t.Fatalf("SyncNow error = %v, want *fuo.ConnectionError", err)
	}

	snap := store.Snapshot()
	if snap.Metadata.Title != "T" || snap.State != fuo.StatePlaying {
		t.Fatalf("state changed on failure: %+v", snap)
	}
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("LastError = %v failures = %d", snap.LastError, snap.ConsecutiveFailures)
	}
}

func TestSyncNow_PlaylistFailureIsNotFatal(t *testing.T) {
	client := &fakeRequester{
		status:      &fuo.StatusResponse{State: "stopped"},
		playlistErr: errors.New("list rejected"),
	}
	store := state.NewStore(nil)
	if err := SyncNow(context.Background(), client, store); err != nil {
		t.Fatalf("SyncNow returned error: %v", err)
	}
	if !store.Snapshot().HasStatus {
		t.Fatalf("status not applied")
	}
}

func TestStartSyncPoller_RepeatsUntilCancelled(t *testing.T) {
	client := &fakeRequester{status: &fuo.StatusResponse{State: "stopped"}}
	store := state.NewStore(nil)

	ctx, cancel := context.WithCancel(context.Background())
	StartSyncPoller(ctx, store, client, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for client.callCount() < 3 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("poller made %d calls, want at least 3", client.callCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
}

func TestWriteStatus(t *testing.T) {
	snap := state.Snapshot{
		Metadata: fuo.TrackMetadata{Title: "T", Artists: []string{"A", "B"}, Album: mo.Some("Al")},
		State:    fuo.StatePlaying,
		Position: 61 * time.Second,
		Duration: 200 * time.Second,
		Playlist: []fuo.BriefSong{{Title: "T"}},
	}
	var buf bytes.Buffer
	if err := WriteStatus(&buf, snap); err != nil {
		t.Fatalf("WriteStatus returned error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"Playing  T\n", "artist: A,B\n", "album:  Al\n", "time:   [01:01/03:20]\n", "queue:  1 songs\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("WriteStatus output missing %q:\n%s", want, got)
		}
	}
}
