package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/state"
)

// PrintStatus performs one sync against the configured daemon and writes a
// plain-text summary to w.
func PrintStatus(ctx context.Context, opts Options, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	client, err := fuo.NewClient(cfg.ControlAddr)
	if err != nil {
		return fmt.Errorf("init control client: %w", err)
	}

	store := state.NewStore(nil)
	if err := SyncNow(ctx, client, store); err != nil {
		return err
	}
	return WriteStatus(w, store.Snapshot())
}

// WriteStatus renders snap as a few lines of plain text.
func WriteStatus(w io.Writer, snap state.Snapshot) error {
	var b strings.Builder

	title := snap.Metadata.Title
	if title == "" {
		title = "Nothing playing"
	}
	fmt.Fprintf(&b, "%s  %s\n", snap.State, title)
	if artists := snap.Metadata.ArtistLine(); artists != "" {
		fmt.Fprintf(&b, "artist: %s\n", artists)
	}
	if album, ok := snap.Metadata.Album.Get(); ok && album != "" {
		fmt.Fprintf(&b, "album:  %s\n", album)
	}
	fmt.Fprintf(&b, "time:   %s\n", snap.ProgressLabel())
	if n := len(snap.Playlist); n > 0 {
		fmt.Fprintf(&b, "queue:  %d songs\n", n)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
