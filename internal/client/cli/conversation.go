package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/clientportal/internal/client/conversation"
)

// Messages prints the current thread snapshot. Pending entries and stale
// data are marked so the user knows what is confirmed.
func (a *App) Messages(ctx context.Context) error {

	snap := a.cache.Get(a.conversationKey())
	printSnapshotHeader(snap)

	if len(snap.Messages) == 0 {
		printlnFn("No messages yet. Use 'send' to write one.")
		return nil
	}

	for _, m := range snap.Messages {
		sender := "support"
		if m.SenderIsClient {
			sender = "you"
		}
		suffix := ""
		if m.Pending {
			suffix = " (sending...)"
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s%s", m.CreatedAt.Format("2006-01-02 15:04"), sender, m.Content, suffix))
	}
	return nil
}

// Files prints the file listing with download links.
func (a *App) Files(ctx context.Context) error {

	snap := a.cache.Get(a.conversationKey())
	printSnapshotHeader(snap)

	if len(snap.Files) == 0 {
		printlnFn("No files yet. Use 'upload' to add one.")
		return nil
	}

	for _, f := range snap.Files {
		printlnFn(fmt.Sprintf("%s  %d bytes  %s", f.Name, f.Size, f.URL))
	}
	return nil
}

// Send submits a message. The optimistic entry is already visible in the
// thread while the request is in flight.
func (a *App) Send(ctx context.Context) error {

	content, err := GetSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		log.Printf("Nothing to send")
		return nil
	}

	_, err = a.coordinator.Submit(ctx, a.conversationKey(), conversation.ActionSendMessage, conversation.Payload{Content: content})
	if err != nil {
		log.Printf("Message was not sent: %s", err.Error())
		return err
	}

	return a.Messages(ctx)
}

// Upload submits a local file. No optimistic entry appears; the listing
// shows the file once the server confirms it.
func (a *App) Upload(ctx context.Context) error {

	path, err := GetSimpleText(a.reader, "File path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Cannot read %s: %s", path, err.Error())
		return err
	}

	_, err = a.coordinator.Submit(ctx, a.conversationKey(), conversation.ActionUploadFile,
		conversation.Payload{FileName: filepath.Base(path), Data: data})
	if err != nil {
		log.Printf("Upload failed: %s", err.Error())
		return err
	}

	log.Printf("Uploaded %s", filepath.Base(path))
	return a.Files(ctx)
}

func printSnapshotHeader(snap conversation.Snapshot) {
	switch snap.Freshness {
	case conversation.Fetching:
		printlnFn("(refreshing...)")
	case conversation.Stale:
		if snap.Err != nil {
			printlnFn("(offline, showing last known state)")
		} else {
			printlnFn("(may be out of date)")
		}
	}
}
