//go:build !integration

package ws

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nftmarket/internal/application/dto"

	"github.com/gorilla/websocket"
)

func TestHubBroadcastsSettlementEvents(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(hub.HandleSubscribe))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial hub: %v", err)
	}
	defer conn.Close()
	if resp != nil {
		defer resp.Body.Close()
	}

	event := dto.SettlementEvent{
		Action:  "execute_order",
		OrderID: 3,
		Attributes: map[string]string{
			"buyer": "0x00000000000000000000000000000000000000aa",
		},
		OccurredAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	// The subscriber registers asynchronously after the upgrade. Retry the
	// publish until the frame arrives or the deadline passes.
	deadline := time.Now().Add(5 * time.Second)
	received := make(chan []byte, 1)
	go func() {
		_, payload, readErr := conn.ReadMessage()
		if readErr == nil {
			received <- payload
		}
	}()

	for {
		hub.Publish(context.Background(), event)

		select {
		case payload := <-received:
			var decoded dto.SettlementEvent
			if err := json.Unmarshal(payload, &decoded); err != nil {
				t.Fatalf("expected valid JSON event, got error: %v", err)
			}
			if decoded.Action != "execute_order" || decoded.OrderID != 3 {
				t.Fatalf("unexpected event: %+v", decoded)
			}
			if decoded.Attributes["buyer"] != event.Attributes["buyer"] {
				t.Fatalf("unexpected attributes: %+v", decoded.Attributes)
			}
			return
		case <-time.After(50 * time.Millisecond):
			if time.Now().After(deadline) {
				t.Fatal("timed out waiting for broadcast event")
			}
		}
	}
}

func TestHubPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub(log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(context.Background(), dto.SettlementEvent{Action: "bid"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked without subscribers")
	}
}
