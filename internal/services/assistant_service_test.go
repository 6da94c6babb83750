package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bella/internal/genai"
	"bella/internal/models"
)

func TestAssistantChat(t *testing.T) {
	t.Run("streams_and_records_transcript", func(t *testing.T) {
		gateway := &fakeGateway{
			chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
				for _, chunk := range []string{"A garden ", "wedding ", "sounds lovely."} {
					if err := onDelta(chunk); err != nil {
						return err
					}
				}
				return nil
			},
		}
		svc := NewAssistantService(gateway)

		var streamed string
		reply, err := svc.Chat(context.Background(), 1, "Any venue ideas?", func(messageID, delta string) error {
			streamed += delta
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reply.Text != "A garden wedding sounds lovely." {
			t.Errorf("unexpected reply text: %q", reply.Text)
		}
		if streamed != reply.Text {
			t.Errorf("streamed deltas %q do not match final reply %q", streamed, reply.Text)
		}
		if reply.Role != models.ChatRoleModel {
			t.Errorf("expected model role, got %s", reply.Role)
		}

		history := svc.History(1)
		if len(history) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(history))
		}
		if history[0].Role != models.ChatRoleUser || history[0].Text != "Any venue ideas?" {
			t.Errorf("unexpected user turn: %+v", history[0])
		}
		if history[1].Text != reply.Text {
			t.Errorf("transcript reply %q does not match returned reply %q", history[1].Text, reply.Text)
		}
	})

	t.Run("passes_prior_turns_as_history", func(t *testing.T) {
		var seen []genai.Turn
		gateway := &fakeGateway{
			chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
				seen = history
				return onDelta("ok")
			},
		}
		svc := NewAssistantService(gateway)

		if _, err := svc.Chat(context.Background(), 1, "first", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Chat(context.Background(), 1, "second", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(seen) != 2 {
			t.Fatalf("expected 2 prior turns on second call, got %d", len(seen))
		}
		if seen[0].Text != "first" || seen[1].Text != "ok" {
			t.Errorf("unexpected history: %+v", seen)
		}
	})

	t.Run("gateway_failure_yields_apology", func(t *testing.T) {
		gateway := &fakeGateway{
			chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
				return errors.New("connection refused")
			},
		}
		svc := NewAssistantService(gateway)

		reply, err := svc.Chat(context.Background(), 1, "Hello?", nil)
		if err != nil {
			t.Fatalf("gateway failures must not surface as errors, got %v", err)
		}
		if reply.Text != apologyText {
			t.Errorf("expected apology reply, got %q", reply.Text)
		}
	})

	t.Run("histories_are_per_user", func(t *testing.T) {
		gateway := &fakeGateway{
			chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
				return onDelta("hi")
			},
		}
		svc := NewAssistantService(gateway)

		if _, err := svc.Chat(context.Background(), 1, "from user one", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := svc.History(2); len(got) != 0 {
			t.Errorf("expected empty history for other user, got %d messages", len(got))
		}
	})

	t.Run("each_new_turn_cancels_the_streaming_one", func(t *testing.T) {
		started := make(chan context.Context, 3)
		gateway := &fakeGateway{
			chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
				started <- ctx
				<-ctx.Done()
				return ctx.Err()
			},
		}
		svc := NewAssistantService(gateway)

		firstDone := make(chan struct{})
		go func() {
			defer close(firstDone)
			_, _ = svc.Chat(context.Background(), 1, "first", nil)
		}()
		ctx1 := <-started

		go func() { _, _ = svc.Chat(context.Background(), 1, "second", nil) }()
		ctx2 := <-started

		select {
		case <-ctx1.Done():
		case <-time.After(time.Second):
			t.Fatal("second turn did not cancel the first stream")
		}
		// The first turn's cleanup must not disarm cancellation for the
		// still-streaming second turn.
		<-firstDone

		go func() { _, _ = svc.Chat(context.Background(), 1, "third", nil) }()
		<-started

		select {
		case <-ctx2.Done():
		case <-time.After(time.Second):
			t.Fatal("third turn did not cancel the second stream")
		}

		svc.ClearHistory(1)
	})
}

func TestClearHistory(t *testing.T) {
	gateway := &fakeGateway{
		chatStreamFn: func(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
			return onDelta("hi")
		},
	}
	svc := NewAssistantService(gateway)

	if _, err := svc.Chat(context.Background(), 1, "hello", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.ClearHistory(1)
	if got := svc.History(1); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %d messages", len(got))
	}
}

func TestInspiration(t *testing.T) {
	t.Run("returns_image_data", func(t *testing.T) {
		gateway := &fakeGateway{
			imageFn: func(ctx context.Context, prompt string) (string, error) {
				return "base64-image-bytes", nil
			},
		}
		svc := NewAssistantService(gateway)

		if got := svc.Inspiration(context.Background(), "pastel mandap"); got != "base64-image-bytes" {
			t.Errorf("unexpected image data: %q", got)
		}
	})

	t.Run("failure_degrades_to_empty", func(t *testing.T) {
		gateway := &fakeGateway{
			imageFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		svc := NewAssistantService(gateway)

		if got := svc.Inspiration(context.Background(), "pastel mandap"); got != "" {
			t.Errorf("expected empty string on failure, got %q", got)
		}
	})
}
