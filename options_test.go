package procsync

import (
	"testing"
	"time"

	"github.com/joeycumines/logiface"
)

func TestNilThreadOption(t *testing.T) {
	// Nil options are skipped gracefully.
	thread, err := NewThread(nil)
	if err != nil {
		t.Fatalf("NewThread(nil) failed: %v", err)
	}
	if thread.IsJoinable() {
		t.Fatal("fresh Thread reported joinable")
	}
}

func TestWithThreadName(t *testing.T) {
	thread, err := NewThread(WithThreadName("named"))
	if err != nil {
		t.Fatal(err)
	}
	if r := thread.Start(func(any) {}, nil); r != ResultSuccess {
		t.Fatalf("Start = %v", r)
	}
	if r := thread.Join(5 * time.Second); r != ResultSuccess {
		t.Fatalf("Join = %v", r)
	}
}

type testLogEvent struct {
	logiface.UnimplementedEvent
	level logiface.Level
}

func (e *testLogEvent) Level() logiface.Level {
	if e == nil {
		return logiface.LevelDisabled
	}
	return e.level
}

func (e *testLogEvent) AddField(key string, val any) {}

func TestWithLogger(t *testing.T) {
	var events int
	logger := logiface.New[logiface.Event](
		logiface.WithEventFactory[logiface.Event](logiface.NewEventFactoryFunc[logiface.Event](func(level logiface.Level) logiface.Event {
			return &testLogEvent{level: level}
		})),
		logiface.WithWriter[logiface.Event](logiface.NewWriterFunc(func(event logiface.Event) error {
			events++
			return nil
		})),
	)

	if _, err := NewThread(WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	defer SetLogger(nil)

	// Exercise a warn path: signaling a closed event logs.
	e := NewEvent(false)
	e.Close()
	e.Signal()

	if events == 0 {
		t.Fatal("logger received no events from a warn path")
	}
}
