package triangle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipparndt/godxf/pkg/geometry"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at all levels")
	}
}

func TestSetLoggerCapturesTreeEvents(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tree, err := NewTree([3]float64{60, 80, 100}, geometry.NewVector2(0, 0), 180)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tree.CreateAtEdge(tree.Root().ID(), geometry.EdgeA, [3]float64{60, 70, 90}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"tree created", "triangle attached"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil should restore the silent default")
	}
}
