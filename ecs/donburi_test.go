package ecs

import (
	"testing"

	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitRenderEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []easel.RenderEvent
	RenderEventType.Subscribe(world, func(w donburi.World, e easel.RenderEvent) {
		received = append(received, e)
	})

	sink.EmitRenderEvent(easel.RenderEvent{
		Type:   easel.EventDirectRender,
		NodeID: 42,
		Name:   "clock",
		Frame:  7,
	})
	sink.EmitRenderEvent(easel.RenderEvent{Type: easel.EventCycleEnd, Frame: 7})

	// Events are queued until processed.
	RenderEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != easel.EventDirectRender || e0.NodeID != 42 || e0.Name != "clock" {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != easel.EventCycleEnd || received[1].Frame != 7 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_StageFrame(t *testing.T) {
	world := donburi.NewWorld()

	root := easel.NewNode(easel.NodeConfig{Name: "root", Width: 8, Height: 8}, func(n *easel.Node) []easel.DrawFunc {
		return []easel.DrawFunc{func(b *easel.Brush) error {
			b.FillRect(easel.R(0, 0, 8, 8), easel.ColorWhite)
			return nil
		}}
	})
	stage := easel.NewStage(root)
	stage.SetEventSink(NewDonburiSink(world))

	var types []easel.RenderEventType
	RenderEventType.Subscribe(world, func(w donburi.World, e easel.RenderEvent) {
		types = append(types, e.Type)
	})

	if err := stage.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	events.ProcessAllEvents(world)

	if len(types) != 2 || types[0] != easel.EventRenderPass || types[1] != easel.EventCycleEnd {
		t.Errorf("types = %v, want [pass cycleEnd]", types)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	RenderEventType.Subscribe(world, func(w donburi.World, e easel.RenderEvent) {
		count1++
	})
	RenderEventType.Subscribe(world, func(w donburi.World, e easel.RenderEvent) {
		count2++
	})

	sink.EmitRenderEvent(easel.RenderEvent{Type: easel.EventRenderPass})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
