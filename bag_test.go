package easel

import (
	"errors"
	"slices"
	"testing"
)

func TestBagReadOutsideRenderNotTracked(t *testing.T) {
	n := solidNode("n", 4, 4, red)
	n.State().Set("a", 1)
	_ = n.State().Get("a")
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	n.State().Set("a", 2)
	if n.IsStale() {
		t.Error("write to an unread key should not mark the node stale")
	}
}

func TestBagWriteSchedulesReadingSlot(t *testing.T) {
	var runsA, runsB int
	n := slotsNode("n", 4, 4, nil,
		func(b *Brush) error { runsA++; _ = b.State().Int("a"); return nil },
		func(b *Brush) error { runsB++; _ = b.State().Int("b"); return nil },
	)
	n.SetState(Props{"a": 1, "b": 1})
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}

	n.State().Set("a", 2)
	if !n.IsStale() {
		t.Fatal("node should be stale after a read key was written")
	}
	if got := n.PendingSlots(); !slices.Equal(got, []int{0}) {
		t.Errorf("PendingSlots = %v, want [0]", got)
	}
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	if runsA != 2 || runsB != 1 {
		t.Errorf("runs = (%d, %d), want (2, 1)", runsA, runsB)
	}
}

func TestBagSetEqualValueIsNoOp(t *testing.T) {
	n := slotsNode("n", 4, 4, nil, func(b *Brush) error {
		_ = b.State().Get("list")
		return nil
	})
	n.SetState(Props{"list": []int{1, 2}})
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	n.State().Set("list", []int{1, 2})
	if n.IsStale() {
		t.Error("deep-equal write should not notify readers")
	}
}

func TestBagDeleteNotifies(t *testing.T) {
	n := slotsNode("n", 4, 4, nil, func(b *Brush) error {
		_, _ = b.State().Lookup("k")
		return nil
	})
	n.SetState(Props{"k": "v"})
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	n.State().Delete("missing")
	if n.IsStale() {
		t.Error("deleting a missing key should not notify")
	}
	n.State().Delete("k")
	if !n.IsStale() {
		t.Error("deleting a read key should notify")
	}
	if n.State().Len() != 0 {
		t.Errorf("Len = %d, want 0", n.State().Len())
	}
}

func TestBagReservedKeyPanics(t *testing.T) {
	n := solidNode("n", 4, 4, red)
	me := recoverMisuse(func() { n.State().Set("$stale", true) })
	if me == nil {
		t.Fatal("expected MisuseError panic")
	}
	if !errors.Is(me, ErrReservedKey) {
		t.Errorf("err = %v, want ErrReservedKey", me)
	}

	me = recoverMisuse(func() { _ = n.Render(Props{"$x": 1}) })
	if me == nil || !errors.Is(me, ErrReservedKey) {
		t.Errorf("staging a reserved prop should panic with ErrReservedKey, got %v", me)
	}
	if RenderDepth() != 0 {
		t.Errorf("RenderDepth = %d after panic", RenderDepth())
	}
}

func TestBagTypedGetters(t *testing.T) {
	n := solidNode("n", 4, 4, red)
	n.SetState(Props{
		"s": "hi", "f": 1.5, "i": 3, "b": true,
		"c": blue, "named": "lime", "bad": []int{1},
	})
	st := n.State()
	if st.String("s") != "hi" || st.String("f") != "" {
		t.Error("String mismatch")
	}
	if st.Float("f") != 1.5 || st.Float("i") != 3 || st.Float("s") != 0 {
		t.Error("Float mismatch")
	}
	if st.Int("i") != 3 || st.Int("f") != 1 {
		t.Error("Int mismatch")
	}
	if !st.Bool("b") || st.Bool("s") {
		t.Error("Bool mismatch")
	}
	if st.Color("c") != blue || st.Color("named") != green || st.Color("bad") != (Color{}) {
		t.Errorf("Color mismatch: %v %v", st.Color("c"), st.Color("named"))
	}
}

func TestBagValuesIsCopy(t *testing.T) {
	n := solidNode("n", 4, 4, red)
	n.SetState(Props{"a": 1})
	v := n.State().Values()
	v["a"] = 2
	if n.State().Get("a") != 1 {
		t.Error("mutating Values() result changed the bag")
	}
}

func TestBagRereadReplacesDependencies(t *testing.T) {
	// The slot reads "a" or "b" depending on "which"; after switching,
	// writes to the old key must no longer schedule it.
	n := slotsNode("n", 4, 4, nil, func(b *Brush) error {
		if b.State().Bool("which") {
			_ = b.State().Get("b")
		} else {
			_ = b.State().Get("a")
		}
		return nil
	})
	n.SetState(Props{"which": false, "a": 1, "b": 1})
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	n.State().Set("which", true)
	if err := n.Render(nil); err != nil {
		t.Fatal(err)
	}
	n.State().Set("a", 2)
	if n.IsStale() {
		t.Error("stale read of a should have been forgotten")
	}
	n.State().Set("b", 2)
	if !n.IsStale() {
		t.Error("write to b should notify")
	}
}

func TestBagDisposeForgetsReaders(t *testing.T) {
	shared := solidNode("owner", 4, 4, red)
	shared.SetState(Props{"k": 1})
	reader := slotsNode("reader", 4, 4, nil, func(b *Brush) error {
		_ = shared.State().Get("k")
		return nil
	})
	if err := reader.Render(nil); err != nil {
		t.Fatal(err)
	}
	if len(shared.State().readers["k"]) != 1 {
		t.Fatalf("readers = %d, want 1", len(shared.State().readers["k"]))
	}
	reader.Dispose()
	if len(shared.State().readers["k"]) != 0 {
		t.Error("disposed node should be forgotten by the bags it read")
	}
	shared.State().Set("k", 2)
}
