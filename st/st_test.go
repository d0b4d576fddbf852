package st_test

import (
	"testing"

	"github.com/llxisdsh/synchrony"
	"github.com/llxisdsh/synchrony/st"
)

func TestFlavor(t *testing.T) {
	if synchrony.IsSync[st.Flavor]() {
		t.Fatal("st must not be thread-safe")
	}
}

func TestPrimitives(t *testing.T) {
	f := st.NewFlag(false)
	if f.Swap(true) || !f.Get() {
		t.Fatal("Flag.Swap did not store")
	}

	var fired int
	slot := st.NewWakerSlot()
	slot.Register(synchrony.NewWaker(func() { fired++ }))
	slot.Wake()
	slot.Wake()
	if fired != 1 {
		t.Fatalf("waker fired %d times, want 1", fired)
	}

	a, b := st.NewBiLock([]int(nil))
	g, ok := a.TryLock()
	if !ok {
		t.Fatal("TryLock failed")
	}
	*g.Get() = append(*g.Get(), 1)
	g.Release()
	if v := b.Join(a); len(v) != 1 {
		t.Fatalf("joined %v, want [1]", v)
	}

	m := st.NewMutex(1)
	mg := m.Lock()
	*mg.Get() = 2
	mg.Unlock()
	if m.IntoInner() != 2 {
		t.Fatal("Mutex lost the write")
	}
}
