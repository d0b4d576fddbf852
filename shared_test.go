package synchrony

import (
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func testSharedIdentity[F Flavor](t *testing.T) {
	a := NewShared[F](42)
	b := a.Clone()
	if !a.PtrEq(b) || !b.PtrEq(a) {
		t.Fatal("a clone must be the same cell")
	}
	c := NewShared[F](42)
	if a.PtrEq(c) {
		t.Fatal("independent cells with equal values must not be the same cell")
	}
	*b.Get() = 7
	if *a.Get() != 7 {
		t.Fatal("handles of one cell must see the same value")
	}
	if a.Count() != 2 || c.Count() != 1 {
		t.Fatalf("counts = %d, %d; want 2, 1", a.Count(), c.Count())
	}
}

func testSharedTryUnwrap[F Flavor](t *testing.T) {
	a := NewShared[F]("payload")
	b := a.Clone()

	if v, ok := a.TryUnwrap(); ok || v != "" {
		t.Fatalf("TryUnwrap with 2 handles = %q, %t; want failure", v, ok)
	}
	// The failed unwrap left a usable handle.
	if !a.PtrEq(b) || a.Count() != 2 {
		t.Fatal("failed TryUnwrap must leave the handle unchanged")
	}

	b.Drop()
	v, ok := a.TryUnwrap()
	if !ok || v != "payload" {
		t.Fatalf("TryUnwrap with 1 handle = %q, %t; want payload", v, ok)
	}
	mustPanic(t, "consumed Shared", func() { a.Get() })
}

func testSharedRelease[F Flavor](t *testing.T) {
	var released []int
	a := NewSharedFunc[F](5, func(v int) { released = append(released, v) })
	b := a.Clone()
	c := b.Clone()

	a.Drop()
	b.Drop()
	if len(released) != 0 {
		t.Fatal("value released while a handle is live")
	}
	c.Drop()
	if len(released) != 1 || released[0] != 5 {
		t.Fatalf("released = %v, want [5]", released)
	}
	mustPanic(t, "consumed Shared", func() { c.Drop() })

	// Unwrapping hands the value back instead of releasing it.
	d := NewSharedFunc[F](6, func(v int) { released = append(released, v) })
	if v, ok := d.TryUnwrap(); !ok || v != 6 {
		t.Fatalf("TryUnwrap = %d, %t", v, ok)
	}
	if len(released) != 1 {
		t.Fatalf("TryUnwrap must not run the release hook, released = %v", released)
	}
}

func TestShared(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		bothFlavors(t, testSharedIdentity[Sync], testSharedIdentity[Unsync])
	})
	t.Run("TryUnwrap", func(t *testing.T) {
		bothFlavors(t, testSharedTryUnwrap[Sync], testSharedTryUnwrap[Unsync])
	})
	t.Run("Release", func(t *testing.T) {
		bothFlavors(t, testSharedRelease[Sync], testSharedRelease[Unsync])
	})
}

func TestShared_ConcurrentCloneDrop(t *testing.T) {
	const rounds, goroutines, loops = 50, 8, 100
	for range rounds {
		var releases atomic.Int32
		root := NewSharedFunc[Sync](struct{}{}, func(struct{}) { releases.Add(1) })

		var g errgroup.Group
		for range goroutines {
			h := root.Clone()
			g.Go(func() error {
				for range loops {
					h.Clone().Drop()
				}
				h.Drop()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatal(err)
		}

		if n := root.Count(); n != 1 {
			t.Fatalf("count = %d after all clones dropped, want 1", n)
		}
		root.Drop()
		if n := releases.Load(); n != 1 {
			t.Fatalf("value released %d times, want 1", n)
		}
	}
}

func TestShared_LastHandleRace(t *testing.T) {
	const rounds = 200
	for range rounds {
		var releases atomic.Int32
		a := NewSharedFunc[Sync](1, func(int) { releases.Add(1) })
		b := a.Clone()

		var g errgroup.Group
		g.Go(func() error { a.Drop(); return nil })
		g.Go(func() error { b.Drop(); return nil })
		_ = g.Wait()

		if n := releases.Load(); n != 1 {
			t.Fatalf("value released %d times, want 1", n)
		}
	}
}
