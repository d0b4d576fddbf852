package mt_test

import (
	"testing"

	"github.com/llxisdsh/synchrony"
	"github.com/llxisdsh/synchrony/mt"
	"golang.org/x/sync/errgroup"
)

func TestFlavor(t *testing.T) {
	if !synchrony.IsSync[mt.Flavor]() {
		t.Fatal("mt must be thread-safe")
	}
}

func TestBiLockAcrossGoroutines(t *testing.T) {
	a, b := mt.NewBiLock(0)
	var g errgroup.Group
	for _, h := range []*mt.BiLock[int]{a, b} {
		g.Go(func() error {
			for range 100 {
				guard := h.Lock().Wait()
				*guard.Get()++
				guard.Release()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if v := a.Join(b); v != 200 {
		t.Fatalf("counter = %d, want 200", v)
	}
}

func TestShared(t *testing.T) {
	var released []string
	s := mt.NewSharedFunc("x", func(v string) { released = append(released, v) })
	c := s.Clone()
	if s.Count() != 2 || !s.PtrEq(c) {
		t.Fatalf("Count = %d, want 2 handles of one cell", s.Count())
	}
	s.Drop()
	c.Drop()
	if len(released) != 1 || released[0] != "x" {
		t.Fatalf("released = %v, want [x]", released)
	}
}
