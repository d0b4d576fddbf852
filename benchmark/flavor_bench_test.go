package benchmark

import (
	"sync/atomic"
	"testing"

	"github.com/llxisdsh/synchrony"
)

// Single-goroutine cost of each flavor, against the bare sync/atomic type.

func BenchmarkFlagFlip_Sync(b *testing.B)   { benchFlagFlip[synchrony.Sync](b) }
func BenchmarkFlagFlip_Unsync(b *testing.B) { benchFlagFlip[synchrony.Unsync](b) }

func benchFlagFlip[F synchrony.Flavor](b *testing.B) {
	var f synchrony.Flag[F]
	for b.Loop() {
		f.Flip()
	}
}

func BenchmarkFlagFlip_AtomicBool(b *testing.B) {
	var f atomic.Bool
	for b.Loop() {
		for {
			v := f.Load()
			if f.CompareAndSwap(v, !v) {
				break
			}
		}
	}
}

func BenchmarkSharedClone_Sync(b *testing.B)   { benchSharedClone[synchrony.Sync](b) }
func BenchmarkSharedClone_Unsync(b *testing.B) { benchSharedClone[synchrony.Unsync](b) }

func benchSharedClone[F synchrony.Flavor](b *testing.B) {
	b.ReportAllocs()
	s := synchrony.NewShared[F](0)
	for b.Loop() {
		s.Clone().Drop()
	}
}

func BenchmarkWakerSlot_Sync(b *testing.B)   { benchWakerSlot[synchrony.Sync](b) }
func BenchmarkWakerSlot_Unsync(b *testing.B) { benchWakerSlot[synchrony.Unsync](b) }

func benchWakerSlot[F synchrony.Flavor](b *testing.B) {
	var slot synchrony.WakerSlot[F]
	w := synchrony.NewWaker(func() {})
	for b.Loop() {
		slot.Register(w)
		slot.Wake()
	}
}
