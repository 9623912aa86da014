package fsm_test

import (
	"testing"

	"github.com/museun/fsm"
)

func BenchmarkNext(b *testing.B) {
	cur := fsm.Start[stage]()
	for b.Loop() {
		fsm.Next(&cur)
	}
}

func BenchmarkPrevious(b *testing.B) {
	cur := fsm.Start[stage]()
	for b.Loop() {
		fsm.Previous(&cur)
	}
}

func BenchmarkGoto(b *testing.B) {
	cur := fsm.Start[stage]()
	for b.Loop() {
		fsm.Goto(&cur, published)
	}
}

func BenchmarkFlip(b *testing.B) {
	cur := off
	for b.Loop() {
		fsm.Flip(&cur)
	}
}

func BenchmarkOnceCollect(b *testing.B) {
	for b.Loop() {
		fsm.Once(draft).Collect()
	}
}

func BenchmarkCycleTake(b *testing.B) {
	for b.Loop() {
		fsm.Cycle(draft).Take(stageCount)
	}
}
