package steiner_test

import (
	"testing"

	"github.com/katalvlaran/groute/steiner"
)

func BenchmarkMakeSteinerTree(b *testing.B) {
	xs := make([]int, 32)
	ys := make([]int, 32)
	for i := range xs {
		xs[i] = (i * 37) % 200
		ys[i] = (i * 53) % 200
	}
	builder := steiner.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.MakeSteinerTree(xs, ys, nil, 3); err != nil {
			b.Fatal(err)
		}
	}
}
