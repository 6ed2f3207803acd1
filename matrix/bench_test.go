// Package matrix_test provides benchmarks for the elimination kernels,
// using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stoich/matrix"
)

// benchSizes are the (rows, cols) shapes to benchmark; reactions rarely exceed 10×12.
var benchSizes = [][2]int{{4, 5}, {8, 10}, {16, 20}}

// sink to defeat dead-code elimination
var sinkBasis int

func randomInts(seed int64, r, c int) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = int64(rng.Intn(9) - 4)
		}
	}

	return rows
}

func BenchmarkNullSpace(b *testing.B) {
	b.ReportAllocs()
	for _, sz := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			m := MustInts(b, randomInts(1337, sz[0], sz[1]))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				basis, err := matrix.NullSpace(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkBasis = len(basis)
			}
		})
	}
}
