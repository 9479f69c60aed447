package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pathways/matrix"
)

// ExampleSparse shows that contributions stack until they are read or
// coalesced, which is how exchange tables with repeated (row, col) pairs are
// represented before a solver sees them.
func ExampleSparse() {
	m, _ := matrix.NewSparse(2, 2)
	_ = m.Append(0, 1, 1.5)
	_ = m.Append(0, 1, 0.5)
	_ = m.Append(1, 1, 1)

	v, _ := m.At(0, 1)
	fmt.Println("nnz:", m.NNZ(), "value:", v)

	m.SumDuplicates()
	fmt.Print(m)

	// Output:
	// nnz: 3 value: 2
	// Sparse 2x2 nnz=2
	// (0,1)=2
	// (1,1)=1
}
