package vsf

import (
	"fmt"
)

func ExampleStructureFunction() {
	field := Grid{
		{1, 2},
		{3, 4},
	}

	rows, _ := StructureFunction(field, 1)
	rows.Sort()
	for _, row := range rows {
		fmt.Printf("%.4f %.4f %.4f\n", row[0], row[1], row[2])
	}
	// Output:
	// 1.0000 1.2000 0.2309
	// 1.4142 1.6000 0.8000
}

func ExampleGrid_SubtractMean() {
	field := Grid{
		{1, 2},
		{3, 4},
	}

	field.SubtractMean(1)
	fmt.Printf("%v", field)
	// Output:
	// [[-1.5 -0.5] [0.5 1.5]]
}
