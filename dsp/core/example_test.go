package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-chain/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(250),
	)

	fmt.Printf("sampleRate=%.0f\n", cfg.SampleRate)

	// Output:
	// sampleRate=250
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	copy(buf[2:], []float64{3, 4})
	fmt.Println(buf)

	core.Fill(buf[:2], 0)
	fmt.Println(buf)

	// Output:
	// [1 2 3 4]
	// [0 0 3 4]
}
