package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-chain/dsp/buffer"
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/interp"
	"github.com/cwbudde/algo-chain/internal/log"
)

func ExampleBuffer_Sample() {
	g := chain.New[int](chain.WithLogger(log.Discard()))
	b, err := buffer.New(g, 8, chain.None, core.WithName("in"))
	if err != nil {
		panic(err)
	}
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		b.Push(v)
	}

	fmt.Println(b)
	fmt.Println(b.Sample(4.3, interp.Linear), b.Sample(4.6, interp.Nearest))
	// Output:
	// in[8](6, 2, 9, 5, 1, 4, 1, 3)
	// 2 4
}

func ExampleNonUniform_SampleAtTime() {
	clock, err := buffer.NewTimeBuffer(4)
	if err != nil {
		panic(err)
	}
	g := chain.New[float64](chain.WithLogger(log.Discard()))
	nu, err := buffer.NewNonUniform(g, 4, clock, chain.None)
	if err != nil {
		panic(err)
	}

	for i, v := range []float64{10, 20, 40, 80} {
		clock.Push(float64(i))
		nu.Push(v)
	}

	fmt.Println(nu.Seek(2.25, interp.Linear))
	fmt.Println(nu.SampleAtTime(2.25, interp.Linear))
	// Output:
	// 0.75
	// 50
}
