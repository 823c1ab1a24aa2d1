package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chain/dsp/buffer"
	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/dsp/core"
	"github.com/cwbudde/algo-chain/dsp/filter"
	"github.com/cwbudde/algo-chain/internal/log"
)

// passthrough is a node without a window.
type passthrough[T any] struct{ last T }

func (p *passthrough[T]) Process(v T) T { p.last = v; return v }
func (p *passthrough[T]) Out() T        { return p.last }

func newGraph[T any]() *chain.Graph[T] {
	return chain.New[T](chain.WithLogger(log.Discard()))
}

func mustBuffer[T any](t *testing.T, g *chain.Graph[T], capacity int, parent chain.NodeID, name string) *buffer.Buffer[T] {
	t.Helper()
	b, err := buffer.New(g, capacity, parent, core.WithName(name))
	require.NoError(t, err)
	return b
}

// fanOut builds in -> {a, passthrough -> c, b}, with b attached last.
func fanOut(t *testing.T) (*chain.Graph[int], *buffer.Buffer[int], *buffer.Buffer[int]) {
	t.Helper()
	g := newGraph[int]()
	in := mustBuffer(t, g, 4, chain.None, "in")
	mustBuffer(t, g, 3, in.ID(), "a")
	p, err := g.Add(&passthrough[int]{}, in.ID())
	require.NoError(t, err)
	mustBuffer(t, g, 2, p, "c")
	b := mustBuffer(t, g, 2, in.ID(), "b")

	for _, v := range []int{1, 2, 3} {
		in.Push(v)
	}
	return g, in, b
}

func TestDumpFanOut(t *testing.T) {
	g, in, _ := fanOut(t)

	want := strings.Join([]string{
		"in[4] -> b[2]",
		"    /" + strings.Repeat("-", 10) + "> c[2]",
		"    |" + strings.Repeat("-", 18) + "> a[3]",
		strings.Repeat("_", 29),
		"    3       3       3       3",
		"    2       2       2       2",
		"    1       -       -       1",
		"    0       -       -       -",
	}, "\n")
	assert.Equal(t, want, Dump(g, in.ID()))
}

func TestDumpIncludesLaterSiblings(t *testing.T) {
	g, _, b := fanOut(t)

	got := Dump(g, b.ID())
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "b[2]", lines[0])
	assert.Equal(t, "   /--> c[2]", lines[1])
	assert.Equal(t, "   |"+strings.Repeat("-", 10)+"> a[3]", lines[2])
	assert.Equal(t, strings.Repeat("_", 20), lines[3])
	assert.NotContains(t, got, "in[4]")
}

func TestDumpTimedRoot(t *testing.T) {
	clock, err := buffer.NewTimeBuffer(3)
	require.NoError(t, err)
	g := newGraph[float64]()
	in, err := buffer.NewNonUniform(g, 2, clock, chain.None, core.WithName("in"))
	require.NoError(t, err)
	mustBuffer(t, g, 3, in.ID(), "out")

	clock.Push(0.5)
	in.Push(10)
	clock.Push(1.5)
	in.Push(20)

	want := strings.Join([]string{
		"        Time | in[2] -> out[3]",
		strings.Repeat("_", 30),
		"         1.5      20        20",
		"         0.5      10        10",
		"           0       -         0",
	}, "\n")
	assert.Equal(t, want, Dump(g, in.ID()))
}

func TestDumpSkipsFilters(t *testing.T) {
	clock, err := buffer.NewTimeBuffer(8)
	require.NoError(t, err)
	g := newGraph[float64]()
	in, err := buffer.NewNonUniform(g, 8, clock, chain.None, core.WithName("in"))
	require.NoError(t, err)

	hold, err := filter.NewHoldHigh(g, in.ID(), 3)
	require.NoError(t, err)
	mustBuffer(t, g, 4, hold.ID(), "peak")
	cmp, err := filter.NewComparator(g, in.ID(), 0.0)
	require.NoError(t, err)
	mustBuffer(t, g, 4, cmp.ID(), "state")
	lim, err := filter.NewLimiter(g, in.ID())
	require.NoError(t, err)
	_, err = filter.NewMidAntiJitter(g, lim.ID(), 3)
	require.NoError(t, err)

	for i := range 8 {
		clock.Push(float64(i))
		in.Push(float64(i % 3))
	}

	got := Dump(g, in.ID())
	header := strings.SplitN(got, "\n_", 2)[0]
	assert.True(t, strings.HasPrefix(header, "        Time | in[8] ->...-> MidAntiJitter.in[3]\n"), header)
	assert.Contains(t, header, "/--")
	assert.Contains(t, header, "--> state[4]")
	assert.Contains(t, header, "|--")
	assert.Contains(t, header, "--> HoldHigh.in[3] ->...-> peak[4]")
	assert.NotContains(t, header, "Comparator")
	assert.NotContains(t, header, "Limiter")
}

func TestDumpIsReadOnly(t *testing.T) {
	g, in, b := fanOut(t)
	before := in.Export()

	first := Dump(g, in.ID())
	assert.Equal(t, first, Dump(g, in.ID()))
	assert.Equal(t, before, in.Export())
	assert.Equal(t, []int{3, 2}, b.Export())
}

func TestDumpErrors(t *testing.T) {
	g := newGraph[int]()
	p, err := g.Add(&passthrough[int]{}, chain.None)
	require.NoError(t, err)

	_, err = DumpE(g, p)
	require.ErrorIs(t, err, ErrNotDrawable)
	assert.Empty(t, Dump(g, p))

	_, err = DumpE(g, 42)
	require.ErrorIs(t, err, chain.ErrUnknownNode)
	_, err = DumpE(g, chain.None)
	require.ErrorIs(t, err, chain.ErrUnknownNode)
}
