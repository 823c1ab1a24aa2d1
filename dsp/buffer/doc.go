// Package buffer provides sliding-window nodes for the propagation graph.
//
// A [Buffer] keeps the last N values pushed into it, newest first, and can
// be sampled at fractional positions. A [NonUniform] buffer additionally
// correlates every position with a shared time buffer so that it can be
// sampled by time instead of by position.
//
// Time buffers are not advanced by the value buffers that reference them.
// The caller pushes one time stamp into the time buffer for every value it
// pushes into the dependent buffers, in a consistent order. Time stamps
// must increase from push to push, so the time buffer decreases from
// position 0 towards the back; [NonUniform.Seek] relies on that ordering and
// returns unspecified positions otherwise.
package buffer
