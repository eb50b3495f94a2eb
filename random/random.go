// Package random provides the injectable uniform sources the sampling
// pipeline draws from. Nothing in the pipeline touches a global generator, so
// a seeded source gives reproducible polygons and samples.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/MichaelTJones/pcg"
)

// A Source produces values uniformly distributed in [0, 1). *rand.Rand from
// either math/rand package satisfies it. Sources are not safe for concurrent
// use unless stated otherwise.
type Source interface {
	Float64() float64
}

// Stream selector for PCG32. Any odd constant works; this one matches the
// generator's reference implementation.
const pcgSequence = 0xda3e39cb94b95bdb

// PCG is a Source backed by a PCG32 generator. Each Float64 consumes two
// 32-bit outputs to fill a 53-bit mantissa.
type PCG struct {
	r *pcg.PCG32
}

func NewPCG(seed uint64) *PCG {
	r := pcg.NewPCG32()
	r.Seed(seed, pcgSequence)
	return &PCG{r: r}
}

func (p *PCG) Float64() float64 {
	bits := uint64(p.r.Random())<<32 | uint64(p.r.Random())
	return float64(bits>>11) / (1 << 53)
}

// NewMath returns a standard library generator seeded for reproducibility.
func NewMath(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgSequence))
}

// Locked makes any Source safe for concurrent use by serialising calls.
type Locked struct {
	mu  sync.Mutex
	src Source
}

func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Uniform draws from [lo, hi). When lo == hi it always returns lo.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
