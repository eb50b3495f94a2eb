package dbg

import (
	"fmt"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polysample/geom"
)

// This converts arbitrary comparable keys into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. This is helpful for telling
// triangles apart in rendered labels and terminal listings.

var (
	mu   sync.Mutex
	memo = make(map[any]string)
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoised name for key. Keys must be comparable.
func Name(key any) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[key] = r
	return r
}

// Describe formats a triangle for terminal output. Degenerate triangles are
// red, since the sampler can never select them.
func Describe(t geom.Triangle, area float64) string {
	name := aurora.Green(Name(t)).String()
	if area == 0 {
		name = aurora.Red(Name(t)).String()
	}
	return fmt.Sprintf("%s area=%.6g (%g, %g) (%g, %g) (%g, %g)",
		name, area, t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
