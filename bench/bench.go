// Package bench compares strcat with formatting functions on fixed inputs.
// It's a performance regression check, used by package benchmarks and by the strcat command.
package bench

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"testing"

	"nikand.dev/go/hacked/hfmt"
	"tlog.app/go/errors"

	"nikand.dev/go/strcat"
)

type (
	Group struct {
		Name  string
		Want  string
		Impls []Impl
	}

	Impl struct {
		Name string
		Run  func() string
	}

	Result struct {
		Group string
		Impl  string

		N           int
		NsPerOp     int64
		AllocsPerOp int64
		BytesPerOp  int64
	}
)

// Inputs are variables so the compiler can't fold them.
var (
	Hello = "Hello"
	Space = " "
	World = "World"
	Bang  = "!"

	Number = "Number: "
	Int    = uint64(202302)

	Bool  = true
	Float = 2.02302
	Addr  = netip.AddrFrom4([4]byte{127, 0, 0, 1})
)

var Sink string

var Groups = []Group{{
	Name: "literal_string",
	Want: "Hello World!",
	Impls: []Impl{
		{Name: "strcat", Run: func() string {
			return strcat.Str(Hello, Space, World, Bang)
		}},
		{Name: "sprintf", Run: func() string {
			return fmt.Sprintf("%s%s%s%s", Hello, Space, World, Bang)
		}},
		{Name: "appendf", Run: func() string {
			return string(hfmt.Appendf(nil, "%s%s%s%s", Hello, Space, World, Bang))
		}},
		{Name: "plus", Run: func() string {
			return Hello + Space + World + Bang
		}},
		{Name: "join", Run: func() string {
			return strings.Join([]string{Hello, Space, World, Bang}, "")
		}},
	},
}, {
	Name: "str_int",
	Want: "Number: 202302",
	Impls: []Impl{
		{Name: "strcat", Run: func() string {
			return strcat.Str(Number, strconv.FormatUint(Int, 10))
		}},
		{Name: "sprintf", Run: func() string {
			return fmt.Sprintf("%s%d", Number, Int)
		}},
		{Name: "appendf", Run: func() string {
			return string(hfmt.Appendf(nil, "%s%d", Number, Int))
		}},
	},
}, {
	Name: "display",
	Want: "true2023022.02302127.0.0.1",
	Impls: []Impl{
		{Name: "strcat", Run: func() string {
			return strcat.Str(
				strconv.FormatBool(Bool),
				strconv.FormatUint(Int, 10),
				strconv.FormatFloat(Float, 'g', -1, 64),
				Addr.String(),
			)
		}},
		{Name: "sprintf", Run: func() string {
			return fmt.Sprintf("%v%v%v%v", Bool, Int, Float, Addr)
		}},
		{Name: "appendf", Run: func() string {
			return string(hfmt.Appendf(nil, "%v%v%v%v", Bool, Int, Float, Addr))
		}},
	},
}}

// Check runs every implementation once and compares the result.
func Check() error {
	for _, g := range Groups {
		for _, im := range g.Impls {
			if r := im.Run(); r != g.Want {
				return errors.New("%v/%v: got %q, want %q", g.Name, im.Name, r, g.Want)
			}
		}
	}

	return nil
}

// Run benchmarks implementations matching filter.
// Empty filter matches everything, otherwise it's a substring of group/impl.
func Run(filter string, cb func(Result)) {
	for _, g := range Groups {
		for _, im := range g.Impls {
			if filter != "" && !strings.Contains(g.Name+"/"+im.Name, filter) {
				continue
			}

			r := testing.Benchmark(Func(im.Run))

			cb(Result{
				Group:       g.Name,
				Impl:        im.Name,
				N:           r.N,
				NsPerOp:     r.NsPerOp(),
				AllocsPerOp: r.AllocsPerOp(),
				BytesPerOp:  r.AllocedBytesPerOp(),
			})
		}
	}
}

// Func makes a benchmark function of f.
func Func(f func() string) func(b *testing.B) {
	return func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			Sink = f()
		}
	}
}
