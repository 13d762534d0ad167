package main

import (
	"github.com/coregx/signals"
	"github.com/spf13/cobra"
)

// multiplyCmd demonstrates a single-source derivation over a simple
// int transform.
func multiplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multiply",
		Short: "Basic multiply: a = input(1); d = a.read(x => x*2)",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(1, demoOptions[int]("a"))
			d := signals.Read(a, func(x int) int { return x * 2 }, demoOptions[int]("d"))

			printf("d.Get() = %d\n", d.Get())
			a.Set(4)
			printf("after a.Set(4): d.Get() = %d\n", d.Get())
			a.Set(6)
			printf("after a.Set(6): d.Get() = %d\n", d.Get())
		},
	}
}

// counterCmd demonstrates laziness and caching, made visible by
// counting compute invocations.
func counterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Lazy + cached counter: construction alone never runs compute",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(1, demoOptions[int]("a"))
			var calls int
			c := signals.Read(a, func(x int) int {
				calls++
				return x
			}, demoOptions[int]("c"))

			printf("after construction: calls = %d\n", calls)
			printf("c.Get() = %d, calls = %d\n", c.Get(), calls)
			printf("c.Get() again = %d, calls = %d (no recompute)\n", c.Get(), calls)
		},
	}
}

// parityCmd demonstrates the value-equality short-circuit, chained
// through two derivation levels.
func parityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parity",
		Short: "Parity short-circuit: a downstream label doesn't recompute when parity doesn't change",
		Run: func(cmd *cobra.Command, args []string) {
			x := signals.NewInput(0)
			var computes int
			parity := signals.Read(x, func(n int) bool { return n%2 == 0 })
			label := signals.Read(parity, func(p bool) string {
				computes++
				if p {
					return "even"
				}
				return "odd"
			})

			printf("label.Get() = %s, computes = %d\n", label.Get(), computes)
			x.Set(2)
			printf("after x.Set(2): label.Get() = %s, computes = %d (unchanged)\n", label.Get(), computes)
			x.Set(1)
			printf("after x.Set(1): label.Get() = %s, computes = %d\n", label.Get(), computes)
		},
	}
}

// branchCmd demonstrates dynamic dependency rewiring via auto-unwrap.
func branchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Conditional branch detachment: writes to the untaken branch don't recompute anything",
		Run: func(cmd *cobra.Command, args []string) {
			x := signals.NewInput("x")
			y := signals.NewInput("y")
			b := signals.NewInput(true)
			z := signals.ReadSignal(b, func(bv bool) signals.Signal[string] {
				if bv {
					return signals.Read(x, func(v string) string { return v })
				}
				return signals.Read(y, func(v string) string { return v })
			})

			printf("z.Get() = %s\n", z.Get())
			y.Set("y2")
			printf("after y.Set(y2): z.Get() = %s (untouched)\n", z.Get())
			x.Set("x2")
			printf("after x.Set(x2): z.Get() = %s\n", z.Get())
			b.Set(false)
			printf("after b.Set(false): z.Get() = %s\n", z.Get())
			x.Set("x3")
			printf("after x.Set(x3): z.Get() = %s (untouched, branch detached)\n", z.Get())
		},
	}
}

// multiCmd demonstrates the two-source form of read.
func multiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multi",
		Short: "Multi-source: c = read(a, b, (av, bv) => av + bv)",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(1)
			b := signals.NewInput(2)
			c := signals.Read2(a, b, func(av, bv int) int { return av + bv })

			printf("c.Get() = %d\n", c.Get())
			a.Set(5)
			printf("after a.Set(5): c.Get() = %d\n", c.Get())
			b.Set(10)
			printf("after b.Set(10): c.Get() = %d\n", c.Get())
		},
	}
}

// returnsSignalCmd demonstrates a three-source derivation that returns
// one of its own signal arguments.
func returnsSignalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "returns-signal",
		Short: "Derivation returning a signal: res = read(a, b, c, (av,bv,cv) => cv ? a : b)",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(1)
			b := signals.NewInput(2)
			c := signals.NewInput(false)
			res := signals.Read3Signal(a, b, c, func(av, bv int, cv bool) signals.Signal[int] {
				if cv {
					return a
				}
				return b
			})

			printf("res.Get() = %d\n", res.Get())
			c.Set(true)
			printf("after c.Set(true): res.Get() = %d\n", res.Get())
		},
	}
}

// reentrancyCmd demonstrates the guard rejecting a non-reactive read
// performed from inside a derivation's own compute function.
func reentrancyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reentrancy",
		Short: "Non-reactive read rejection: reading a captured signal from inside compute panics",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(1)
			d := signals.Read(a, func(_ int) int { return a.Get() * 2 })

			defer func() {
				if r := recover(); r != nil {
					printf("d.Get() panicked as expected: %v\n", r)
				}
			}()
			d.Get()
			printf("d.Get() did not panic — this should be unreachable\n")
		},
	}
}

// watchCmd recreates a run-now, react-to-changes observation loop in a
// pull-only shape: it is itself a reader, polling once after each write, rather
// than a push notification fired by a write. This library has no push
// notification mechanism; watch is the pull-shaped substitute.
func watchCmd() *cobra.Command {
	var ticks int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a derived signal N times, printing whenever its value changes",
		Run: func(cmd *cobra.Command, args []string) {
			a := signals.NewInput(0)
			d := signals.Read(a, func(n int) int { return n * n })

			var last int
			var seen bool
			observe := func() {
				v := d.Get()
				if !seen || v != last {
					printf("watch: value = %d\n", v)
				}
				last, seen = v, true
			}

			observe()
			for i := 0; i < ticks; i++ {
				a.Set(a.Get() + 1)
				observe()
			}
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 5, "number of writes to perform while watching")
	return cmd
}
