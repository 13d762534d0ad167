// Command signalsdemo runs each end-to-end scenario from the signals
// engine's test suite as its own subcommand, so any one of them can be
// inspected in isolation instead of reading one long narrated main.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/coregx/signals"
	"github.com/coregx/signals/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// demoInstrumentation is wired (through demoOptions) into the signals of the
// multiply and counter scenarios when --metrics is set, so their activity is
// exported at localhost:<addr>/metrics as well as printed. The other
// scenarios build their signals without demoOptions and report nothing there.
var demoInstrumentation signals.Instrumentation = nil

func main() {
	var metricsAddr string

	root := &cobra.Command{
		Use:   "signalsdemo",
		Short: "Demonstrates the signals reactive engine scenario by scenario",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if metricsAddr == "" {
				return
			}
			demoInstrumentation = metrics.Prometheus()
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			go func() {
				if err := http.ListenAndServe(metricsAddr, mux); err != nil {
					log.Printf("signalsdemo: metrics server stopped: %v", err)
				}
			}()
			printf("metrics exported at http://%s/metrics\n", metricsAddr)
		},
	}
	root.PersistentFlags().StringVar(&metricsAddr, "metrics", "", "if set, export Prometheus metrics at this address (e.g. :9090) while the scenario runs")
	root.AddCommand(
		multiplyCmd(),
		counterCmd(),
		parityCmd(),
		branchCmd(),
		multiCmd(),
		returnsSignalCmd(),
		reentrancyCmd(),
		watchCmd(),
	)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// demoOptions returns Options wired to demoInstrumentation when --metrics is
// set, and the zero value (no-op instrumentation) otherwise.
func demoOptions[T any](name string) signals.Options[T] {
	return signals.Options[T]{Name: name, Instrumentation: demoInstrumentation}
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}
