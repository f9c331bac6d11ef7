package main

import (
	"fmt"

	"github.com/SalahEddineGhamri/gopractice/internal/logging"
	"github.com/SalahEddineGhamri/gopractice/internal/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Shared-state (singleton) exercise",
}

var registryDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk the shared-cell demonstration",
	Long: `Acquires three handles with values 1, 2 and 3, then a fourth with no
value. Every handle aliases the same process-wide cell, so all four read the
last written value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry.Reset()

		a := registry.AcquireWith(1)
		b := registry.AcquireWith(2)
		c := registry.AcquireWith(3)
		d := registry.Acquire()

		log := logging.Named(logger, "registry")
		out := cmd.OutOrStdout()
		for _, h := range []struct {
			name   string
			handle registry.Handle
		}{{"a", a}, {"b", b}, {"c", c}, {"d", d}} {
			v := h.handle.Value()
			log.Debug("handle read", zap.String("handle", h.name), zap.Int("value", v))
			fmt.Fprintf(out, "%s -> %d\n", h.name, v)
		}
		fmt.Fprintln(out, "all handles alias the same cell")
		return nil
	},
}

func init() {
	registryCmd.AddCommand(registryDemoCmd)
}
