package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/memfit/memfit/arena"
	"github.com/memfit/memfit/internal/region"
)

var (
	runSize     int
	runOps      int
	runSeed     int64
	runMaxAlloc int
	runDump     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a random alloc/free workload against a fresh arena",
	Long: `run maps an anonymous memory region, seeds an arena over it and performs
a reproducible random sequence of allocations and frees. After the
workload it releases every live allocation and verifies that the region
collapsed back into a single spanning free block.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkload(os.Stdout)
	},
}

func init() {
	runCmd.Flags().IntVar(&runSize, "size", 1<<20, "Arena region size in bytes")
	runCmd.Flags().IntVar(&runOps, "ops", 10000, "Number of workload operations")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "Random seed for the workload")
	runCmd.Flags().IntVar(&runMaxAlloc, "max-alloc", 4096, "Largest allocation request in bytes")
	runCmd.Flags().BoolVar(&runDump, "dump", false, "Print the free list after the workload")
	rootCmd.AddCommand(runCmd)
}

func runWorkload(out io.Writer) error {
	backing, cleanup, err := region.Map(runSize)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck // unmapping at exit, nothing to recover

	a, err := arena.New(backing)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(runSeed))
	live := make([]arena.Ref, 0, 1024)
	fails := 0

	for range runOps {
		if len(live) == 0 || rng.Intn(2) == 0 {
			n := int64(rng.Intn(runMaxAlloc + 1))
			ref, _, allocErr := a.Alloc(n)
			if allocErr != nil {
				fails++
				continue
			}
			live = append(live, ref)
		} else {
			i := rng.Intn(len(live))
			if freeErr := a.Free(live[i]); freeErr != nil {
				return fmt.Errorf("workload free: %w", freeErr)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	printInfo("workload done: %d ops, %d live allocations, %d failed allocs\n",
		runOps, len(live), fails)
	printInfo("free list: %d entries, %d of %d bytes free, largest block %d\n",
		a.Size(), a.FreeBytes(), a.Len(), a.LargestFree())

	st := a.Stats()
	printInfo("stats: allocs=%d fails=%d frees=%d splits=%d absorbs=%d\n",
		st.AllocCalls, st.AllocFails, st.FreeCalls, st.Splits, st.Absorbs)
	printInfo("coalesce: forward=%d backward=%d both=%d\n",
		st.CoalesceForward, st.CoalesceBackward, st.CoalesceBoth)

	if runDump {
		printInfo("free list after workload:\n")
		if !quiet {
			a.DumpTo(out)
		}
	}

	// Drain and check conservation: every byte must come back.
	for _, ref := range live {
		if freeErr := a.Free(ref); freeErr != nil {
			return fmt.Errorf("drain free: %w", freeErr)
		}
	}
	if a.Size() != 1 || a.FreeBytes() != a.Len() {
		return fmt.Errorf("conservation violated: %d free entries, %d of %d bytes free",
			a.Size(), a.FreeBytes(), a.Len())
	}
	printInfo("drained: region restored to one free block of %d bytes\n", a.Len())
	return nil
}
