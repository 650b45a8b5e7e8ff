package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jba/aamap"
)

type soakParams struct {
	ops        int
	keys       int
	seed       uint64
	checkEvery int
}

func soakCmd(logger func() *zerolog.Logger) *cobra.Command {
	var p soakParams
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Run a random insert/erase workload and verify the tree as it goes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return soak(logger(), p)
		},
	}
	cmd.Flags().IntVar(&p.ops, "ops", 1_000_000, "number of operations")
	cmd.Flags().IntVar(&p.keys, "keys", 10_000, "size of the key space")
	cmd.Flags().Uint64Var(&p.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&p.checkEvery, "check-every", 10_000, "verify the tree every this many operations")
	return cmd
}

var errMismatch = errors.New("map disagrees with reference")

func soak(log *zerolog.Logger, p soakParams) error {
	if p.keys <= 0 || p.checkEvery <= 0 {
		return fmt.Errorf("--keys and --check-every must be positive")
	}
	r := rand.New(rand.NewPCG(p.seed, p.seed))
	var m aamap.Map[int, int]
	ref := map[int]int{}
	since := time.Now()
	for i := 1; i <= p.ops; i++ {
		k := r.IntN(p.keys)
		if r.IntN(3) == 0 {
			_, ok := ref[k]
			if got := m.Erase(k); got != b2i(ok) {
				return fmt.Errorf("%w: op %d: Erase(%d) = %d", errMismatch, i, k, got)
			}
			delete(ref, k)
		} else {
			_, ok := ref[k]
			if _, added := m.Insert(k, i); added == ok {
				return fmt.Errorf("%w: op %d: Insert(%d) added=%t", errMismatch, i, k, added)
			}
			ref[k] = i
		}
		if i%p.checkEvery == 0 {
			if err := verify(&m, ref); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
			log.Info().Msgf("processed %s ops in %s; len=%s",
				humanize.Comma(int64(i)), time.Since(since), humanize.Comma(int64(m.Len())))
		}
	}
	if err := verify(&m, ref); err != nil {
		return err
	}
	log.Info().Msgf("soak done: %s ops, %s keys remain", humanize.Comma(int64(p.ops)), humanize.Comma(int64(m.Len())))
	return nil
}

func verify(m *aamap.Map[int, int], ref map[int]int) error {
	if err := m.Check(); err != nil {
		return err
	}
	if m.Len() != len(ref) {
		return fmt.Errorf("%w: len %d, want %d", errMismatch, m.Len(), len(ref))
	}
	for k, v := range m.All() {
		if want, ok := ref[k]; !ok || want != v {
			return fmt.Errorf("%w: entry %d=%d", errMismatch, k, v)
		}
	}
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
