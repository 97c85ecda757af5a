// sweeptree-bench is a stress test and benchmark for the sweeptree library.
// It builds large trees under caller-driven descent, hammers the index with
// lookups, adjacent swaps, and deletions, and verifies the full structural
// invariant set between phases.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phroun/sweeptree"
)

type benchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
}

func (r benchResult) row() table.Row {
	if r.Ops == 0 {
		return table.Row{r.Name, r.Duration.Round(time.Microsecond), "", ""}
	}
	opsPerSec := float64(r.Ops) / r.Duration.Seconds()
	return table.Row{
		r.Name,
		r.Duration.Round(time.Microsecond),
		humanize.Comma(int64(r.Ops)),
		humanize.CommafWithDigits(opsPerSec, 0),
	}
}

func main() {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "sweeptree-bench",
		Short: "Benchmark and stress test for the sweeptree library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(count, seed)
		},
	}
	cmd.Flags().IntVar(&count, "count", 200000, "number of keys to insert")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(count int, seed int64) error {
	log := logrus.WithFields(logrus.Fields{
		"count": count,
		"seed":  seed,
	})
	log.WithField("go", runtime.Version()).Info("starting")

	rng := rand.New(rand.NewSource(seed))
	tree := sweeptree.New[int]()

	// Distinct keys at stable addresses; the tree holds these for its
	// whole lifetime.
	keys := rng.Perm(count * 2)[:count]
	pins := make([]*int, count)
	for i, k := range keys {
		v := k
		pins[i] = &v
	}

	var results []benchResult

	phase := func(name string, ops int, fn func() error) error {
		log.WithField("phase", name).Info("running")
		start := time.Now()
		if err := fn(); err != nil {
			return errors.Wrapf(err, "phase %q", name)
		}
		results = append(results, benchResult{Name: name, Duration: time.Since(start), Ops: ops})
		return nil
	}

	err := phase("insert", count, func() error {
		for _, h := range pins {
			descend(tree, *h).Insert(h).Release()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := phase("verify invariants", 0, tree.Check); err != nil {
		return err
	}

	err = phase("indexed lookup", count, func() error {
		for _, h := range pins {
			nc, ok := tree.Get(h)
			if !ok {
				return errors.Errorf("key %d missing from index", *h)
			}
			nc.Release()
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Adjacent swaps: the sweep-line pattern of two neighbors trading
	// order without any rebalancing.
	swaps := count / 2
	err = phase("adjacent swap", swaps*2, func() error {
		order := make([]*int, 0, count)
		tree.Walk(func(key *int) bool {
			order = append(order, key)
			return true
		})
		for i := 0; i+1 < len(order); i += 2 {
			if err := tree.Swap(order[i], order[i+1]); err != nil {
				return err
			}
			// Swap back so later phases see ordered descent again.
			if err := tree.Swap(order[i], order[i+1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := phase("verify invariants after swaps", 0, tree.Check); err != nil {
		return err
	}

	err = phase("delete half", count/2, func() error {
		for _, h := range pins[:count/2] {
			nc, ok := tree.Get(h)
			if !ok {
				return errors.Errorf("key %d missing from index", *h)
			}
			nc.Delete()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := phase("verify invariants after deletes", 0, tree.Check); err != nil {
		return err
	}

	err = phase("drain", count-count/2, func() error {
		for _, h := range pins[count/2:] {
			nc, ok := tree.Get(h)
			if !ok {
				return errors.Errorf("key %d missing from index", *h)
			}
			nc.Delete()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if tree.Len() != 0 {
		return errors.Errorf("%d nodes left after drain", tree.Len())
	}

	log.Info("done")
	fmt.Println()

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Phase", "Duration", "Ops", "Ops/sec"})
	for _, r := range results {
		w.AppendRow(r.row())
	}
	w.Render()
	return nil
}

// descend walks from the root to the empty slot where key belongs under int
// ordering. Key comparison happens here, on the caller's side, never inside
// the library.
func descend(tree *sweeptree.Tree[int], key int) sweeptree.LeafCursor[int] {
	cur := tree.Root()
	for {
		nc, ok := cur.Node()
		if !ok {
			lc, _ := cur.Leaf()
			return lc
		}
		if key < *nc.Key() {
			cur = nc.LeftChild()
		} else {
			cur = nc.RightChild()
		}
	}
}
