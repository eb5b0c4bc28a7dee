/*
Package bench runs insertion workloads against the order-maintenance
list and reports label-rewrite statistics.
*/
package bench

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/puzpuzpuz/xsync/v2"

	"github.com/mgnsk/orderlist"
	"github.com/mgnsk/orderlist/indexlist"
	"github.com/mgnsk/orderlist/xrand"
)

// Result of one workload run.
type Result struct {
	Name      string
	Inserts   int
	Relabeled uint64
	Elapsed   time.Duration
}

// Run executes all configured workloads, each against its own list, and
// returns their results in configuration order. Workloads run in
// parallel; each one draws from an independently seeded generator so
// results stay reproducible regardless of scheduling.
func Run(cfg Config, logger *log.Logger) []Result {
	results := xsync.NewMapOf[Result]()
	totalInserts := xsync.NewCounter()

	var wg sync.WaitGroup

	for i, w := range cfg.Workloads {
		wg.Add(1)

		go func(i int, w Workload) {
			defer wg.Done()

			res := runWorkload(w, xrand.NewXoshiro256(cfg.Seed+uint64(i)))

			results.Store(w.Name, res)
			totalInserts.Add(int64(res.Inserts))

			logger.Info("workload finished",
				"name", res.Name,
				"inserts", res.Inserts,
				"relabeled", res.Relabeled,
				"elapsed", res.Elapsed,
			)
		}(i, w)
	}

	wg.Wait()

	logger.Debug("all workloads finished", "inserts", totalInserts.Value())

	out := make([]Result, 0, len(cfg.Workloads))
	for _, w := range cfg.Workloads {
		if res, ok := results.Load(w.Name); ok {
			out = append(out, res)
		}
	}

	return out
}

func runWorkload(w Workload, rnd *xrand.Xoshiro256) Result {
	start := time.Now()

	l := orderlist.New(0)

	switch w.Pattern {
	case PatternAppend:
		for i := 1; i <= w.Inserts; i++ {
			l.PushBack(i)
		}

	case PatternPrepend:
		for i := 1; i <= w.Inserts; i++ {
			l.PushFront(i)
		}

	case PatternDensest:
		mark, _ := l.Resolve(0)
		for i := 1; i <= w.Inserts; i++ {
			l.InsertAfterElem(mark, i)
		}

	case PatternRandom:
		members := indexlist.New(0)
		for i := 1; i <= w.Inserts; i++ {
			mark, _ := l.Resolve(members.At(rnd.Intn(members.Len())))
			l.InsertAfterElem(mark, i)
			members.Add(i)
		}
	}

	return Result{
		Name:      w.Name,
		Inserts:   w.Inserts,
		Relabeled: l.Relabeled(),
		Elapsed:   time.Since(start),
	}
}

// Table renders results as a text table.
func Table(results []Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Workload", "Inserts", "Relabeled", "Rewrites/Insert", "Elapsed"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Name,
			humanize.Comma(int64(r.Inserts)),
			humanize.Comma(int64(r.Relabeled)),
			fmt.Sprintf("%.3f", float64(r.Relabeled)/float64(r.Inserts)),
			r.Elapsed.Round(time.Microsecond),
		})
	}

	return t.Render()
}
