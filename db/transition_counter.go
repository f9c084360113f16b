package db

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/dasdy/spookydraw/logging"
	"github.com/dasdy/spookydraw/model"
	"github.com/schollz/progressbar/v3"
)

// TransitionCounter counts which tool gets picked right after another one.
type TransitionCounter struct {
	lastTool  model.Tool
	counts    map[model.Tool]map[model.Tool]int
	stateLock sync.RWMutex
}

func newTransitionCounter() *TransitionCounter {
	return &TransitionCounter{
		counts:    make(map[model.Tool]map[model.Tool]int),
		stateLock: sync.RWMutex{},
	}
}

// NewTransitionCounterFromDB replays the stored tool history into a new counter.
func NewTransitionCounterFromDB(storage Storage) (*TransitionCounter, error) {
	counter := newTransitionCounter()

	iterator, err := storage.ToolEventIterator()
	if err != nil {
		return nil, fmt.Errorf("could not read tool history: %w", err)
	}

	counter.initCounter(iterator)

	return counter, nil
}

func (tc *TransitionCounter) HandleToolNow(tool model.Tool, verbose bool) {
	tc.stateLock.Lock()
	defer tc.stateLock.Unlock()

	tc.handleTool(tool, verbose)
}

// GatherTransitions returns switches away from the given tool, most frequent first.
func (tc *TransitionCounter) GatherTransitions(from model.Tool) []model.ToolTransition {
	tc.stateLock.RLock()
	defer tc.stateLock.RUnlock()

	counts := tc.counts[from]
	result := make([]model.ToolTransition, 0, len(counts))

	for to, v := range counts {
		result = append(result, model.ToolTransition{From: from, To: to, Count: v})
	}

	sortTransitions(result)

	return result
}

// AllTransitions returns every recorded switch, most frequent first.
func (tc *TransitionCounter) AllTransitions() []model.ToolTransition {
	tc.stateLock.RLock()
	defer tc.stateLock.RUnlock()

	result := make([]model.ToolTransition, 0)

	for from, counts := range tc.counts {
		for to, v := range counts {
			result = append(result, model.ToolTransition{From: from, To: to, Count: v})
		}
	}

	sortTransitions(result)

	return result
}

func sortTransitions(items []model.ToolTransition) {
	slices.SortFunc(items, func(a, b model.ToolTransition) int {
		return cmp.Or(
			-cmp.Compare(a.Count, b.Count),
			cmp.Compare(a.From, b.From),
			cmp.Compare(a.To, b.To),
		)
	})
}

func (tc *TransitionCounter) initCounter(items iter.Seq[model.ToolEvent]) {
	tc.stateLock.Lock()
	defer tc.stateLock.Unlock()

	ctx := logging.PackageCtx("db")
	bar := progressbar.Default(-1, "Scanning tool history...")
	count := 0

	for item := range items {
		if err := bar.Add(1); err != nil {
			slog.ErrorContext(ctx, "could not update progress bar", "error", err)
		}

		tc.handleTool(item.Tool, false)
		count++
	}

	if err := bar.Finish(); err != nil {
		slog.ErrorContext(ctx, "could not finish progress bar", "error", err)
	}

	slog.DebugContext(ctx, "Tool history replayed", "events", count)
}

func (tc *TransitionCounter) handleTool(tool model.Tool, verbose bool) {
	// picking the same tool again is not a switch
	if tc.lastTool != "" && tc.lastTool != tool {
		if _, exists := tc.counts[tc.lastTool]; !exists {
			tc.counts[tc.lastTool] = make(map[model.Tool]int)
		}

		if verbose {
			slog.Info("tool switch",
				"current", tool,
				"previous", tc.lastTool)
		}

		tc.counts[tc.lastTool][tool]++
	}

	tc.lastTool = tool
}
