package db

import (
	"fmt"

	"github.com/dasdy/spookydraw/model"
)

const (
	DefaultTopDrawings    = 5
	DefaultDailyWindow    = 30
	maxReportedTransition = 5
)

// BuildAnalytics collects the dashboard numbers. Tool usage lists every
// known tool in declaration order, including tools that were never used.
// Unknown tools found in storage are appended after the known ones.
func BuildAnalytics(storage Storage, tracker Tracker, topN, days int) (model.AnalyticsData, error) {
	var result model.AnalyticsData

	stats, err := storage.GatherStats()
	if err != nil {
		return result, fmt.Errorf("could not gather stats: %w", err)
	}

	usage, err := storage.GatherToolUsage()
	if err != nil {
		return result, fmt.Errorf("could not gather tool usage: %w", err)
	}

	top, err := storage.TopDrawings(topN)
	if err != nil {
		return result, fmt.Errorf("could not gather top drawings: %w", err)
	}

	daily, err := storage.DailyDrawings(days)
	if err != nil {
		return result, fmt.Errorf("could not gather daily drawings: %w", err)
	}

	result.Stats = stats
	result.ToolUsage = completeToolUsage(usage)
	result.TopDrawings = top
	result.DailyDrawings = daily

	if tracker != nil {
		transitions := tracker.AllTransitions()
		if len(transitions) > maxReportedTransition {
			transitions = transitions[:maxReportedTransition]
		}

		result.Transitions = transitions
	}

	return result, nil
}

func completeToolUsage(usage []model.ToolUsage) []model.ToolUsage {
	counts := make(map[model.Tool]int, len(usage))
	for _, u := range usage {
		counts[u.Tool] = u.Count
	}

	result := make([]model.ToolUsage, 0, len(usage))

	for _, tool := range model.AllTools() {
		result = append(result, model.ToolUsage{Tool: tool, Count: counts[tool]})
	}

	for _, u := range usage {
		if !u.Tool.Valid() {
			result = append(result, u)
		}
	}

	return result
}
