package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cassis-finance/cassis/internal/engine"
	"github.com/cassis-finance/cassis/internal/model"
	"github.com/cassis-finance/cassis/internal/service"
)

// RenderResult renders one classification result for terminal output.
func RenderResult(res model.Result) string {
	var b strings.Builder

	if res.SuggestedTag != "" {
		b.WriteString(FormatSuccess(fmt.Sprintf("tag: %s (%.0f%%)", res.SuggestedTag, res.Confidence*100)))
	} else {
		b.WriteString(FormatWarning(fmt.Sprintf("no tag suggested (%.0f%%)", res.Confidence*100)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s (%.0f%%)\n",
		SubtleStyle.Render("expense type:"),
		BoldStyle.Render(string(res.ExpenseType)),
		res.ExpenseTypeConfidence*100))

	if res.Explanation != "" {
		b.WriteString(SubtleStyle.Render(res.Explanation) + "\n")
	}

	if len(res.ContributingFactors) > 0 {
		b.WriteString(SubtleStyle.Render("factors: "+strings.Join(res.ContributingFactors, ", ")) + "\n")
	}
	if len(res.AlternativeTags) > 0 {
		b.WriteString(SubtleStyle.Render("alternatives: "+strings.Join(res.AlternativeTags, ", ")) + "\n")
	}
	if res.CachedResult {
		b.WriteString(SubtleStyle.Render("(cached)") + "\n")
	}

	return b.String()
}

// RenderStatistics renders classifier statistics as a labeled list.
func RenderStatistics(stats service.Statistics) string {
	rows := []struct {
		label string
		value string
	}{
		{"processed", fmt.Sprintf("%d", stats.TotalProcessed)},
		{"cache hits", fmt.Sprintf("%d (%.0f%%)", stats.CacheHits, stats.CacheHitRate*100)},
		{"high confidence", fmt.Sprintf("%d (%.0f%%)", stats.HighConfidence, stats.HighConfidenceRate*100)},
		{"fast path", fmt.Sprintf("%d", stats.FastPathHits)},
		{"research calls", fmt.Sprintf("%d (%d failed)", stats.ResearchCalls, stats.ResearchFailures)},
		{"patterns", fmt.Sprintf("%d", stats.PatternCount)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", SubtleStyle.Render(row.label+":"), row.value))
	}
	return RenderBox(ChartIcon+" Statistics", strings.TrimRight(b.String(), "\n"))
}

// RenderBatchSummary renders the outcome of a batch run.
func RenderBatchSummary(summary *engine.Summary) string {
	content := strings.Join([]string{
		fmt.Sprintf("%s %d", SubtleStyle.Render("transactions:"), summary.TotalTransactions),
		FormatSuccess(fmt.Sprintf("%d high confidence", summary.HighConfidence)),
		FormatWarning(fmt.Sprintf("%d need review", summary.NeedsReview)),
		FormatError(fmt.Sprintf("%d untagged", summary.Untagged)),
		SubtleStyle.Render(fmt.Sprintf("%d chunks in %s", summary.Chunks, summary.ProcessingTime.Round(time.Millisecond))),
	}, "\n")

	return RenderBox(TagIcon+" Batch complete", content)
}

// RenderPatternTable renders pattern entries grouped by category.
func RenderPatternTable(byCategory map[string][]model.PatternEntry) string {
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(TitleStyle.Render(cat) + "\n")
		for _, entry := range byCategory[cat] {
			b.WriteString(fmt.Sprintf("  %-24s %-16s %-8s %.2f\n",
				entry.Pattern, entry.Tag, entry.ExpenseType, entry.Confidence))
		}
	}
	return b.String()
}
