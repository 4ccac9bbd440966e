package domain

import (
	"fmt"
	"sort"
	"time"
)

// CheckResult is the outcome of a single audit rule.
type CheckResult struct {
	Passed bool   `json:"passed"`
	Issue  string `json:"issue,omitempty"`
	Fix    string `json:"fix,omitempty"`
	Info   string `json:"info,omitempty"`
}

// AuditResult aggregates all audit rule outcomes.
type AuditResult struct {
	ChecksRun    int      `json:"checks_run"`
	ChecksPassed int      `json:"checks_passed"`
	Issues       []string `json:"issues"`
	Fixes        []string `json:"fixes"`
	Strengths    []string `json:"strengths"`
}

// maxReported caps how many issues and fixes an audit reports.
const maxReported = 3

// auditRules is the fixed rule sequence. Evaluation order determines which
// issues and fixes survive the cap.
var auditRules = []struct {
	Name  string
	Check func(videos []Video, insights InsightSummary) CheckResult
}{
	{"upload_consistency", auditUploadConsistency},
	{"engagement_rate", auditEngagementRate},
	{"title_length", auditTitleLength},
	{"momentum", auditMomentum},
}

// RunAudit evaluates every audit rule against the videos and the
// already-computed insights and merges the outcomes. Issues and fixes are
// truncated to the first 3 in rule order; strengths collect the passing
// rules' infos.
func RunAudit(videos []Video, insights InsightSummary) AuditResult {
	result := AuditResult{
		ChecksRun: len(auditRules),
		Issues:    []string{},
		Fixes:     []string{},
		Strengths: []string{},
	}

	for _, rule := range auditRules {
		check := rule.Check(videos, insights)

		if check.Passed {
			result.ChecksPassed++
			if check.Info != "" {
				result.Strengths = append(result.Strengths, check.Info)
			}
			continue
		}

		if check.Issue != "" && len(result.Issues) < maxReported {
			result.Issues = append(result.Issues, check.Issue)
		}
		if check.Fix != "" && len(result.Fixes) < maxReported {
			result.Fixes = append(result.Fixes, check.Fix)
		}
	}

	return result
}

// auditUploadConsistency checks whether uploads follow a regular cadence.
// Fails when the gap variance is high (sample std-dev above half the mean).
func auditUploadConsistency(videos []Video, _ InsightSummary) CheckResult {
	if len(videos) < 3 {
		return CheckResult{
			Issue: "Not enough upload history",
			Fix:   "Upload at least 1 video per week to build momentum",
		}
	}

	var dates []time.Time
	for _, v := range videos {
		if published, ok := publishTime(v); ok {
			dates = append(dates, published)
		}
	}
	if len(dates) < 3 {
		return CheckResult{
			Issue: "Inconsistent upload dates",
			Fix:   "Upload regularly",
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]float64, 0, len(dates)-1)
	minGap, maxGap := 0, 0
	for i := 1; i < len(dates); i++ {
		gap := int(dates[i].Sub(dates[i-1]).Hours() / 24)
		if i == 1 || gap < minGap {
			minGap = gap
		}
		if gap > maxGap {
			maxGap = gap
		}
		gaps = append(gaps, float64(gap))
	}

	avgGap := mean(gaps)
	stdGap := stdDev(gaps)

	if stdGap > avgGap*0.5 {
		return CheckResult{
			Issue: fmt.Sprintf("Inconsistent uploads (varies %d-%d days)", minGap, maxGap),
			Fix:   fmt.Sprintf("Upload every %d days consistently", int(avgGap)),
		}
	}

	return CheckResult{
		Passed: true,
		Info:   fmt.Sprintf("Uploading every %d days", int(avgGap)),
	}
}

// auditEngagementRate checks average engagement against the 2%/3% bands.
func auditEngagementRate(_ []Video, insights InsightSummary) CheckResult {
	rate := insights.AvgEngagementRate

	switch {
	case rate < 2:
		return CheckResult{
			Issue: fmt.Sprintf("Low engagement rate (%.1f%% - target is 3%%+)", rate),
			Fix:   "Add strong CTAs in first 30 seconds of videos",
		}
	case rate < 3:
		return CheckResult{
			Issue: fmt.Sprintf("Below-average engagement (%.1f%%)", rate),
			Fix:   "Ask questions to encourage comments and likes",
		}
	}

	return CheckResult{
		Passed: true,
		Info:   fmt.Sprintf("Healthy engagement: %.1f%%", rate),
	}
}

// auditTitleLength flags channels where over 40% of titles are too short
// (<30 chars) or too long (>70 chars). Short titles are checked first; when
// both thresholds are breached only the short-title failure is reported.
func auditTitleLength(videos []Video, _ InsightSummary) CheckResult {
	shortTitles, longTitles := 0, 0
	for _, v := range videos {
		switch n := len(v.Title); {
		case n < 30:
			shortTitles++
		case n > 70:
			longTitles++
		}
	}

	limit := float64(len(videos)) * 0.4

	if float64(shortTitles) > limit {
		return CheckResult{
			Issue: fmt.Sprintf("%d titles too short (<30 chars)", shortTitles),
			Fix:   "Write more descriptive titles (40-60 characters ideal)",
		}
	}
	if float64(longTitles) > limit {
		return CheckResult{
			Issue: fmt.Sprintf("%d titles too long (>70 chars)", longTitles),
			Fix:   "Shorten titles to 40-60 characters for better visibility",
		}
	}

	return CheckResult{
		Passed: true,
		Info:   "Title lengths optimized",
	}
}

// auditMomentum checks the momentum score against the 30/50 bands.
func auditMomentum(_ []Video, insights InsightSummary) CheckResult {
	momentum := insights.MomentumScore

	switch {
	case momentum < 30:
		return CheckResult{
			Issue: fmt.Sprintf("Low momentum (%d/100)", momentum),
			Fix:   "Recent videos underperforming - try new formats or topics",
		}
	case momentum < 50:
		return CheckResult{
			Issue: fmt.Sprintf("Below-average momentum (%d/100)", momentum),
			Fix:   "Experiment with trending topics in your niche",
		}
	}

	return CheckResult{
		Passed: true,
		Info:   fmt.Sprintf("Good momentum: %d/100", momentum),
	}
}
