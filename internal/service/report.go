package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
)

// DayScore is one scored day inside a report range.
type DayScore struct {
	Date  string
	Score engine.DailyScore
}

// ScoreReport covers a date range: every day's adherence score against the
// profile's current targets, plus range-level aggregates. Days without any
// log still score (an empty day is a bad day, not a missing one).
type ScoreReport struct {
	FromDate     string
	ToDate       string
	Days         []DayScore
	AverageScore float64
	BestDay      *DayScore
	WorstDay     *DayScore
}

func ScoreRange(db *sql.DB, cfg *engine.Config, from, to time.Time) (*ScoreReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	summary, err := SummarizeProfile(db, cfg)
	if err != nil {
		return nil, err
	}
	scorer := engine.NewDailyScorer(cfg)

	from = beginningOfDay(from)
	to = beginningOfDay(to)
	report := &ScoreReport{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}

	total := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		actuals, err := DayActuals(db, day)
		if err != nil {
			return nil, err
		}
		score := scorer.Score(actuals, summary.Targets)
		report.Days = append(report.Days, DayScore{Date: day.Format("2006-01-02"), Score: score})
		total += score.Total
	}
	if len(report.Days) > 0 {
		report.AverageScore = float64(total) / float64(len(report.Days))
		report.BestDay, report.WorstDay = extremeDays(report.Days)
	}
	return report, nil
}

func extremeDays(days []DayScore) (*DayScore, *DayScore) {
	if len(days) == 0 {
		return nil, nil
	}
	copied := make([]DayScore, len(days))
	copy(copied, days)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].Score.Total < copied[j].Score.Total
	})
	low := copied[0]
	high := copied[len(copied)-1]
	return &high, &low
}
