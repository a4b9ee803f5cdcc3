// services/stats_service.go
package services

import (
	"time"

	"qrmenu-backend/repository"
)

const TrendDays = 30

type DayBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type ScanStats struct {
	Today      int64 `json:"today"`
	Last7Days  int64 `json:"last7Days"`
	Last30Days int64 `json:"last30Days"`
	Total      int64 `json:"total"`

	// Fixed 30-element series, oldest day first; missing days are zero.
	Series []DayBucket `json:"series"`
	// Chart scale denominator; never below 1 so an all-zero series divides
	// cleanly.
	MaxBucket int64 `json:"maxBucket"`
}

type StatsService struct {
	Scans *repository.ScanRepository
}

func NewStatsService(repo *repository.ScanRepository) *StatsService {
	return &StatsService{Scans: repo}
}

// Summarize computes the four windowed counts and the 30-day trend series by
// filtering the append-only event set at read time. Windows are calendar
// windows anchored at local midnight: "last 7 days" means today plus the six
// days before it.
func (s *StatsService) Summarize(restID uint, now time.Time) (*ScanStats, error) {
	startToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start7 := startToday.AddDate(0, 0, -6)
	start30 := startToday.AddDate(0, 0, -(TrendDays - 1))

	today, err := s.Scans.CountSince(restID, startToday)
	if err != nil {
		return nil, err
	}
	last7, err := s.Scans.CountSince(restID, start7)
	if err != nil {
		return nil, err
	}
	last30, err := s.Scans.CountSince(restID, start30)
	if err != nil {
		return nil, err
	}
	total, err := s.Scans.CountSince(restID, time.Time{})
	if err != nil {
		return nil, err
	}

	events, err := s.Scans.FindSince(restID, start30)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int64, TrendDays)
	for i := range events {
		day := events[i].CreatedAt.In(now.Location()).Format("2006-01-02")
		perDay[day]++
	}

	series := make([]DayBucket, 0, TrendDays)
	var max int64 = 1
	for i := 0; i < TrendDays; i++ {
		day := start30.AddDate(0, 0, i).Format("2006-01-02")
		count := perDay[day]
		if count > max {
			max = count
		}
		series = append(series, DayBucket{Date: day, Count: count})
	}

	return &ScanStats{
		Today:      today,
		Last7Days:  last7,
		Last30Days: last30,
		Total:      total,
		Series:     series,
		MaxBucket:  max,
	}, nil
}
