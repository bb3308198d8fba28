package services

import (
	"context"
	"sort"
	"strings"

	"github.com/ElangBogopa/time-logger-sub000/internal/domain"
	"github.com/ElangBogopa/time-logger-sub000/internal/logging"
	"github.com/ElangBogopa/time-logger-sub000/internal/repository/sqlite"
	"github.com/ElangBogopa/time-logger-sub000/internal/validation"
)

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	repo           sqlite.Repository
	mapper         *domain.Mapper
	entryValidator *validation.EntryValidator
	log            *logging.Logger
}

// NewSearchService creates a new SearchService instance
func NewSearchService(repo sqlite.Repository) SearchService {
	return &searchServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		entryValidator: validation.NewEntryValidator(),
		log:            logging.Named("search"),
	}
}

// SearchEntries returns entries matching the criteria, each paired with a
// human-readable duration.
func (s *searchServiceImpl) SearchEntries(ctx context.Context, criteria SearchCriteria) ([]*EntryDetail, error) {
	var dbEntries []*sqlite.Entry
	var err error

	// Empty criteria means every entry, not just running ones.
	if criteria.TimeRange == nil && criteria.TextFilter == "" && !criteria.RunningOnly {
		dbEntries, err = s.repo.ListEntries(ctx)
	} else {
		opts := domain.SearchOptions{RunningOnly: criteria.RunningOnly}
		if criteria.TimeRange != nil {
			start := criteria.TimeRange.Start
			end := criteria.TimeRange.End
			opts.StartTime = &start
			opts.EndTime = &end
		}
		if filter := strings.TrimSpace(criteria.TextFilter); filter != "" {
			opts.Activity = &filter
		}
		if err := s.entryValidator.ValidateSearchOptions(opts); err != nil {
			return nil, err
		}
		dbEntries, err = s.repo.SearchEntries(ctx, s.mapper.SearchOptions.ToDatabase(opts))
	}
	if err != nil {
		return nil, err
	}

	details := make([]*EntryDetail, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry := s.mapper.Entry.FromDatabase(*dbEntry)
		details[i] = &EntryDetail{
			Entry:    &entry,
			Duration: CalculateDuration(entry.StartTime, entry.EndTime),
		}
	}

	s.log.Debug().
		Int("result_count", len(details)).
		Bool("running_only", criteria.RunningOnly).
		Str("text_filter", criteria.TextFilter).
		Msg("entry search completed")

	return details, nil
}

// SortEntries sorts entries according to the specified order
func (s *searchServiceImpl) SortEntries(entries []*EntryDetail, order SortOrder) []*EntryDetail {
	// Make a copy to avoid modifying the original
	sorted := make([]*EntryDetail, len(entries))
	copy(sorted, entries)

	switch order {
	case SortByOldestFirst:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Entry.StartTime.Before(sorted[j].Entry.StartTime)
		})
	case SortByActivity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Entry.Activity) < strings.ToLower(sorted[j].Entry.Activity)
		})
	case SortByDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Entry.Duration() > sorted[j].Entry.Duration()
		})
	default:
		// SortByRecentFirst is also the fallback for unknown orders.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Entry.StartTime.After(sorted[j].Entry.StartTime)
		})
	}

	return sorted
}

// GetRecentEntries returns the most recently started entries, up to limit.
func (s *searchServiceImpl) GetRecentEntries(ctx context.Context, limit int) ([]*EntryDetail, error) {
	details, err := s.SearchEntries(ctx, SearchCriteria{})
	if err != nil {
		return nil, err
	}

	sorted := s.SortEntries(details, SortByRecentFirst)

	// Apply limit
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted, nil
}
