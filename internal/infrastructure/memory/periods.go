package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

var _ repository.PeriodRepository = (*Store)(nil)

// StartPeriod congela el stock publicado como apertura del período.
func (s *Store) StartPeriod(ctx context.Context, period string, at time.Time) (*entity.Period, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.periods[period]; exists || (s.currentPeriod != "" && period <= s.currentPeriod) {
		return s.current(), false, nil
	}
	snap := &periodSnapshot{period: entity.Period{Period: period, CreatedAt: at}}
	for _, st := range s.st.stock {
		o := &entity.PeriodOpening{Period: period, ItemID: st.ItemID, Location: st.Location, Quantity: st.Quantity}
		if it, ok := s.st.items[st.ItemID]; ok {
			o.Identity = it.ItemIdentity
		}
		snap.openings = append(snap.openings, o)
	}
	sort.Slice(snap.openings, func(i, j int) bool {
		a, b := snap.openings[i], snap.openings[j]
		if a.ItemID != b.ItemID {
			return a.ItemID < b.ItemID
		}
		return a.Location < b.Location
	})
	s.periods[period] = snap
	s.currentPeriod = period
	return s.current(), true, nil
}

func (s *Store) CurrentPeriod(context.Context) (*entity.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current(), nil
}

func (s *Store) PeriodOpenings(_ context.Context, period string) ([]*entity.PeriodOpening, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.periods[period]
	if !ok {
		return nil, nil
	}
	list := make([]*entity.PeriodOpening, 0, len(snap.openings))
	for _, o := range snap.openings {
		cp := *o
		list = append(list, &cp)
	}
	return list, nil
}

func (s *Store) current() *entity.Period {
	snap, ok := s.periods[s.currentPeriod]
	if !ok {
		return nil
	}
	p := snap.period
	return &p
}
