package store

import (
	"sync"
	"testing"

	"league-postseason-service/internal/domain"
)

func result(season int) domain.SeasonResult {
	return domain.SeasonResult{Season: season}
}

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Result(2019); ok {
		t.Fatal("empty store should miss")
	}

	s.SetResult(result(2019))
	got, ok := s.Result(2019)
	if !ok || got.Season != 2019 {
		t.Fatalf("expected stored season, got %+v ok=%v", got, ok)
	}
}

func TestMemoryStoreReplacesSeason(t *testing.T) {
	s := NewMemoryStore()
	s.SetResult(domain.SeasonResult{Season: 2019})
	s.SetResult(domain.SeasonResult{Season: 2019, Standings: []domain.Standing{{Place: 1, TeamID: "a"}}})

	got, _ := s.Result(2019)
	if len(got.Standings) != 1 {
		t.Fatal("expected the newer result to replace the old one")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 season, got %d", s.Len())
	}
}

func TestMemoryStoreSeasonsSorted(t *testing.T) {
	s := NewMemoryStore()
	for _, season := range []int{2021, 2015, 2019} {
		s.SetResult(result(season))
	}

	got := s.Seasons()
	want := []int{2015, 2019, 2021}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		season := 2000 + i
		go func() {
			defer wg.Done()
			s.SetResult(result(season))
		}()
		go func() {
			defer wg.Done()
			s.Result(season)
			s.Seasons()
		}()
	}
	wg.Wait()

	if s.Len() != 20 {
		t.Fatalf("expected 20 seasons, got %d", s.Len())
	}
}
