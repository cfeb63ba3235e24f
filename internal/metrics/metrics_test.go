package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("leaguesite", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("leaguesite", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("leaguesite"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("leaguesite"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("leaguesite"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("leaguesite")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("leaguesite", 5*time.Second)
	rec.RecordRateLimit("leaguesite", 0)

	if got := rec.RateLimitHits("leaguesite"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("leaguesite"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksHTTPRequests(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest("GET", "/seasons/:season/standings", 200, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/seasons/:season/standings", 200, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/seasons/:season/standings", 404, time.Millisecond)

	stats := rec.HTTPStats()
	if stats["GET /seasons/:season/standings 200"] != 2 {
		t.Fatalf("unexpected stats %v", stats)
	}
	if stats["GET /seasons/:season/standings 404"] != 1 {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("leaguesite", time.Millisecond, nil)
	rec.RecordRateLimit("leaguesite", time.Second)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordResolveCycle(time.Millisecond, nil)

	if got := rec.Snapshot("leaguesite"); got.Calls != 0 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if rec.HTTPStats() != nil {
		t.Fatal("expected nil stats from a nil recorder")
	}
}

func TestRecorderUnknownProviderSnapshot(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("never-seen"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
