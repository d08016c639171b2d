package cache

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"projection-engine/models"
	"projection-engine/projection"
)

func testClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	client.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return client, mr
}

func TestPitcherProfileRoundTrip(t *testing.T) {
	client, _ := testClient(t)
	ctx := context.Background()

	profile := &models.PitcherProfile{
		Name: "Gerrit Cole",
		Hand: "R",
		Team: "NYY",
		Logs: []models.GameLog{
			{Strikeouts: 7, InningsPitched: 6.0},
			{Strikeouts: 9, InningsPitched: 6.0 + 1.0/3.0},
		},
	}

	if err := client.StorePitcherProfile(ctx, profile); err != nil {
		t.Fatalf("StorePitcherProfile: %v", err)
	}

	got, err := client.PitcherProfile(ctx, "Gerrit Cole")
	if err != nil {
		t.Fatalf("PitcherProfile: %v", err)
	}
	if got.Name != "Gerrit Cole" || got.Hand != "R" || len(got.Logs) != 2 {
		t.Errorf("profile did not round-trip: %+v", got)
	}
	if got.Logs[1].Strikeouts != 9 {
		t.Errorf("log strikeouts = %d, expected 9", got.Logs[1].Strikeouts)
	}
}

func TestPitcherProfileNameNormalization(t *testing.T) {
	client, _ := testClient(t)
	ctx := context.Background()

	if err := client.StorePitcherProfile(ctx, &models.PitcherProfile{Name: "Gerrit Cole"}); err != nil {
		t.Fatalf("StorePitcherProfile: %v", err)
	}

	// Punctuation and case differences hit the same key.
	if _, err := client.PitcherProfile(ctx, "gerrit COLE"); err != nil {
		t.Errorf("case variant missed the cache: %v", err)
	}
}

func TestPitcherProfileMiss(t *testing.T) {
	client, _ := testClient(t)

	_, err := client.PitcherProfile(context.Background(), "Nobody Home")
	if !errors.Is(err, projection.ErrNotFound) {
		t.Errorf("cache miss should wrap ErrNotFound, got %v", err)
	}
}

func TestPitcherProfileThirdsNotation(t *testing.T) {
	client, mr := testClient(t)
	ctx := context.Background()

	// Ingest sources sometimes write innings as the "6.1" string form.
	payload := `{"name":"Aaron Nola","hand":"R","game_logs":[{"strikeouts":8,"innings_pitched":"6.1"}]}`
	mr.Set("logs:aaronnola", payload)

	got, err := client.PitcherProfile(ctx, "Aaron Nola")
	if err != nil {
		t.Fatalf("PitcherProfile: %v", err)
	}
	if math.Abs(got.Logs[0].InningsPitched-(6.0+1.0/3.0)) > 0.001 {
		t.Errorf("innings = %f, expected 6 1/3", got.Logs[0].InningsPitched)
	}
}

func TestLineupRoundTrip(t *testing.T) {
	client, _ := testClient(t)
	ctx := context.Background()

	lineup := models.Lineup{
		{Name: "Willy Adames", Hand: "R"},
		{Name: "Christian Yelich", Hand: "L"},
	}

	if err := client.StoreLineup(ctx, "MIL", lineup); err != nil {
		t.Fatalf("StoreLineup: %v", err)
	}

	got, err := client.Lineup(ctx, "MIL")
	if err != nil {
		t.Fatalf("Lineup: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Willy Adames" || got[1].Hand != "L" {
		t.Errorf("lineup did not round-trip: %+v", got)
	}
}

func TestLineupTeamAliases(t *testing.T) {
	client, _ := testClient(t)
	ctx := context.Background()

	if err := client.StoreLineup(ctx, "Brewers", models.Lineup{{Name: "Willy Adames", Hand: "R"}}); err != nil {
		t.Fatalf("StoreLineup: %v", err)
	}

	// Stored under a nickname, read back by code.
	if _, err := client.Lineup(ctx, "MIL"); err != nil {
		t.Errorf("alias lookup missed the cache: %v", err)
	}
}

func TestLineupMiss(t *testing.T) {
	client, _ := testClient(t)

	_, err := client.Lineup(context.Background(), "MIL")
	if !errors.Is(err, projection.ErrNotFound) {
		t.Errorf("missing lineup should wrap ErrNotFound, got %v", err)
	}
}

func TestLineupKeyIsDateScoped(t *testing.T) {
	client, mr := testClient(t)
	ctx := context.Background()

	if err := client.StoreLineup(ctx, "MIL", models.Lineup{{Name: "Willy Adames", Hand: "R"}}); err != nil {
		t.Fatalf("StoreLineup: %v", err)
	}
	if !mr.Exists("lineup:20250615:MIL") {
		t.Errorf("expected date-scoped key, have %v", mr.Keys())
	}
}
