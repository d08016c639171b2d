package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"projection-engine/models"
	"projection-engine/projection"
)

// Key layout. Lineups rotate daily; game logs are refreshed by the
// ingest job after each start.
const (
	lineupKeyFormat = "lineup:%s:%s" // date, team code
	logsKeyFormat   = "logs:%s"      // cleaned pitcher name

	defaultTTL = 24 * time.Hour
)

// Client reads and writes the projection inputs kept in Redis. It
// implements projection.LogProvider and projection.LineupProvider.
type Client struct {
	rdb *redis.Client
	ttl time.Duration

	// now is swapped in tests to pin the lineup date key.
	now func() time.Time
}

func New(addr, password string, db int) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: defaultTTL,
		now: time.Now,
	}
}

// NewFromClient wraps an existing Redis client, used by tests.
func NewFromClient(rdb *redis.Client) *Client {
	return &Client{rdb: rdb, ttl: defaultTTL, now: time.Now}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// innings accepts both representations the ingest sources produce:
// a JSON number already in decimal innings, or the baseball "6.1"
// thirds notation as a string.
type innings float64

func (ip *innings) UnmarshalJSON(data []byte) error {
	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*ip = innings(asNumber)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("innings value %s: %w", data, err)
	}
	*ip = innings(models.ParseInnings(asString))
	return nil
}

type gameLogRecord struct {
	Strikeouts     int     `json:"strikeouts"`
	InningsPitched innings `json:"innings_pitched"`
}

type pitcherRecord struct {
	Name string          `json:"name"`
	Hand string          `json:"hand"`
	Team string          `json:"team"`
	Logs []gameLogRecord `json:"game_logs"`
}

// PitcherProfile loads a pitcher's cached profile and game logs. A
// cache miss returns projection.ErrNotFound.
func (c *Client) PitcherProfile(ctx context.Context, name string) (*models.PitcherProfile, error) {
	key := fmt.Sprintf(logsKeyFormat, projection.CleanName(name))
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("pitcher %s: %w", name, projection.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	var record pitcherRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}

	profile := &models.PitcherProfile{
		Name: record.Name,
		Hand: record.Hand,
		Team: record.Team,
		Logs: make([]models.GameLog, 0, len(record.Logs)),
	}
	if profile.Name == "" {
		profile.Name = name
	}
	for _, g := range record.Logs {
		profile.Logs = append(profile.Logs, models.GameLog{
			Strikeouts:     g.Strikeouts,
			InningsPitched: float64(g.InningsPitched),
		})
	}
	return profile, nil
}

// StorePitcherProfile writes a pitcher profile back to the cache.
func (c *Client) StorePitcherProfile(ctx context.Context, profile *models.PitcherProfile) error {
	record := pitcherRecord{
		Name: profile.Name,
		Hand: profile.Hand,
		Team: profile.Team,
		Logs: make([]gameLogRecord, 0, len(profile.Logs)),
	}
	for _, g := range profile.Logs {
		record.Logs = append(record.Logs, gameLogRecord{
			Strikeouts:     g.Strikeouts,
			InningsPitched: innings(g.InningsPitched),
		})
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding profile for %s: %w", profile.Name, err)
	}
	key := fmt.Sprintf(logsKeyFormat, projection.CleanName(profile.Name))
	return c.rdb.Set(ctx, key, payload, c.ttl).Err()
}

type lineupEntry struct {
	Name string `json:"name"`
	Hand string `json:"hand"`
}

// Lineup loads today's posted lineup for a team. A missing key returns
// projection.ErrNotFound, which the engine reports as no lineup posted.
func (c *Client) Lineup(ctx context.Context, team string) (models.Lineup, error) {
	key := c.lineupKey(team)
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("lineup %s: %w", team, projection.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	var entries []lineupEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}

	lineup := make(models.Lineup, 0, len(entries))
	for _, e := range entries {
		lineup = append(lineup, models.Batter{Name: e.Name, Hand: e.Hand})
	}
	return lineup, nil
}

// StoreLineup writes a team's lineup for today.
func (c *Client) StoreLineup(ctx context.Context, team string, lineup models.Lineup) error {
	entries := make([]lineupEntry, 0, len(lineup))
	for _, b := range lineup {
		entries = append(entries, lineupEntry{Name: b.Name, Hand: b.Hand})
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding lineup for %s: %w", team, err)
	}
	return c.rdb.Set(ctx, c.lineupKey(team), payload, c.ttl).Err()
}

func (c *Client) lineupKey(team string) string {
	code := team
	if normalized, ok := models.NormalizeTeam(team); ok {
		code = normalized
	}
	return fmt.Sprintf(lineupKeyFormat, c.now().Format("20060102"), code)
}
