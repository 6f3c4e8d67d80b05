package redis

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"terminal-quiz/internal/domain"
	"terminal-quiz/internal/record"
)

// RankingIndex mirrors each topic's leaderboard entries into a sorted set so the
// best results can be read back without sorting the whole file.
// Entries are stored as: ZADD leaderboard:{topic} {score} {position}|{leaderboard line}
// The position keeps identical lines distinct.
type RankingIndex struct {
	client *redis.Client
	ttl    time.Duration
	rnd    *rand.Rand
}

func NewRankingIndex(client *redis.Client, ttl time.Duration) *RankingIndex {
	return &RankingIndex{
		client: client,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Sync replaces topicName's set with entries in one transaction, so entries
// dropped from the file disappear from the ranking too.
func (r *RankingIndex) Sync(ctx context.Context, topicName string, entries []domain.LeaderboardEntry) error {
	key := r.key(topicName)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(entries) > 0 {
		members := make([]redis.Z, 0, len(entries))
		for i, e := range entries {
			members = append(members, member(i, e))
		}
		pipe.ZAdd(ctx, key, members...)
		if ttl := r.ttlWithJitter(); ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Top returns the entries scoring at least as high as the n-th best, highest
// score first. Entries tied with the n-th score are all included, so the result
// can be longer than n; callers apply their tie-breaks and cut. n <= 0 returns all.
func (r *RankingIndex) Top(ctx context.Context, topicName string, n int) ([]domain.LeaderboardEntry, error) {
	key := r.key(topicName)
	minScore := "-inf"
	if n > 0 {
		nth, err := r.client.ZRevRangeWithScores(ctx, key, int64(n)-1, int64(n)-1).Result()
		if err != nil {
			return nil, err
		}
		if len(nth) == 1 {
			minScore = strconv.FormatFloat(nth[0].Score, 'f', -1, 64)
		}
	}
	members, err := r.client.ZRevRangeByScore(ctx, key, &redis.ZRangeBy{Min: minScore, Max: "+inf"}).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		_, line, ok := strings.Cut(m, "|")
		if !ok {
			continue
		}
		e, err := record.ParseLeaderboardEntry(line)
		if err != nil {
			// foreign member written by something else; not ours to rank
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *RankingIndex) key(topicName string) string {
	return "leaderboard:" + topicName
}

func member(position int, e domain.LeaderboardEntry) redis.Z {
	return redis.Z{
		Score:  e.Score,
		Member: strconv.Itoa(position) + "|" + record.FormatLeaderboardEntry(e),
	}
}

func (r *RankingIndex) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
