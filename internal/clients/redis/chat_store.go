package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/caretrack/caretrack-backend/internal/logger"
	"github.com/caretrack/caretrack-backend/internal/types"
)

// ChatStore is the per-user per-day document store for chat transcripts and
// their summaries. A day's document holds either a conversation array or,
// once summarized, a summary field; never both.
type ChatStore interface {
	AppendMessage(ctx context.Context, userID int64, msg types.ChatMessage) error
	GetTodaysHistory(ctx context.Context, userID int64, limit int) ([]types.ChatMessage, error)
	GetFullConversation(ctx context.Context, userID int64, date string) ([]types.ChatMessage, error)
	SaveSummary(ctx context.Context, userID int64, date string, summary string) error
	GetPastSummaries(ctx context.Context, userID int64, days int) ([]types.DailySummary, error)
	Close() error
}

type chatStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewChatStore(log *logger.Logger) (ChatStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &chatStore{
		log: log.With("service", "RedisChatStore"),
		rdb: rdb,
	}, nil
}

func dailyKey(userID int64, date string) string {
	return fmt.Sprintf("user:%d:daily:%s", userID, date)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *chatStore) getDocument(ctx context.Context, key string) (*types.DailyDocument, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return &types.DailyDocument{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var doc types.DailyDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode daily document %s: %w", key, err)
	}
	return &doc, nil
}

func (s *chatStore) setDocument(ctx context.Context, key string, doc *types.DailyDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, 0).Err()
}

// AppendMessage is a read-modify-write; concurrent appends for the same
// user/day rely on the store's per-key atomicity only.
func (s *chatStore) AppendMessage(ctx context.Context, userID int64, msg types.ChatMessage) error {
	key := dailyKey(userID, today())
	doc, err := s.getDocument(ctx, key)
	if err != nil {
		return err
	}
	doc.Conversation = append(doc.Conversation, msg)
	return s.setDocument(ctx, key, doc)
}

func (s *chatStore) GetTodaysHistory(ctx context.Context, userID int64, limit int) ([]types.ChatMessage, error) {
	doc, err := s.getDocument(ctx, dailyKey(userID, today()))
	if err != nil {
		return nil, err
	}
	conv := doc.Conversation
	if limit > 0 && len(conv) > limit {
		conv = conv[len(conv)-limit:]
	}
	return conv, nil
}

func (s *chatStore) GetFullConversation(ctx context.Context, userID int64, date string) ([]types.ChatMessage, error) {
	doc, err := s.getDocument(ctx, dailyKey(userID, date))
	if err != nil {
		return nil, err
	}
	return doc.Conversation, nil
}

// SaveSummary replaces the whole daily document. The raw transcript is
// discarded; this is the storage-minimization behaviour the summarizer
// depends on.
func (s *chatStore) SaveSummary(ctx context.Context, userID int64, date string, summary string) error {
	now := time.Now().UTC()
	doc := &types.DailyDocument{
		Summary:      &summary,
		SummarizedAt: &now,
	}
	if err := s.setDocument(ctx, dailyKey(userID, date), doc); err != nil {
		return err
	}
	s.log.Info("Replaced conversation with summary", "user_id", userID, "date", date)
	return nil
}

func (s *chatStore) GetPastSummaries(ctx context.Context, userID int64, days int) ([]types.DailySummary, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now().UTC()

	summaries := make([]types.DailySummary, 0, days)
	for i := 1; i <= days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		doc, err := s.getDocument(ctx, dailyKey(userID, date))
		if err != nil {
			s.log.Warn("Could not fetch summary", "user_id", userID, "date", date, "error", err)
			continue
		}
		if doc.Summary != nil && *doc.Summary != "" {
			summaries = append(summaries, types.DailySummary{Date: date, Summary: *doc.Summary})
		}
	}
	return summaries, nil
}

func (s *chatStore) Close() error {
	return s.rdb.Close()
}
