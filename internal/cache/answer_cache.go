package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"mammacheck/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnswerCache checkpoints each completed step's answers so the final
// assessment can span every step of a session. The engine itself resets its
// answers whenever a new step starts.
type AnswerCache interface {
	SetStep(ctx context.Context, sessionID, stepID string, answers model.AnswerMap) error
	GetStep(ctx context.Context, sessionID, stepID string) (model.AnswerMap, error)
	GetAll(ctx context.Context, sessionID string, stepIDs []string) (model.AnswerMap, error)
	Clear(ctx context.Context, sessionID string, stepIDs []string) error
}

type answerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnswerCache creates a new answer checkpoint cache
func NewAnswerCache(client *redis.Client) AnswerCache {
	return &answerCache{
		client: client,
		ttl:    6 * time.Hour,
	}
}

func answerKey(sessionID, stepID string) string {
	return fmt.Sprintf("answers:%s:%s", sessionID, stepID)
}

func (c *answerCache) SetStep(ctx context.Context, sessionID, stepID string, answers model.AnswerMap) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, answerKey(sessionID, stepID), data, c.ttl).Err()
}

func (c *answerCache) GetStep(ctx context.Context, sessionID, stepID string) (model.AnswerMap, error) {
	data, err := c.client.Get(ctx, answerKey(sessionID, stepID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var answers model.AnswerMap
	if err := json.Unmarshal([]byte(data), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (c *answerCache) GetAll(ctx context.Context, sessionID string, stepIDs []string) (model.AnswerMap, error) {
	merged := make(model.AnswerMap)
	for _, stepID := range stepIDs {
		answers, err := c.GetStep(ctx, sessionID, stepID)
		if err != nil {
			return nil, err
		}
		for k, v := range answers {
			merged[k] = v
		}
	}
	return merged, nil
}

func (c *answerCache) Clear(ctx context.Context, sessionID string, stepIDs []string) error {
	keys := make([]string, 0, len(stepIDs))
	for _, stepID := range stepIDs {
		keys = append(keys, answerKey(sessionID, stepID))
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
