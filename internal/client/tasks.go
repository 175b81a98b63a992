package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TaskInvoker dispatches a named background task. Dispatch is fire and
// forget: callers do not learn whether the worker ever picked the job up.
type TaskInvoker interface {
	Invoke(ctx context.Context, taskName string, payload TaskPayload) error
}

type TaskPayload struct {
	OrderID      string `json:"orderId"`
	DispatchID   string `json:"dispatchId"`
	DispatchedAt string `json:"dispatchedAt"`
}

type redisTaskInvoker struct {
	client      *redis.Client
	queuePrefix string
}

func NewRedisTaskInvoker(addr, queuePrefix string) TaskInvoker {
	return &redisTaskInvoker{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		queuePrefix: queuePrefix,
	}
}

func (t *redisTaskInvoker) Invoke(ctx context.Context, taskName string, payload TaskPayload) error {
	if payload.DispatchID == "" {
		payload.DispatchID = uuid.NewString()
	}
	if payload.DispatchedAt == "" {
		payload.DispatchedAt = time.Now().UTC().Format(time.RFC3339)
	}

	job, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal task payload: %w", err)
	}

	queue := fmt.Sprintf("%s:%s", t.queuePrefix, taskName)
	if err := t.client.LPush(ctx, queue, job).Err(); err != nil {
		return fmt.Errorf("push task %s: %w", taskName, err)
	}

	return nil
}
