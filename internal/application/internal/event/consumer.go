package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

type CandidateSyncer interface {
	SyncCandidate(ctx context.Context, c domain.Candidate) error
}

// CandidateEventConsumer 把候选人最新的姓名和邮箱同步到投递记录的快照上
type CandidateEventConsumer struct {
	consumer mq.Consumer
	closed   atomic.Bool
	syncer   CandidateSyncer
	logger   *elog.Component
}

func NewCandidateEventConsumer(q mq.MQ, syncer CandidateSyncer) (*CandidateEventConsumer, error) {
	const groupID = "application_candidate_sync"
	c, err := q.Consumer(CandidateEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &CandidateEventConsumer{
		consumer: c,
		syncer:   syncer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 取消或者 Stop 之后退出
func (c *CandidateEventConsumer) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *CandidateEventConsumer) run(ctx context.Context) {
	for ctx.Err() == nil && !c.closed.Load() {
		er := c.Consume(ctx)
		if er != nil && ctx.Err() == nil && !c.closed.Load() {
			c.logger.Error("同步候选人快照失败", elog.FieldErr(er))
		}
	}
}

func (c *CandidateEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt CandidateEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.syncer.SyncCandidate(ctx, domain.Candidate{
		ID:    evt.Uid,
		Name:  evt.Name,
		Email: evt.Email,
	})
}

func (c *CandidateEventConsumer) Stop(_ context.Context) error {
	c.closed.Store(true)
	return c.consumer.Close()
}
