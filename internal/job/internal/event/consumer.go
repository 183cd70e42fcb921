package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/job/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type handleFunc func(ctx context.Context, svc service.Service, evt ApplicationEvent) error

// ApplicationEventConsumer 根据投递事件累加职位的投递数
type ApplicationEventConsumer struct {
	handlerMap map[string]handleFunc
	consumer   mq.Consumer
	closed     atomic.Bool
	svc        service.Service
	logger     *elog.Component
}

func NewApplicationEventConsumer(svc service.Service, q mq.MQ) (*ApplicationEventConsumer, error) {
	const groupID = "job_applications_count"
	consumer, err := q.Consumer(applicationEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationEventConsumer{
		handlerMap: map[string]handleFunc{
			typeCreated: incrHandle,
		},
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	handler, ok := c.handlerMap[evt.Type]
	if !ok {
		// 状态变更之类的事件不影响投递数
		return nil
	}
	err = handler(ctx, c.svc, evt)
	if err != nil {
		c.logger.Error("更新职位投递数失败", elog.Any("application_event", evt))
	}
	return err
}

// Start ctx 取消或者 Stop 之后退出
func (c *ApplicationEventConsumer) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *ApplicationEventConsumer) run(ctx context.Context) {
	for ctx.Err() == nil && !c.closed.Load() {
		err := c.Consume(ctx)
		if err != nil && ctx.Err() == nil && !c.closed.Load() {
			c.logger.Error("同步投递事件失败", elog.FieldErr(err))
		}
	}
}

func (c *ApplicationEventConsumer) Stop(_ context.Context) error {
	c.closed.Store(true)
	return c.consumer.Close()
}

func incrHandle(ctx context.Context, svc service.Service, evt ApplicationEvent) error {
	return svc.IncrApplicationsCount(ctx, evt.JobID, 1)
}
