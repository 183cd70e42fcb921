package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/application_event.mock.go -package=appmocks ApplicationEventProducer
type ApplicationEventProducer interface {
	Produce(ctx context.Context, evt ApplicationEvent) error
}

func NewApplicationEventProducer(q mq.MQ) (ApplicationEventProducer, error) {
	p, err := mqx.NewGeneralProducer[ApplicationEvent](q, ApplicationEventTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}
