package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/candidate_event.mock.go -package=candidatemocks CandidateEventProducer
type CandidateEventProducer interface {
	Produce(ctx context.Context, evt CandidateEvent) error
}

func NewCandidateEventProducer(q mq.MQ) (CandidateEventProducer, error) {
	p, err := mqx.NewGeneralProducer[CandidateEvent](q, CandidateEventTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}
