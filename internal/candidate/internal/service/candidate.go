// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/xpecial/internal/candidate/internal/domain"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/event"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrProfileNotFound = repository.ErrProfileNotFound

//go:generate mockgen -source=./candidate.go -destination=../../mocks/candidate.mock.go -package=candidatemocks Service
type Service interface {
	Save(ctx context.Context, c domain.Candidate) error
	Profile(ctx context.Context, uid int64) (domain.Candidate, error)
	GetByIds(ctx context.Context, uids []int64) (map[int64]domain.Candidate, error)
}

type service struct {
	repo     repository.CandidateRepository
	producer event.CandidateEventProducer
	logger   *elog.Component
}

func NewService(repo repository.CandidateRepository, producer event.CandidateEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, c domain.Candidate) error {
	err := s.repo.Save(ctx, c)
	if err != nil {
		return err
	}
	// 投递记录上的快照晚一点同步问题不大
	err = s.producer.Produce(ctx, event.CandidateEvent{
		Uid:   c.ID,
		Name:  c.Name,
		Email: c.Email,
	})
	if err != nil {
		s.logger.Error("发送候选人资料变更事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", c.ID))
	}
	return nil
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Candidate, error) {
	return s.repo.FindById(ctx, uid)
}

func (s *service) GetByIds(ctx context.Context, uids []int64) (map[int64]domain.Candidate, error) {
	cs, err := s.repo.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Candidate, len(cs))
	for _, c := range cs {
		res[c.ID] = c
	}
	return res, nil
}
