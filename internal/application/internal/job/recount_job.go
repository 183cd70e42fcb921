package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/xpecial/internal/application/internal/repository"
	"github.com/ecodeclub/xpecial/internal/job"
)

// RecountApplicationsJob 用投递表重新统计每个职位的投递数，修正消费事件时的偏差
type RecountApplicationsJob struct {
	repo    repository.ApplicationRepository
	jobSvc  job.Service
	timeout time.Duration
}

func NewRecountApplicationsJob(repo repository.ApplicationRepository, jobSvc job.Service, timeout time.Duration) *RecountApplicationsJob {
	return &RecountApplicationsJob{repo: repo, jobSvc: jobSvc, timeout: timeout}
}

func (r *RecountApplicationsJob) Name() string {
	return "RecountApplicationsJob"
}

func (r *RecountApplicationsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	counts, err := r.repo.CountByJob(ctx)
	if err != nil {
		return fmt.Errorf("统计职位投递数失败: %w", err)
	}
	err = r.jobSvc.SetApplicationsCount(ctx, counts)
	if err != nil {
		return fmt.Errorf("更新职位投递数失败: %w", err)
	}
	return nil
}
