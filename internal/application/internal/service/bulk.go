package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "github.com/ecodeclub/xpecial/internal/application"

type bulkMetrics struct {
	tracer   trace.Tracer
	items    metric.Int64Counter
	duration metric.Float64Histogram
}

func newBulkMetrics() *bulkMetrics {
	meter := otel.GetMeterProvider().Meter(instrumentationName)
	m := &bulkMetrics{tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
	var err error
	m.items, err = meter.Int64Counter("application.bulk_status.items",
		metric.WithDescription("批量修改投递状态处理的条数"),
		metric.WithUnit("{item}"))
	if err != nil {
		m.items, _ = meter.Int64Counter("application.bulk_status.items")
	}
	m.duration, err = meter.Float64Histogram("application.bulk_status.duration",
		metric.WithDescription("批量修改投递状态的耗时"),
		metric.WithUnit("ms"))
	if err != nil {
		m.duration, _ = meter.Float64Histogram("application.bulk_status.duration")
	}
	return m
}

func (m *bulkMetrics) record(ctx context.Context, res domain.BulkResult, cost time.Duration) {
	status := attribute.String("status", res.Status.String())
	m.items.Add(ctx, int64(res.Succeeded), metric.WithAttributes(status, attribute.Bool("ok", true)))
	m.items.Add(ctx, int64(res.Failed), metric.WithAttributes(status, attribute.Bool("ok", false)))
	m.duration.Record(ctx, float64(cost.Milliseconds()), metric.WithAttributes(status))
}

func (s *service) BulkSetStatus(ctx context.Context, companyID int64,
	ids []int64, status domain.Status) (domain.BulkResult, error) {
	if !status.Valid() {
		return domain.BulkResult{}, ErrInvalidStatus
	}
	ids = domain.UniqueIDs(ids)
	if len(ids) == 0 {
		return domain.BulkResult{}, ErrEmptySelection
	}

	res := domain.BulkResult{
		BatchID: uuid.NewString(),
		Status:  status,
		Items:   make([]domain.BulkItem, len(ids)),
	}
	ctx, span := s.metrics.tracer.Start(ctx, "application.BulkSetStatus",
		trace.WithAttributes(
			attribute.String("batch_id", res.BatchID),
			attribute.Int64("company_id", companyID),
			attribute.Int("size", len(ids))))
	defer span.End()
	start := time.Now()

	// 每一条写自己的下标，不需要加锁
	changed := make([]int64, len(ids))
	var eg errgroup.Group
	eg.SetLimit(s.bulkConcurrency)
	for i, id := range ids {
		eg.Go(func() error {
			app, ok, err := s.setStatus(ctx, companyID, id, status)
			if err != nil {
				res.Items[i] = domain.BulkItem{ID: id, Reason: bulkReason(err)}
				return nil
			}
			if ok {
				changed[i] = app.CompanyID
			}
			res.Items[i] = domain.BulkItem{ID: id, OK: true}
			return nil
		})
	}
	_ = eg.Wait()

	invalidated := make(map[int64]struct{}, 1)
	for idx, item := range res.Items {
		if !item.OK {
			res.Failed++
			continue
		}
		res.Succeeded++
		cid := changed[idx]
		if cid == 0 {
			continue
		}
		if _, ok := invalidated[cid]; ok {
			continue
		}
		invalidated[cid] = struct{}{}
		s.repo.InvalidateList(ctx, cid)
	}

	s.metrics.record(ctx, res, time.Since(start))
	span.SetAttributes(attribute.Int("succeeded", res.Succeeded), attribute.Int("failed", res.Failed))
	if res.PartialFailure() {
		failed := make([]int64, 0, res.Failed)
		for _, item := range res.Items {
			if !item.OK {
				failed = append(failed, item.ID)
			}
		}
		s.logger.Warn("批量修改投递状态部分失败",
			elog.String("batchID", res.BatchID),
			elog.Int64("companyID", companyID),
			elog.Any("failed", failed))
	}
	return res, nil
}

// bulkReason 只把业务错误透出给前端
func bulkReason(err error) string {
	switch {
	case errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrPermissionDenied):
		return err.Error()
	default:
		return "系统错误"
	}
}
