package database

import (
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/xpecial/internal/pkg/database"

	spanKey  = "xpecial:tracing:span"
	startKey = "xpecial:tracing:start"

	// 列表查询的 SQL 很长，span 里面只保留前面一段
	maxStatementLen = 1024
)

// GormTracingPlugin 给每一条 SQL 开一个 span，同时记录耗时
type GormTracingPlugin struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

func NewGormTracingPlugin() *GormTracingPlugin {
	meter := otel.GetMeterProvider().Meter(instrumentationName)
	duration, err := meter.Float64Histogram("db.client.operation.duration",
		metric.WithDescription("SQL 执行耗时"),
		metric.WithUnit("ms"))
	if err != nil {
		duration, _ = meter.Float64Histogram("db.client.operation.duration")
	}
	return &GormTracingPlugin{
		tracer:   otel.GetTracerProvider().Tracer(instrumentationName),
		duration: duration,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "xpecial:tracing"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{op: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
		{op: "ROW", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
	}
	for _, h := range hooks {
		name := strings.ToLower(h.op)
		if err := h.before("xpecial:before_"+name, p.before(h.op)); err != nil {
			return err
		}
		if err := h.after("xpecial:after_"+name, p.after(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context, spanName(db, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
		db.InstanceSet(startKey, time.Now())
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.table", tableName(db)),
		}
		p.recordDuration(db, attrs)
		span.SetAttributes(attrs...)
		span.SetAttributes(
			attribute.String("db.statement", truncate(db.Statement.SQL.String())),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		// 找不到数据是正常的业务分支
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func (p *GormTracingPlugin) recordDuration(db *gorm.DB, attrs []attribute.KeyValue) {
	val, ok := db.InstanceGet(startKey)
	if !ok {
		return
	}
	start, ok := val.(time.Time)
	if !ok {
		return
	}
	p.duration.Record(db.Statement.Context,
		float64(time.Since(start).Microseconds())/1000,
		metric.WithAttributes(attrs...))
}

func spanName(db *gorm.DB, op string) string {
	table := tableName(db)
	if table == "" {
		return "SQL " + op
	}
	return table + " " + op
}

func tableName(db *gorm.DB) string {
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return db.Statement.Table
}

func truncate(sql string) string {
	if len(sql) <= maxStatementLen {
		return sql
	}
	return sql[:maxStatementLen] + "..."
}
