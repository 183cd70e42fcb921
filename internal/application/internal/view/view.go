// Package view 把一批投递记录按照筛选、排序、分页的条件投影成列表页。
// 公司维度的列表走数据库分页，职位维度的列表是一次全部取回来之后在内存里处理，
// 两者都实现 Pager，调用方不需要知道数据是从哪里来的。
package view

import (
	"context"
	"sort"
	"strings"

	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
)

type Pager interface {
	FetchPage(ctx context.Context, q domain.Query) (domain.Page, error)
}

type Predicate func(app domain.Application) bool

// Predicates 把 Query 转换成过滤条件，ALL 对应的条件直接跳过
func Predicates(q domain.Query) []Predicate {
	res := make([]Predicate, 0, 3)
	if q.Search != "" {
		res = append(res, MatchSearch(q.Search))
	}
	if q.Status != domain.StatusUnknown {
		res = append(res, MatchStatus(q.Status))
	}
	if q.JobID > 0 {
		res = append(res, MatchJob(q.JobID))
	}
	return res
}

// MatchSearch 对候选人姓名和邮箱做大小写不敏感的子串匹配
func MatchSearch(term string) Predicate {
	term = strings.ToLower(term)
	return func(app domain.Application) bool {
		return strings.Contains(strings.ToLower(app.Candidate.Name), term) ||
			strings.Contains(strings.ToLower(app.Candidate.Email), term)
	}
}

func MatchStatus(status domain.Status) Predicate {
	return func(app domain.Application) bool {
		return app.Status == status
	}
}

func MatchJob(jobID int64) Predicate {
	return func(app domain.Application) bool {
		return app.JobID == jobID
	}
}

// Filter 不改变原有顺序
func Filter(apps []domain.Application, preds ...Predicate) []domain.Application {
	res := make([]domain.Application, 0, len(apps))
loop:
	for _, app := range apps {
		for _, pred := range preds {
			if !pred(app) {
				continue loop
			}
		}
		res = append(res, app)
	}
	return res
}

// Sort 返回排好序的新切片，相等的时候按照 id 决定先后，和数据库里的 ORDER BY 保持一致
func Sort(apps []domain.Application, by domain.SortBy, order domain.SortOrder) []domain.Application {
	res := make([]domain.Application, len(apps))
	copy(res, apps)
	less := lessFunc(by)
	sort.SliceStable(res, func(i, j int) bool {
		if order == domain.SortOrderAsc {
			return less(res[i], res[j])
		}
		return less(res[j], res[i])
	})
	return res
}

func lessFunc(by domain.SortBy) func(a, b domain.Application) bool {
	if by == domain.SortByName {
		return func(a, b domain.Application) bool {
			an, bn := strings.ToLower(a.Candidate.Name), strings.ToLower(b.Candidate.Name)
			if an != bn {
				return an < bn
			}
			return a.ID < b.ID
		}
	}
	return func(a, b domain.Application) bool {
		if a.Ctime != b.Ctime {
			return a.Ctime < b.Ctime
		}
		return a.ID < b.ID
	}
}

// Paginate 超出范围的页码返回空列表，但是 Total 和 TotalPages 依旧是准确的
func Paginate(apps []domain.Application, q domain.Query) domain.Page {
	total := len(apps)
	start := q.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + max(q.Limit, 0)
	if end > total {
		end = total
	}
	return domain.NewPage(apps[start:end], int64(total), q)
}

// MemoryPager 在已经全部取回来的记录上分页
type MemoryPager struct {
	apps []domain.Application
}

func NewMemoryPager(apps []domain.Application) *MemoryPager {
	return &MemoryPager{apps: apps}
}

func (m *MemoryPager) FetchPage(_ context.Context, q domain.Query) (domain.Page, error) {
	q = q.Normalize()
	filtered := Filter(m.apps, Predicates(q)...)
	return Paginate(Sort(filtered, q.SortBy, q.SortOrder), q), nil
}
