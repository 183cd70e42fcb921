package domain

import (
	"math"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// FilterAll 不过滤状态
	FilterAll = "ALL"
)

type SortBy string

const (
	SortByCtime SortBy = "createdAt"
	SortByName  SortBy = "name"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Query 列表页的筛选条件
// Status 为 StatusUnknown 表示 ALL，JobID 为 0 表示 ALL
type Query struct {
	Search    string
	Status    Status
	JobID     int64
	SortBy    SortBy
	SortOrder SortOrder
	Page      int
	Limit     int
}

// Normalize 填充默认值，非法的排序字段回退到按投递时间倒序
func (q Query) Normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	if q.SortBy != SortByName {
		q.SortBy = SortByCtime
	}
	if q.SortOrder != SortOrderAsc {
		q.SortOrder = SortOrderDesc
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	// 页码太大算偏移量会溢出
	if q.Page > math.MaxInt/q.Limit {
		q.Page = math.MaxInt / q.Limit
	}
	return q
}

// Offset 溢出的时候返回 math.MaxInt
func (q Query) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// ParseStatusFilter 空串、ALL、all 都代表不过滤
func ParseStatusFilter(str string) (Status, error) {
	if str == "" || strings.EqualFold(str, FilterAll) {
		return StatusUnknown, nil
	}
	return ParseStatus(str)
}

type Page struct {
	Items      []Application
	Total      int64
	TotalPages int
	Page       int
	Limit      int
}

func NewPage(items []Application, total int64, q Query) Page {
	totalPages := 0
	if total > 0 && q.Limit > 0 {
		totalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Page{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}
