package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job"
)

// ListReq 列表页查询参数，GET 请求从 query 里面绑定
type ListReq struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	JobID     int64  `form:"jobId"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (r ListReq) toQuery() (domain.Query, error) {
	status, err := domain.ParseStatusFilter(r.Status)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{
		Search:    r.Search,
		Status:    status,
		JobID:     r.JobID,
		SortBy:    domain.SortBy(r.SortBy),
		SortOrder: domain.SortOrder(r.SortOrder),
		Page:      r.Page,
		Limit:     r.Limit,
	}, nil
}

type StatusReq struct {
	Status string `json:"status"`
}

type BulkStatusReq struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

type ApplyReq struct {
	JobID          int64  `json:"jobId"`
	Message        string `json:"message"`
	ContactConsent bool   `json:"contactConsent"`
}

type Candidate struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Application struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"jobId"`
	CompanyID      int64     `json:"companyId"`
	Candidate      Candidate `json:"candidate"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"statusLabel"`
	StatusColor    string    `json:"statusColor"`
	Message        string    `json:"message,omitempty"`
	ContactConsent bool      `json:"contactConsent"`
	Ctime          int64     `json:"ctime"`
	Utime          int64     `json:"utime"`
}

func newApplication(app domain.Application) Application {
	meta := app.Status.Meta()
	return Application{
		ID:        app.ID,
		JobID:     app.JobID,
		CompanyID: app.CompanyID,
		Candidate: Candidate{
			ID:    app.Candidate.ID,
			Name:  app.Candidate.Name,
			Email: app.Candidate.Email,
		},
		Status:         app.Status.String(),
		StatusLabel:    meta.Label,
		StatusColor:    meta.Color,
		Message:        app.Message,
		ContactConsent: app.ContactConsent,
		Ctime:          app.Ctime,
		Utime:          app.Utime,
	}
}

func newApplications(apps []domain.Application) []Application {
	return slice.Map(apps, func(idx int, src domain.Application) Application {
		return newApplication(src)
	})
}

type ApplicationPage struct {
	Items      []Application `json:"items"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

func newApplicationPage(p domain.Page) ApplicationPage {
	return ApplicationPage{
		Items:      newApplications(p.Items),
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Page:       p.Page,
		Limit:      p.Limit,
	}
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Count  int64  `json:"count"`
}

func newStatusCounts(cnts []domain.StatusCount) []StatusCount {
	return slice.Map(cnts, func(idx int, src domain.StatusCount) StatusCount {
		meta := src.Status.Meta()
		return StatusCount{
			Status: src.Status.String(),
			Label:  meta.Label,
			Color:  meta.Color,
			Count:  src.Count,
		}
	})
}

type BulkItem struct {
	ID     int64  `json:"id"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

type BulkResult struct {
	BatchID   string     `json:"batchId"`
	Status    string     `json:"status"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Items     []BulkItem `json:"items"`
}

func newBulkResult(res domain.BulkResult) BulkResult {
	return BulkResult{
		BatchID:   res.BatchID,
		Status:    res.Status.String(),
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
		Items: slice.Map(res.Items, func(idx int, src domain.BulkItem) BulkItem {
			return BulkItem{ID: src.ID, OK: src.OK, Reason: src.Reason}
		}),
	}
}

type Job struct {
	ID                int64  `json:"id"`
	CompanyID         int64  `json:"companyId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	State             string `json:"state"`
	City              string `json:"city"`
	SalaryMin         int64  `json:"salaryMin"`
	SalaryMax         int64  `json:"salaryMax"`
	WorkMode          string `json:"workMode"`
	Type              string `json:"type"`
	Level             string `json:"level"`
	Status            string `json:"status"`
	ApplicationsCount int64  `json:"applicationsCount"`
	Ctime             int64  `json:"ctime"`
	Utime             int64  `json:"utime"`
}

// JobDetail 职位详情，带上全部投递
type JobDetail struct {
	Job          Job           `json:"job"`
	Applications []Application `json:"applications"`
}

func newJobDetail(jb job.Job, apps []domain.Application) JobDetail {
	return JobDetail{
		Job: Job{
			ID:                jb.ID,
			CompanyID:         jb.CompanyID,
			Title:             jb.Title,
			Description:       jb.Description,
			State:             jb.State,
			City:              jb.City,
			SalaryMin:         jb.SalaryMin,
			SalaryMax:         jb.SalaryMax,
			WorkMode:          jb.WorkMode,
			Type:              jb.Type,
			Level:             jb.Level,
			Status:            jb.Status.String(),
			ApplicationsCount: jb.ApplicationsCount,
			Ctime:             jb.Ctime,
			Utime:             jb.Utime,
		},
		Applications: newApplications(apps),
	}
}
