package web

import "github.com/ecodeclub/xpecial/internal/job/internal/domain"

type SaveJobReq struct {
	Job Job `json:"job"`
}

type Page struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type Job struct {
	ID                int64  `json:"id,omitempty"`
	CompanyID         int64  `json:"companyId,omitempty"`
	CompanyName       string `json:"companyName,omitempty"`
	Title             string `json:"title,omitempty"`
	Description       string `json:"description,omitempty"`
	State             string `json:"state,omitempty"`
	City              string `json:"city,omitempty"`
	SalaryMin         int64  `json:"salaryMin,omitempty"`
	SalaryMax         int64  `json:"salaryMax,omitempty"`
	WorkMode          string `json:"workMode,omitempty"`
	Type              string `json:"type,omitempty"`
	Level             string `json:"level,omitempty"`
	Status            string `json:"status,omitempty"`
	ApplicationsCount int64  `json:"applicationsCount"`
	Ctime             int64  `json:"ctime,omitempty"`
	Utime             int64  `json:"utime,omitempty"`
}

type JobList struct {
	Total int64 `json:"total"`
	List  []Job `json:"list"`
}

func newJob(j domain.Job) Job {
	return Job{
		ID:                j.ID,
		CompanyID:         j.CompanyID,
		Title:             j.Title,
		Description:       j.Description,
		State:             j.State,
		City:              j.City,
		SalaryMin:         j.SalaryMin,
		SalaryMax:         j.SalaryMax,
		WorkMode:          j.WorkMode,
		Type:              j.Type,
		Level:             j.Level,
		Status:            j.Status.String(),
		ApplicationsCount: j.ApplicationsCount,
		Ctime:             j.Ctime,
		Utime:             j.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		State:       j.State,
		City:        j.City,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		WorkMode:    j.WorkMode,
		Type:        j.Type,
		Level:       j.Level,
		Status:      domain.ParseStatus(j.Status),
	}
}
