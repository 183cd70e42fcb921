package web

import "github.com/ecodeclub/xpecial/internal/company/internal/domain"

type SaveCompanyReq struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Site  string `json:"site"`
	State string `json:"state"`
	City  string `json:"city"`
}

type CompanyVO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Site  string `json:"site,omitempty"`
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
	Ctime int64  `json:"ctime"`
	Utime int64  `json:"utime"`
}

func newCompanyVO(c domain.Company) CompanyVO {
	return CompanyVO{
		ID:    c.ID,
		Name:  c.Name,
		Site:  c.Site,
		State: c.State,
		City:  c.City,
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListCompanyResp struct {
	List  []CompanyVO `json:"list"`
	Total int64       `json:"total"`
}
