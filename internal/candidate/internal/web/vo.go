package web

import "github.com/ecodeclub/xpecial/internal/candidate/internal/domain"

type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Headline string `json:"headline,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Utime    int64  `json:"utime,omitempty"`
}

func newProfile(c domain.Candidate) Profile {
	return Profile{
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Headline: c.Headline,
		State:    c.State,
		City:     c.City,
		Utime:    c.Utime,
	}
}

func (p Profile) toDomain(uid int64) domain.Candidate {
	return domain.Candidate{
		ID:       uid,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Headline: p.Headline,
		State:    p.State,
		City:     p.City,
	}
}
