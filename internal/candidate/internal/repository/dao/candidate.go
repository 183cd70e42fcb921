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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CandidateDAO interface {
	Upsert(ctx context.Context, c Candidate) error
	FindById(ctx context.Context, uid int64) (Candidate, error)
	FindByIds(ctx context.Context, uids []int64) ([]Candidate, error)
}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) CandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (d *GORMCandidateDAO) Upsert(ctx context.Context, c Candidate) error {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "headline", "state", "city", "utime",
		}),
	}).Create(&c).Error
}

func (d *GORMCandidateDAO) FindById(ctx context.Context, uid int64) (Candidate, error) {
	var c Candidate
	err := d.db.WithContext(ctx).Where("id = ?", uid).First(&c).Error
	return c, err
}

func (d *GORMCandidateDAO) FindByIds(ctx context.Context, uids []int64) ([]Candidate, error) {
	var res []Candidate
	err := d.db.WithContext(ctx).Where("id IN ?", uids).Find(&res).Error
	return res, err
}

type Candidate struct {
	// 就是 uid，不自增
	Id       int64  `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"type:varchar(256);not null"`
	Email    string `gorm:"type:varchar(256);not null"`
	Phone    string `gorm:"type:varchar(32)"`
	Headline string `gorm:"type:varchar(512)"`
	State    string `gorm:"type:varchar(64)"`
	City     string `gorm:"type:varchar(128)"`
	Ctime    int64
	Utime    int64
}
