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

type JobDAO interface {
	Save(ctx context.Context, job Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]Job, error)
	ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]Job, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	ListOpen(ctx context.Context, offset, limit int) ([]Job, error)
	IncrApplicationsCount(ctx context.Context, id int64, delta int64) error
	SetApplicationsCount(ctx context.Context, counts map[int64]int64) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (d *GORMJobDAO) Save(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime = now
	job.Utime = now
	// 公司和投递数不允许通过保存修改
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "state", "city",
			"salary_min", "salary_max", "work_mode", "type", "level",
			"status", "utime",
		}),
	}).Create(&job).Error
	return job.Id, err
}

func (d *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var job Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	return job, err
}

func (d *GORMJobDAO) FindByIds(ctx context.Context, ids []int64) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("company_id = ?", companyID).
		Offset(offset).Limit(limit).Order("utime DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Job{}).Where("company_id = ?", companyID).Count(&cnt).Error
	return cnt, err
}

func (d *GORMJobDAO) ListOpen(ctx context.Context, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.db.WithContext(ctx).Where("status = ?", StatusOpen).
		Offset(offset).Limit(limit).Order("ctime DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) IncrApplicationsCount(ctx context.Context, id int64, delta int64) error {
	return d.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"applications_count": gorm.Expr("applications_count + ?", delta),
		"utime":              time.Now().UnixMilli(),
	}).Error
}

// SetApplicationsCount 不在 counts 里面的职位都重置为 0
func (d *GORMJobDAO) SetApplicationsCount(ctx context.Context, counts map[int64]int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]int64, 0, len(counts))
		for id, cnt := range counts {
			ids = append(ids, id)
			err := tx.Model(&Job{}).Where("id = ?", id).
				Update("applications_count", cnt).Error
			if err != nil {
				return err
			}
		}
		reset := tx.Model(&Job{}).Where("applications_count <> 0")
		if len(ids) > 0 {
			reset = reset.Where("id NOT IN ?", ids)
		}
		return reset.Update("applications_count", 0).Error
	})
}
