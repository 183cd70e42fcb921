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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateApplication 同一个候选人重复投递同一个职位
	ErrDuplicateApplication = errors.New("重复投递")
)

const mysqlDuplicateEntry uint16 = 1062

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	FindByJobAndCandidate(ctx context.Context, jid, uid int64) (Application, error)
	// FindByJobId 某个职位下的全部投递，按照投递时间倒序
	FindByJobId(ctx context.Context, jid int64) ([]Application, error)
	FindByCandidate(ctx context.Context, uid int64) ([]Application, error)
	List(ctx context.Context, cond Condition) ([]Application, error)
	Count(ctx context.Context, cond Condition) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	// UpdateCandidateSnapshot 返回受影响的行数
	UpdateCandidateSnapshot(ctx context.Context, uid int64, name, email string) (int64, error)
	CountByStatus(ctx context.Context, companyID int64) ([]StatusCount, error)
	CountByJob(ctx context.Context) ([]JobCount, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := d.db.WithContext(ctx).Create(&app).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return 0, fmt.Errorf("%w, job_id %d, candidate_id %d", ErrDuplicateApplication, app.JobID, app.CandidateID)
	}
	return app.ID, err
}

func (d *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (d *GORMApplicationDAO) FindByJobAndCandidate(ctx context.Context, jid, uid int64) (Application, error) {
	var app Application
	err := d.db.WithContext(ctx).
		Where("job_id = ? AND candidate_id = ?", jid, uid).
		First(&app).Error
	return app, err
}

func (d *GORMApplicationDAO) FindByJobId(ctx context.Context, jid int64) ([]Application, error) {
	var apps []Application
	err := d.db.WithContext(ctx).
		Where("job_id = ?", jid).
		Order("ctime DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) FindByCandidate(ctx context.Context, uid int64) ([]Application, error) {
	var apps []Application
	err := d.db.WithContext(ctx).
		Where("candidate_id = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) List(ctx context.Context, cond Condition) ([]Application, error) {
	var apps []Application
	err := d.where(d.db.WithContext(ctx), cond).
		Order(d.orderBy(cond)).
		Offset(cond.Offset).
		Limit(cond.Limit).
		Find(&apps).Error
	return apps, err
}

func (d *GORMApplicationDAO) Count(ctx context.Context, cond Condition) (int64, error) {
	var cnt int64
	err := d.where(d.db.WithContext(ctx).Model(&Application{}), cond).Count(&cnt).Error
	return cnt, err
}

func (d *GORMApplicationDAO) where(db *gorm.DB, cond Condition) *gorm.DB {
	if cond.CompanyID > 0 {
		db = db.Where("company_id = ?", cond.CompanyID)
	}
	if cond.JobID > 0 {
		db = db.Where("job_id = ?", cond.JobID)
	}
	if cond.Status > 0 {
		db = db.Where("status = ?", cond.Status)
	}
	if cond.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(cond.Search)) + "%"
		db = db.Where("(LOWER(candidate_name) LIKE ? ESCAPE '!' OR LOWER(candidate_email) LIKE ? ESCAPE '!')", like, like)
	}
	return db
}

// 搜索词按字面匹配，MySQL 字符串里的反斜杠本身要转义，所以用 ! 做转义符
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// orderBy 同值的时候按照 id 排，保证翻页不会重复也不会漏
func (d *GORMApplicationDAO) orderBy(cond Condition) string {
	dir := "ASC"
	if cond.Desc {
		dir = "DESC"
	}
	col := "ctime"
	if cond.OrderBy == OrderByName {
		col = "LOWER(candidate_name)"
	}
	return fmt.Sprintf("%s %s, id %s", col, dir, dir)
}

func (d *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMApplicationDAO) UpdateCandidateSnapshot(ctx context.Context, uid int64, name, email string) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Application{}).
		Where("candidate_id = ?", uid).
		Updates(map[string]any{
			"candidate_name":  name,
			"candidate_email": email,
			"utime":           time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMApplicationDAO) CountByStatus(ctx context.Context, companyID int64) ([]StatusCount, error) {
	var res []StatusCount
	db := d.db.WithContext(ctx).Model(&Application{})
	if companyID > 0 {
		db = db.Where("company_id = ?", companyID)
	}
	err := db.Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) CountByJob(ctx context.Context) ([]JobCount, error) {
	var res []JobCount
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("job_id, COUNT(*) AS cnt").
		Group("job_id").
		Scan(&res).Error
	return res, err
}
