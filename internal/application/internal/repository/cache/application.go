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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/pkg/errors"
)

var ErrPageNotFound = errors.New("列表页缓存不存在")

const (
	pageExpiration = 10 * time.Minute
	// 版本号要比列表页活得久，不然过期之后会读到旧版本号对应的列表页
	versionExpiration = 24 * time.Hour
)

//go:generate mockgen -source=./application.go -destination=../../../mocks/application_cache.mock.go -package=appmocks ApplicationCache

// ApplicationCache 缓存公司维度的列表页
// 每个公司有一个版本号，写操作只需要更新版本号，旧的列表页自然失效
type ApplicationCache interface {
	// GetPage 同时返回读到的版本号，没有命中的时候回写要用这个版本号
	GetPage(ctx context.Context, companyID int64, q domain.Query) (domain.Page, int64, error)
	// SetPage 写到 ver 对应的列表页，ver 已经失效的话写进去也不会再被读到
	SetPage(ctx context.Context, companyID, ver int64, q domain.Query, page domain.Page) error
	// Invalidate 同时让管理端（companyID = 0）的列表失效
	Invalidate(ctx context.Context, companyID int64) error
}

type applicationCache struct {
	ec ecache.Cache
}

func NewApplicationCache(ec ecache.Cache) ApplicationCache {
	return &applicationCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "application:",
		},
	}
}

func (c *applicationCache) GetPage(ctx context.Context, companyID int64, q domain.Query) (domain.Page, int64, error) {
	ver, err := c.version(ctx, companyID)
	if err != nil {
		return domain.Page{}, 0, err
	}
	val := c.ec.Get(ctx, c.pageKey(companyID, ver, q))
	if val.KeyNotFound() {
		return domain.Page{}, ver, ErrPageNotFound
	}
	if val.Err != nil {
		return domain.Page{}, ver, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.AsString()
	if err != nil {
		return domain.Page{}, ver, errors.Wrap(err, "列表页缓存格式错误")
	}
	var page domain.Page
	err = json.Unmarshal([]byte(str), &page)
	if err != nil {
		return domain.Page{}, ver, errors.Wrap(err, "反序列化列表页失败")
	}
	return page, ver, nil
}

func (c *applicationCache) SetPage(ctx context.Context, companyID, ver int64, q domain.Query, page domain.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return errors.Wrap(err, "序列化列表页失败")
	}
	return c.ec.Set(ctx, c.pageKey(companyID, ver, q), string(data), pageExpiration)
}

func (c *applicationCache) Invalidate(ctx context.Context, companyID int64) error {
	ver := time.Now().UnixNano()
	err := c.ec.Set(ctx, c.versionKey(companyID), ver, versionExpiration)
	if err != nil || companyID == 0 {
		return err
	}
	return c.ec.Set(ctx, c.versionKey(0), ver, versionExpiration)
}

func (c *applicationCache) version(ctx context.Context, companyID int64) (int64, error) {
	val := c.ec.Get(ctx, c.versionKey(companyID))
	if val.KeyNotFound() {
		return 0, nil
	}
	if val.Err != nil {
		return 0, errors.Wrap(val.Err, "查询列表版本号出错")
	}
	return val.AsInt64()
}

// 注意 Namespace 设置
func (c *applicationCache) versionKey(companyID int64) string {
	return fmt.Sprintf("list_ver:%d", companyID)
}

func (c *applicationCache) pageKey(companyID, ver int64, q domain.Query) string {
	return fmt.Sprintf("list:%d:%d:%x", companyID, ver, QueryHash(q))
}

// QueryHash 同样的筛选条件得到同样的 key
func QueryHash(q domain.Query) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%s|%d|%d|%s|%s|%d|%d",
		q.Search, q.Status, q.JobID, q.SortBy, q.SortOrder, q.Page, q.Limit))
}
