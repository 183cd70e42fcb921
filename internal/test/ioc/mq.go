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

package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// defaultTopics 配置里面没有 kafka.topics 的时候使用
var defaultTopics = map[string]int{
	"application_events": 1,
	"candidate_events":   1,
}

// InitMQ 测试统一用内存实现，topic 和线上配置保持一致
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		qq := memory.NewMQ()
		for name, partitions := range topics() {
			if err := qq.CreateTopic(context.Background(), name, partitions); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}

func topics() map[string]int {
	var cfg []struct {
		Name       string `yaml:"name"`
		Partitions int    `yaml:"partitions"`
	}
	if err := econf.UnmarshalKey("kafka.topics", &cfg); err != nil || len(cfg) == 0 {
		return defaultTopics
	}
	res := make(map[string]int, len(cfg))
	for _, t := range cfg {
		res[t.Name] = max(t.Partitions, 1)
	}
	return res
}
