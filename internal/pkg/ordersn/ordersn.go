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

package ordersn

import (
	"fmt"
	"time"
)

// NowFunc 定义取当前时间的函数类型
type NowFunc func() time.Time

// Generator 生成人类可读订单号, 格式 CMD-<年份>-<6位零填充序号>
// 序号来自按年份递增的持久化计数器, 分配动作在创建订单的事务内完成,
// 这里只负责确定周期和拼装格式
type Generator struct {
	nowFunc NowFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(nowFunc NowFunc) *Generator {
	return &Generator{nowFunc: nowFunc}
}

// NewGenerator 创建一个Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(func() time.Time { return time.Now().UTC() })
}

// Period 当前计数周期, 即UTC年份
func (g *Generator) Period() int64 {
	return int64(g.nowFunc().Year())
}

// Format 用周期和序号拼装订单号
// 序号超过6位时自然变长, 不截断, 唯一性不受影响
func (g *Generator) Format(period, seq int64) string {
	return fmt.Sprintf("CMD-%d-%06d", period, seq)
}
