// Copyright 2025 dotting-labs
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

	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrCompilationNotCached = errors.New("书稿不在缓存中")

type CompilationCache interface {
	Get(ctx context.Context, id int64) (domain.Compilation, error)
	Set(ctx context.Context, c domain.Compilation) error
	Delete(ctx context.Context, id int64) error
}

type CompilationECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

// NewCompilationECache 注意缓存前缀
func NewCompilationECache(ec ecache.Cache) CompilationCache {
	return &CompilationECache{
		ec: &ecache.NamespaceCache{
			Namespace: "compilation:",
			C:         ec,
		},
		expiration: time.Minute * 15,
	}
}

func (c *CompilationECache) Get(ctx context.Context, id int64) (domain.Compilation, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Compilation{}, ErrCompilationNotCached
	}
	if val.Err != nil {
		return domain.Compilation{}, errors.Wrap(val.Err, "查询书稿缓存出错")
	}
	var res domain.Compilation
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	if err != nil {
		return domain.Compilation{}, errors.Wrap(err, "反序列化书稿失败")
	}
	return res, nil
}

func (c *CompilationECache) Set(ctx context.Context, comp domain.Compilation) error {
	data, err := json.Marshal(comp)
	if err != nil {
		return errors.Wrap(err, "序列化书稿失败")
	}
	return c.ec.Set(ctx, c.key(comp.ID), string(data), c.expiration)
}

func (c *CompilationECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *CompilationECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
