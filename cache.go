// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered help pages are cheap to keep around for a session
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewHelpCache creates a cache for terminal-rendered help pages, so a
// page is rendered at most once per expiration window.
func NewHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

// renderedHelp returns the terminal rendering of a markdown help page,
// rendering and caching it on first use.
func renderedHelp(c *cache.Cache, name string, body string) string {
	if val, ok := c.Get(name); ok {
		return val.(string)
	}
	text := string(markdown.Render(body, 80, 2))
	c.Set(name, text, helpCacheExpiration)
	return text
}
