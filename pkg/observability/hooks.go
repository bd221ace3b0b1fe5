// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; the defaults do
// nothing. The CLI registers logging hooks at startup so that `--verbose`
// shows every played animation batch, wait and external tool run.
//
//	observability.SetSceneHooks(&logHooks{logger})
//
// Libraries call hooks to emit events:
//
//	observability.Scene().OnPlay(ctx, labels, start, duration)
//	observability.Tool().OnToolComplete(ctx, "ffmpeg", elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SceneHooks receives events from the scene clock.
type SceneHooks interface {
	// OnPlay records an animation batch starting at clock time at.
	OnPlay(ctx context.Context, labels []string, at, duration float64)
	// OnWait records a pause on the clock.
	OnWait(ctx context.Context, at, duration float64)
	// OnCheckpoint records a slide stop after segment index.
	OnCheckpoint(ctx context.Context, index int)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ToolHooks receives events from external tool runs (ffmpeg, rsvg-convert,
// beat detectors, the render command).
type ToolHooks interface {
	OnToolStart(ctx context.Context, tool string, args []string)
	OnToolComplete(ctx context.Context, tool string, duration time.Duration, err error)
}

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnPlay(context.Context, []string, float64, float64) {}
func (NoopSceneHooks) OnWait(context.Context, float64, float64)           {}
func (NoopSceneHooks) OnCheckpoint(context.Context, int)                  {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopToolHooks is a no-op implementation of ToolHooks.
type NoopToolHooks struct{}

func (NoopToolHooks) OnToolStart(context.Context, string, []string)                {}
func (NoopToolHooks) OnToolComplete(context.Context, string, time.Duration, error) {}

var (
	sceneHooks SceneHooks = NoopSceneHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	toolHooks  ToolHooks  = NoopToolHooks{}
	hooksMu    sync.RWMutex
)

// SetSceneHooks registers scene hooks. Nil is ignored.
func SetSceneHooks(h SceneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sceneHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetToolHooks registers external tool hooks. Nil is ignored.
func SetToolHooks(h ToolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		toolHooks = h
	}
}

// Scene returns the registered scene hooks.
func Scene() SceneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sceneHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Tool returns the registered external tool hooks.
func Tool() ToolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return toolHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sceneHooks = NoopSceneHooks{}
	cacheHooks = NoopCacheHooks{}
	toolHooks = NoopToolHooks{}
}
