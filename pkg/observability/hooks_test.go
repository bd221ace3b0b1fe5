package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSceneHooks{}
	s.OnPlay(ctx, []string{"create"}, 0, 1)
	s.OnWait(ctx, 1, 1)
	s.OnCheckpoint(ctx, 2)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "beats")
	c.OnCacheMiss(ctx, "beats")
	c.OnCacheSet(ctx, "beats", 1024)

	tl := NoopToolHooks{}
	tl.OnToolStart(ctx, "ffmpeg", []string{"-version"})
	tl.OnToolComplete(ctx, "ffmpeg", time.Second, nil)
}

type testSceneHooks struct {
	NoopSceneHooks
	plays int
}

func (h *testSceneHooks) OnPlay(context.Context, []string, float64, float64) { h.plays++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Scene() should return NoopSceneHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Tool() should return NoopToolHooks by default")
	}

	h := &testSceneHooks{}
	SetSceneHooks(h)
	Scene().OnPlay(context.Background(), nil, 0, 1)
	if h.plays != 1 {
		t.Errorf("plays = %d, want 1", h.plays)
	}

	SetSceneHooks(nil)
	if Scene() != SceneHooks(h) {
		t.Error("nil hooks should be ignored")
	}

	Reset()
	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Reset should restore the defaults")
	}
}
