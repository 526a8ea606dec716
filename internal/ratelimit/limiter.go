package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"
)

// 1キー分の固定ウィンドウ。
// countはatomic、resetTimeはウィンドウ生成時に決まり不変。
type window struct {
	count     atomic.Int64
	resetTime time.Time
}

// Limiterはキーごとの固定ウィンドウカウンタ。
// IPとusernameを同じストアで数える（元々キー空間は衝突しない前提）。
// エントリは削除しない。キーの種類が増えるほどストアは育ち続ける
// （本番ではreset超過エントリの定期掃除かLRU上限が必要）。
type Limiter struct {
	store  sync.Map // key(string) -> *window
	limit  int64
	window time.Duration
	now    func() time.Time
}

// DI
func NewLimiter(requestsPerWindow int, windowDuration time.Duration) *Limiter {
	return &Limiter{
		limit:  int64(requestsPerWindow),
		window: windowDuration,
		now:    time.Now,
	}
}

// Admitはkeyのリクエストを許可するならtrue。
//  1. 初回のキーはcount=1でエントリを作って許可
//  2. resetを過ぎていたらウィンドウごと作り直して許可（カウントは持ち越さない）
//  3. それ以外はatomicにインクリメントして、limit以内なら許可
//
// 同時リクエストでも安全：生成はLoadOrStoreで片方だけが勝ち、
// 加算はread-then-writeでなく単一のatomic加算。
// ロールオーバーの置き換えが競合した場合の正確なカウントは保証しない
// （エントリが消えないこと・少なくとも1つ許可されることだけが要件）。
func (l *Limiter) Admit(key string) bool {
	now := l.now()

	fresh := &window{resetTime: now.Add(l.window)}
	fresh.count.Store(1)

	actual, loaded := l.store.LoadOrStore(key, fresh)
	if !loaded {
		return true
	}

	w := actual.(*window)

	// ウィンドウ境界を過ぎたら丸ごと置き換え
	if now.After(w.resetTime) {
		l.store.Store(key, fresh)
		return true
	}

	return w.count.Add(1) <= l.limit
}
