package searcher

import (
	"fmt"
	"math/bits"
	"sync"

	"tictactoe/game"
)

// Key addresses the memo table: the packed position followed by the player bit
type Key uint32

// Size of the key space, 2^19
const NumKeys = 1 << (2*game.Cells + 1)

func NewKey(pos game.Position, player game.Player) Key {
	return Key(uint32(pos)<<1 | player.Bit())
}

func (k Key) Position() game.Position {
	return game.Position(k >> 1)
}

func (k Key) Player() game.Player {
	if k&1 == 1 {
		return game.First
	}
	return game.Second
}

// Memo stores computed outcomes. Entries are written at most once and only
// removed by Clear.
type Memo interface {
	Get(key Key) (outcome game.Outcome, ok bool)
	Put(key Key, outcome game.Outcome)
	Len() int
	Clear()
	// Each calls fn for every stored entry, in no particular order
	Each(fn func(Key, game.Outcome))
}

func mustBeTerminal(outcome game.Outcome) {
	if !outcome.Terminal() {
		panic(fmt.Sprintf("cannot memoize non-terminal outcome %v", outcome))
	}
}

// denseMemo is a fixed table over the whole key space with a presence bitset
type denseMemo struct {
	outcomes []game.Outcome
	filled   []uint64
	size     int
}

func NewDenseMemo() Memo {
	return &denseMemo{
		outcomes: make([]game.Outcome, NumKeys),
		filled:   make([]uint64, NumKeys/64),
	}
}

func (d *denseMemo) has(key Key) bool {
	return d.filled[key/64]&(1<<(key%64)) != 0
}

func (d *denseMemo) Get(key Key) (game.Outcome, bool) {
	if !d.has(key) {
		return game.InProgress, false
	}
	return d.outcomes[key], true
}

func (d *denseMemo) Put(key Key, outcome game.Outcome) {
	mustBeTerminal(outcome)
	if d.has(key) {
		return
	}
	d.outcomes[key] = outcome
	d.filled[key/64] |= 1 << (key % 64)
	d.size++
}

func (d *denseMemo) Len() int {
	return d.size
}

func (d *denseMemo) Clear() {
	clear(d.outcomes)
	clear(d.filled)
	d.size = 0
}

func (d *denseMemo) Each(fn func(Key, game.Outcome)) {
	for i, word := range d.filled {
		for word != 0 {
			key := Key(i*64 + bits.TrailingZeros64(word))
			fn(key, d.outcomes[key])
			word &= word - 1
		}
	}
}

// mapMemo grows with the number of stored keys
type mapMemo struct {
	outcomes map[Key]game.Outcome
}

func NewMapMemo() Memo {
	return &mapMemo{outcomes: make(map[Key]game.Outcome)}
}

func (m *mapMemo) Get(key Key) (game.Outcome, bool) {
	outcome, ok := m.outcomes[key]
	return outcome, ok
}

func (m *mapMemo) Put(key Key, outcome game.Outcome) {
	mustBeTerminal(outcome)
	if _, ok := m.outcomes[key]; ok {
		return
	}
	m.outcomes[key] = outcome
}

func (m *mapMemo) Len() int {
	return len(m.outcomes)
}

func (m *mapMemo) Clear() {
	clear(m.outcomes)
}

func (m *mapMemo) Each(fn func(Key, game.Outcome)) {
	for key, outcome := range m.outcomes {
		fn(key, outcome)
	}
}

// lockedMemo serializes access to another memo so it can be shared between goroutines
type lockedMemo struct {
	mu    sync.RWMutex
	inner Memo
}

func NewLockedMemo(inner Memo) Memo {
	if locked, ok := inner.(*lockedMemo); ok {
		return locked
	}
	return &lockedMemo{inner: inner}
}

func (l *lockedMemo) Get(key Key) (game.Outcome, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.Get(key)
}

func (l *lockedMemo) Put(key Key, outcome game.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Put(key, outcome)
}

func (l *lockedMemo) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inner.Len()
}

func (l *lockedMemo) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Clear()
}

func (l *lockedMemo) Each(fn func(Key, game.Outcome)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.inner.Each(fn)
}
