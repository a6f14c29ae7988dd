package oracle

import (
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/ousticrame/quoridor/internal/codec"
	"github.com/ousticrame/quoridor/internal/game"
)

// CachedProber wraps another prober with a persistent BadgerDB cache.
// Probing a full-size oracle seeks into files much larger than RAM; a
// consumer that replays the same lines (analysis, the website front end)
// keeps its hot positions local instead.
type CachedProber struct {
	inner Prober
	board game.Board
	codec *codec.Codec
	db    *badger.DB

	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// NewCachedProber opens (or creates) the cache database at dir around the
// given prober.
func NewCachedProber(inner Prober, b game.Board, dir string) (*CachedProber, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &CachedProber{inner: inner, board: b, codec: codec.New(b), db: db}, nil
}

// Probe returns the cached move when present and falls through to the
// wrapped prober otherwise, storing the answer.
func (cp *CachedProber) Probe(pos *game.Position) (game.Move, error) {
	layer := cp.board.Layer(pos)
	key := cp.key(pos, layer)

	var move game.Move
	found := false
	err := cp.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 2 {
				move = game.Move(binary.LittleEndian.Uint16(val))
				found = true
			}
			return nil
		})
	})
	if err != nil {
		return game.NoMove, err
	}
	if found {
		cp.count(true)
		return move, nil
	}
	cp.count(false)

	move, err = cp.inner.Probe(pos)
	if err != nil {
		return game.NoMove, err
	}

	var val [2]byte
	binary.LittleEndian.PutUint16(val[:], uint16(move))
	err = cp.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val[:])
	})
	if err != nil {
		return game.NoMove, err
	}
	return move, nil
}

// HitRate returns the cache hit rate as a percentage.
func (cp *CachedProber) HitRate() float64 {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	total := cp.hits + cp.misses
	if total == 0 {
		return 0
	}
	return float64(cp.hits) / float64(total) * 100
}

// Close closes the cache database.
func (cp *CachedProber) Close() error {
	return cp.db.Close()
}

// key derives the cache key from the layer and the in-layer index, which
// together identify a position uniquely.
func (cp *CachedProber) key(pos *game.Position, layer int) []byte {
	key := make([]byte, 9)
	key[0] = byte(layer)
	binary.LittleEndian.PutUint64(key[1:], cp.codec.Encode(pos, layer))
	return key
}

func (cp *CachedProber) count(hit bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	if hit {
		cp.hits++
	} else {
		cp.misses++
	}
}
