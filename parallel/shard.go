package parallel

import (
	"sync"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/contentmap"
)

// shard is one stripe of the sharded closed/best-g structures: a single
// mutex guarding both maps for every board whose hash falls in this
// stripe. Splitting into S independent shards (default 16, see
// WithShardCount) lets workers that touch unrelated states proceed
// without contending on a single global lock.
type shard struct {
	mu     sync.Mutex
	closed *contentmap.Set
	bestG  *contentmap.BestG
}

func newShards(n int) []*shard {
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{
			closed: contentmap.NewSet(),
			bestG:  contentmap.NewBestG(),
		}
	}
	return shards
}

func shardFor(shards []*shard, b *board.Board) *shard {
	return shards[b.Hash()%uint64(len(shards))]
}
