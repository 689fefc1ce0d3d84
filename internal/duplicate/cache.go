package duplicate

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry is a cached embedding keyed by issue ID. The entry is valid
// only while contentHash matches the hash of the issue's current search
// text; a content change invalidates it implicitly on lookup.
type cacheEntry struct {
	embedding   []float32
	contentHash string
	createdAt   time.Time
}

// embeddingCache is a bounded, concurrency-safe embedding store. The LRU
// underneath handles both eviction and locking, so parallel automation
// evaluations can share one detector instance.
type embeddingCache struct {
	entries *lru.Cache[string, cacheEntry]
}

func newEmbeddingCache(size int) (*embeddingCache, error) {
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &embeddingCache{entries: entries}, nil
}

// get returns the cached embedding only when both the issue ID and the
// content hash match.
func (c *embeddingCache) get(issueID, contentHash string) ([]float32, bool) {
	entry, ok := c.entries.Get(issueID)
	if !ok || entry.contentHash != contentHash {
		return nil, false
	}
	return entry.embedding, true
}

func (c *embeddingCache) set(issueID, contentHash string, embedding []float32) {
	c.entries.Add(issueID, cacheEntry{
		embedding:   embedding,
		contentHash: contentHash,
		createdAt:   time.Now(),
	})
}

func (c *embeddingCache) invalidate(issueID string) {
	c.entries.Remove(issueID)
}

func (c *embeddingCache) clear() {
	c.entries.Purge()
}

func (c *embeddingCache) len() int {
	return c.entries.Len()
}

// hashContent fingerprints the search text an embedding was built from.
func hashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
