package anchor

import (
	"crypto/sha256"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/genome"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var anchorBucket = []byte("anchors")

// Cache persists resolved tables keyed by the genome and chromosome sequences
// they were resolved from.
type Cache struct {
	db *bolt.DB
}

// cachedAnchor is the stored form of one table entry.
type cachedAnchor struct {
	Chromosome int
	Offset     int
	Length     int
}

// OpenCache opens, or creates, the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open anchor cache %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(anchorBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create anchor bucket in %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key hashes the genome and every chromosome sequence, in order.
func Key(g string, chromosomes []catalog.Chromosome) []byte {
	h := sha256.New()
	h.Write([]byte(g))
	for _, chr := range chromosomes {
		fmt.Fprintf(h, "\x00%d\x00", chr.Chromosome)
		h.Write([]byte(chr.Seq))
	}
	return h.Sum(nil)
}

// Get returns the table stored under key; ok is false on a miss.
func (c *Cache) Get(key []byte) (t Table, ok bool, err error) {
	err = c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(anchorBucket).Get(key)
		if v == nil {
			return nil
		}

		var entries []cachedAnchor
		if err := msgpack.Unmarshal(v, &entries); err != nil {
			return err
		}

		t = make(Table, len(entries))
		for _, e := range entries {
			t[genome.Chromosome(e.Chromosome)] = Anchor{Offset: e.Offset, Length: e.Length}
		}
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read anchor cache: %w", err)
	}
	return t, ok, nil
}

// Put stores t under key, replacing any previous table.
func (c *Cache) Put(key []byte, t Table) error {
	entries := make([]cachedAnchor, 0, len(t))
	for _, chr := range t.Chromosomes() {
		a := t[chr]
		entries = append(entries, cachedAnchor{Chromosome: int(chr), Offset: a.Offset, Length: a.Length})
	}

	value, err := msgpack.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode anchors: %w", err)
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(anchorBucket).Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to write anchor cache: %w", err)
	}
	return nil
}
