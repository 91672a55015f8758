package anchor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzok/sgd-annotator/internal/catalog"
	"github.com/tzok/sgd-annotator/internal/genome"
)

func TestCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anchors.db")
	chromosomes := []catalog.Chromosome{
		{Chromosome: genome.ChrI, Seq: "AUGC"},
		{Chromosome: genome.ChrII, Seq: "GGCC"},
	}
	key := Key("AUGCGGCC", chromosomes)

	c, err := OpenCache(path)
	require.NoError(t, err)

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	table := Table{genome.ChrI: {Offset: 0, Length: 4}, genome.ChrII: {Offset: 4, Length: 4}}
	require.NoError(t, c.Put(key, table))
	require.NoError(t, c.Close())

	c, err = OpenCache(path)
	require.NoError(t, err)
	defer c.Close()

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, table, got)

	_, ok, err = c.Get(Key("AUGCGGCU", chromosomes))
	require.NoError(t, err)
	assert.False(t, ok, "a different genome is a different key")
}

func TestKey(t *testing.T) {
	a := []catalog.Chromosome{{Chromosome: genome.ChrI, Seq: "AU"}, {Chromosome: genome.ChrII, Seq: "GC"}}
	b := []catalog.Chromosome{{Chromosome: genome.ChrI, Seq: "AUG"}, {Chromosome: genome.ChrII, Seq: "C"}}
	assert.NotEqual(t, Key("AUGC", a), Key("AUGC", b))
	assert.Equal(t, Key("AUGC", a), Key("AUGC", a))
}
