package mutation

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPut(t *testing.T) {
	t.Parallel()

	t.Run("empty put", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		p := NewPut([]byte("Basho"))
		req.Equal([]byte("Basho"), p.Row())
		req.Equal(0, p.Len())
		req.False(p.Has([]byte("t"), []byte("old pond")))
		req.Empty(p.Columns())

		_, err := p.Get([]byte("t"), []byte("old pond"))
		req.True(errors.Is(err, ErrColumnNotFound))
		req.Equal("column not found: t:old pond", err.Error())
	})

	t.Run("columns keep insertion order", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		p := NewPut([]byte("Basho")).
			AddString("t", "old pond", "frog").
			AddString("a", "name", "Matsuo").
			AddString("t", "new pond", "")

		req.Equal(3, p.Len())
		req.Equal([]Column{
			{Family: []byte("t"), Qualifier: []byte("old pond")},
			{Family: []byte("a"), Qualifier: []byte("name")},
			{Family: []byte("t"), Qualifier: []byte("new pond")},
		}, p.Columns())
	})

	t.Run("first write wins on get", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		p := NewPut([]byte("Basho")).
			AddString("t", "old pond", "first").
			AddString("t", "old pond", "second")

		got, err := p.Get([]byte("t"), []byte("old pond"))
		req.NoError(err)
		req.Equal("first", string(got))
		req.Len(p.Columns(), 2)

		cells := p.Cells()
		req.Len(cells, 2)
		req.Equal("first", string(cells[0].Value))
		req.Equal("second", string(cells[1].Value))
		req.Equal("t:old pond", cells[1].Column.String())
	})

	t.Run("family and qualifier must both match", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		p := NewPut([]byte("Basho")).AddString("t", "old pond", "frog")
		req.True(p.Has([]byte("t"), []byte("old pond")))
		req.False(p.Has([]byte("t"), []byte("old")))
		req.False(p.Has([]byte("title"), []byte("old pond")))
	})

	t.Run("added data is copied", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		value := []byte("frog")
		p := NewPut([]byte("Basho")).Add([]byte("t"), []byte("old pond"), value)
		value[0] = 'F'

		got, err := p.Get([]byte("t"), []byte("old pond"))
		req.NoError(err)
		req.Equal("frog", string(got))
	})
}

func TestColumn_String(t *testing.T) {
	c := Column{Family: []byte("t"), Qualifier: []byte("old pond")}
	require.Equal(t, "t:old pond", c.String())
}
