package Lists

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/stretchr/testify/require"
)

func TestList_Ends(t *testing.T) {
	for _, topo := range topologies {
		t.Run(topo.String(), func(t *testing.T) {
			l := NewList[string](topo)
			require.True(t, l.Begin().Equal(l.End()))
			require.ErrorIs(t, l.PopFront(), Go_Containers.ErrEmpty)
			require.ErrorIs(t, l.PopBack(), Go_Containers.ErrEmpty)
			_, err := l.Erase(l.End())
			require.ErrorIs(t, err, Go_Containers.ErrEmpty)

			l.PushBack("b")
			l.PushFront("a")
			l.Insert(l.End(), "c")
			_, err = l.Erase(l.End())
			require.ErrorIs(t, err, Go_Containers.ErrOutOfRange)
			require.Equal(t, []string{"a", "b", "c"}, l.Items())
			require.Equal(t, []string{"c", "b", "a"}, slices.Collect(l.Backward()))

			f, _ := l.Front()
			b, _ := l.Back()
			require.Equal(t, "a", f)
			require.Equal(t, "c", b)
			require.NoError(t, l.PopBack())
			require.NoError(t, l.PopFront())
			require.Equal(t, []string{"b"}, l.Items())
			require.Equal(t, "List\nb", l.String())
		})
	}
}

func TestList_Iterator(t *testing.T) {
	c := ListOf(1, 2, 3)
	it := c.End()
	it.Prev()
	require.Equal(t, 3, it.Value())
	it.Next()
	require.True(t, it.IsEnd())
	it.Next()
	require.True(t, it.Equal(c.Begin()))
	it.Prev()
	require.True(t, it.IsEnd())

	n := NewList[int](NullTerminated)
	n.PushBack(1)
	end := n.End()
	require.PanicsWithValue(t, Go_Containers.ErrEndIterator, func() { end.Prev() })
	require.PanicsWithValue(t, Go_Containers.ErrEndIterator, func() { end.Next() })
	require.PanicsWithValue(t, Go_Containers.ErrEndIterator, func() { end.Value() })
	require.PanicsWithValue(t, Go_Containers.ErrInvalidIterator, func() { n.Insert(c.Begin(), 0) })
	b := n.Begin()
	b.Prev()
	require.True(t, b.IsEnd())

	pos := n.Insert(n.Begin(), 0)
	pos.SetValue(-1)
	next, err := n.Erase(pos)
	require.NoError(t, err)
	require.Equal(t, 1, next.Value())
	require.Equal(t, []int{1}, n.Items())
}

func TestList_AgainstGods(t *testing.T) {
	for _, topo := range topologies {
		t.Run(topo.String(), func(t *testing.T) {
			l := NewList[int](topo)
			g := doublylinkedlist.New()
			for j := range 3000 {
				switch rg.Intn(5) {
				case 0:
					l.PushFront(j)
					g.Prepend(j)
				case 1:
					l.PushBack(j)
					g.Add(j)
				case 2:
					if err := l.PopBack(); err == nil {
						g.Remove(g.Size() - 1)
					}
				case 3:
					p := rg.Intn(l.Size() + 1)
					it := l.Begin()
					for range p {
						it.Next()
					}
					l.Insert(it, j)
					g.Insert(p, j)
				default:
					if l.Empty() {
						continue
					}
					p := rg.Intn(l.Size())
					it := l.Begin()
					for range p {
						it.Next()
					}
					_, err := l.Erase(it)
					require.NoError(t, err)
					g.Remove(p)
				}
				require.Equal(t, g.Size(), l.Size())
			}
			require.Equal(t, g.Values(), l.Values())
		})
	}
}

func TestList_Lifecycle(t *testing.T) {
	for _, topo := range topologies {
		for _, other := range topologies {
			a := NewList[int](topo)
			for i := range 4 {
				a.PushBack(i)
			}
			b := NewList[int](other)
			b.PushBack(42)
			b.Take(a)
			require.Equal(t, other, b.Topology())
			require.True(t, a.Empty())
			require.Equal(t, []int{0, 1, 2, 3}, b.Items())
			require.Equal(t, []int{3, 2, 1, 0}, slices.Collect(b.Backward()))
			b.PushBack(4)
			b.PushFront(-1)
			require.Equal(t, []int{-1, 0, 1, 2, 3, 4}, b.Items())

			a.Assign(b)
			require.Equal(t, topo, a.Topology())
			require.Equal(t, b.Items(), a.Items())
			c := a.Clone()
			c.PopFront()
			require.Equal(t, 6, a.Size())
			a.Clear()
			require.True(t, a.Empty())
			a.PushBack(1)
			require.Equal(t, []int{1}, slices.Collect(a.Backward()))
		}
	}
}
