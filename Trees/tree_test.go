package Trees

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
)

var rg = *rand.New(rand.NewSource(0))
var cache [2]uint

func (u *Tree[K, V]) _depth(i index, d uint) {
	cur := u.a.at(i)
	if cur.l != 0 {
		u._depth(cur.l, d+1)
	}
	if cur.r != 0 {
		u._depth(cur.r, d+1)
	}
	if cur.l == 0 && cur.r == 0 {
		cache[0]++
		cache[1] += d
	}
}

// depth is the average depth of the leaves.
func (u *Tree[K, V]) depth() float32 {
	if u.root == 0 {
		return 0
	}
	cache[0], cache[1] = 0, 0
	u._depth(u.root, 1)
	return float32(cache[1]) / float32(cache[0])
}

func heightBound(size int) int {
	return int(1.44 * math.Log2(float64(size+2)))
}

const (
	tAddN        = 40000
	tAddValRange = 80000
	tCheckEvery  = 997
)

func TestTree_Insert(t *testing.T) {
	tree := New[int, int]()
	content := make(map[int]int)
	for j := range tAddN {
		k := rg.Intn(tAddValRange)
		old, in := content[k]
		it, ok := tree.Insert(k, j)
		if ok == in {
			t.Errorf("insert of key %v reported %v, want %v", k, ok, !in)
		}
		if it.Key() != k {
			t.Errorf("insert of key %v returned position of %v", k, it.Key())
		}
		if in && it.Value() != old {
			t.Errorf("insert overwrote key %v: %v, want %v", k, it.Value(), old)
		}
		if !in {
			content[k] = j
		}
		if j%tCheckEvery == 0 {
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if h := tree.Height(); h > heightBound(tree.Size()) {
		t.Errorf("tree height is %d, bound is %d", h, heightBound(tree.Size()))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k, v := range content {
		if got, err := tree.At(k); err != nil || got != v {
			t.Errorf("tree has %v, %v at key %v, want %v", got, err, k, v)
		}
	}
	for k := range tree.Keys() {
		if _, in := content[k]; !in {
			t.Errorf("tree has non existent key %v", k)
		}
	}
}

func TestTree_Erase(t *testing.T) {
	tree := New[int, int]()
	content := make(map[int]struct{})
	if tree.Erase(0) != 0 {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i], i)
		content[a[i]] = struct{}{}
	}
	rg.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	for j, k := range a[:tAddN/2] {
		_, in := content[k]
		want := 0
		if in {
			want = 1
		}
		if got := tree.Erase(k); got != want {
			t.Errorf("erase of key %v returned %d, want %d", k, got, want)
		}
		delete(content, k)
		if tree.Contains(k) {
			t.Errorf("tree still has key %v", k)
		}
		if j%tCheckEvery == 0 {
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, k := range a {
		tree.Erase(k)
	}
	if !tree.Empty() || tree.Height() != -1 {
		t.Errorf("tree has size %d and height %d after erasing all keys", tree.Size(), tree.Height())
	}
}

func TestTree_EraseAt(t *testing.T) {
	tree := New[int, int]()
	for range tAddN / 4 {
		k := rg.Intn(tAddValRange)
		tree.Insert(k, k)
	}
	keys := slices.Collect(tree.Keys())
	// erase every other entry walking forward
	i, it := 0, tree.Begin()
	for !it.IsEnd() {
		if it.Key() != keys[i] {
			t.Fatalf("position has key %v, want %v", it.Key(), keys[i])
		}
		if i%2 == 0 {
			it = tree.EraseAt(it)
		} else {
			it.Next()
		}
		i++
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Size() != len(keys)/2 {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(keys)/2)
	}
	j := 1
	for k := range tree.Keys() {
		if k != keys[j] {
			t.Errorf("tree has key %v, want %v", k, keys[j])
		}
		j += 2
	}
	if end := tree.EraseAt(tree.End()); !end.IsEnd() || tree.Size() != len(keys)/2 {
		t.Errorf("erasing at end changed the tree")
	}
}

func TestTree_Mixed(t *testing.T) {
	tree := New[int, int]()
	content := make(map[int]int)
	for j := range tAddN {
		k := rg.Intn(tAddValRange / 8)
		if rg.Intn(3) == 0 {
			delete(content, k)
			tree.Erase(k)
		} else {
			*tree.Entry(k) += j
			content[k] += j
		}
		if tree.Size() != len(content) {
			t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
		}
		if j%tCheckEvery == 0 {
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
	for k, v := range tree.All() {
		if content[k] != v {
			t.Errorf("tree has %v at key %v, want %v", v, k, content[k])
		}
	}
	if !slices.IsSorted(slices.Collect(tree.Keys())) {
		t.Error("keys are not in order")
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
}

func TestTree_ArenaReuse(t *testing.T) {
	tree := New[int, string]()
	for i := range 3 * chunkLen {
		tree.Insert(i, "")
	}
	used := tree.a.used
	for i := range 2 * chunkLen {
		tree.Erase(i)
	}
	for i := range 2 * chunkLen {
		tree.Insert(-i-1, "")
	}
	if tree.a.used != used {
		t.Errorf("arena grew to %d slots, want %d", tree.a.used, used)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	p, _ := tree.Ref(3*chunkLen - 1)
	for i := range 4 * chunkLen {
		tree.Insert(1000+i, "")
	}
	*p = "kept"
	if v, _ := tree.At(3*chunkLen - 1); v != "kept" {
		t.Errorf("value pointer moved while the arena grew")
	}
	chunks, used := len(tree.a.chunks), tree.a.used
	tree.Clear()
	if tree.Size() != 0 || len(tree.a.chunks) != chunks {
		t.Errorf("cleared tree has size %d and %d chunks, want %d", tree.Size(), len(tree.a.chunks), chunks)
	}
	for i := range int(used) - 1 {
		tree.Insert(i, "")
	}
	if tree.a.used != used || tree.a.free != 0 {
		t.Errorf("refilled tree used %d slots with free head %d, want %d and 0", tree.a.used, tree.a.free, used)
	}
	tree.Insert(-1, "one")
	if v, err := tree.At(-1); err != nil || v != "one" {
		t.Errorf("tree has %q, %v at key -1 after Clear", v, err)
	}
}

func TestTree_Lookup(t *testing.T) {
	tree := From(Pair[string, int]{"b", 2}, Pair[string, int]{"a", 1}, Pair[string, int]{"b", 3})
	if tree.Size() != 2 {
		t.Errorf("tree size is %d, want %d", tree.Size(), 2)
	}
	if v, _ := tree.At("b"); v != 2 {
		t.Errorf("first occurrence of key b is %d, want %d", v, 2)
	}
	if _, err := tree.At("z"); !errors.Is(err, Go_Containers.ErrKeyNotFound) {
		t.Errorf("At of missing key returned %v", err)
	}
	if _, err := tree.Ref("z"); !errors.Is(err, Go_Containers.ErrKeyNotFound) {
		t.Errorf("Ref of missing key returned %v", err)
	}
	if p := tree.Entry("c"); *p != 0 || tree.Size() != 3 {
		t.Errorf("Entry inserted %d, size %d", *p, tree.Size())
	}
	if _, err := MaxValue(New[int, int]()); !errors.Is(err, Go_Containers.ErrEmpty) {
		t.Errorf("MaxValue of empty tree returned %v", err)
	}
	if m, _ := MaxValue(tree); m != 2 {
		t.Errorf("max value is %d, want %d", m, 2)
	}
	if s := Sum(tree); s != 3 {
		t.Errorf("sum is %d, want %d", s, 3)
	}
}

type rev int

func (a rev) LessThan(b rev) bool { return a > b }
func (a rev) Equals(b rev) bool   { return a == b }

func TestTree_Orderings(t *testing.T) {
	o := NewOrdered[rev, struct{}]()
	for _, k := range []rev{3, 1, 4, 1, 5, 9, 2, 6} {
		o.Insert(k, struct{}{})
	}
	if got := slices.Collect(o.Keys()); !slices.Equal(got, []rev{9, 6, 5, 4, 3, 2, 1}) {
		t.Errorf("keys are %v", got)
	}
	if err := o.Check(); err != nil {
		t.Error(err)
	}
	l := NewFunc[string, int](func(a, b string) int { return len(a) - len(b) })
	l.Insert("ccc", 0)
	l.Insert("a", 0)
	if _, ok := l.Insert("b", 1); ok {
		t.Error("keys of equal length were both inserted")
	}
}
