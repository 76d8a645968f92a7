package Trees_test

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-containers/Trees"
)

func ExampleTree() {
	grades := Trees.New[string, float64]()
	grades.Insert("Ricardo", 2.5)
	grades.Insert("Ellen", 3.5)
	grades.Insert("Chen", 2.5)
	if _, ok := grades.Insert("Chen", 4.0); !ok {
		fmt.Println("Chen is already graded")
	}
	for name, g := range grades.All() {
		fmt.Println(name, g)
	}
	best, _ := Trees.MaxValue(grades)
	fmt.Println("best:", best, "height:", grades.Height())
	// Output:
	// Chen is already graded
	// Chen 2.5
	// Ellen 3.5
	// Ricardo 2.5
	// best: 3.5 height: 1
}

func ExampleTree_EraseAt() {
	t := Trees.From(
		Trees.Pair[int, string]{Key: 1, Value: "one"},
		Trees.Pair[int, string]{Key: 2, Value: "two"},
		Trees.Pair[int, string]{Key: 3, Value: "three"},
		Trees.Pair[int, string]{Key: 4, Value: "four"},
	)
	for it := t.Begin(); !it.IsEnd(); {
		if it.Key()%2 == 0 {
			it = t.EraseAt(it)
		} else {
			it.Next()
		}
	}
	t.PrintInorder(os.Stdout)
	// Output:
	// Key: "1",  Value: "one"
	// Key: "3",  Value: "three"
}

func ExampleTree_Draw() {
	t := Trees.New[int, struct{}]()
	for _, k := range []int{15, 20, 24, 10, 13} {
		t.Insert(k, struct{}{})
	}
	t.Draw(os.Stdout)
	// Output:
	//        /------+ 24 ^20 h=0
	// |------+ 20 ^<nil> h=2
	//        |      /------+ 15 ^13 h=0
	//        \------+ 13 ^20 h=1
	//               \------+ 10 ^13 h=0
}
