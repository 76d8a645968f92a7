package Trees

import (
	"fmt"
	"io"
)

type branch int

const (
	atRoot branch = iota
	onLeft
	onRight
)

// Draw writes the tree sideways, the greatest key on top, one node per line as
// "key ^parentKey h=height". Returns the first write error.
//
//	       /------+ 30 ^25 h=0
//	|------+ 25 ^<nil> h=1
//	       \------+ 15 ^25 h=0
func (u *Tree[K, V]) Draw(w io.Writer) error {
	return u.draw(w, u.root, "", atRoot)
}

func (u *Tree[K, V]) draw(w io.Writer, i index, prefix string, br branch) error {
	if i == 0 {
		return nil
	}
	n := u.a.at(i)
	if n.r != 0 {
		t := "       "
		if br == onLeft {
			t = "|      "
		}
		if err := u.draw(w, n.r, prefix+t, onRight); err != nil {
			return err
		}
	}
	edge := "|------+ "
	switch br {
	case onLeft:
		edge = "\\------+ "
	case onRight:
		edge = "/------+ "
	}
	var up interface{}
	if n.p != 0 {
		up = u.a.at(n.p).k
	}
	if _, err := fmt.Fprintf(w, "%s%s%v ^%v h=%d\n", prefix, edge, n.k, up, n.h); err != nil {
		return err
	}
	if n.l != 0 {
		t := "       "
		if br == onRight {
			t = "|      "
		}
		return u.draw(w, n.l, prefix+t, onLeft)
	}
	return nil
}
