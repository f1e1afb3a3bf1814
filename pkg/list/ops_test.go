package list

import (
	"testing"

	"src.prelude.dev/prelude/pkg/must"
	"src.prelude.dev/prelude/pkg/tt"
)

func TestMap(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3)
	defer xs.Release()

	ys := Map(func(x int) int { return 2 * x }, xs)
	if got := ys.String(); got != "[2,4,6]" {
		t.Errorf("Map(double, xs) = %s, want [2,4,6]", got)
	}
	// The result never shares nodes with the input.
	if ys.head == xs.head {
		t.Errorf("Map shares nodes with its input")
	}
	ys.Release()

	// Mapping the identity gives an equal list.
	zs := Map(func(x int) int { return x }, xs)
	if !Eq(zs, xs) {
		t.Errorf("Map(id, xs) = %v, want %v", zs, xs)
	}
	zs.Release()

	ws := Map(func(x int) float64 { return float64(x) }, Empty[int]())
	if !Null(ws) {
		t.Errorf("Map over empty list is not empty")
	}
}

func TestFilter(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3, 4, 5, 6)
	defer xs.Release()

	even := func(x int) bool { return x%2 == 0 }
	ys := Filter(even, xs)
	if got := ys.String(); got != "[2,4,6]" {
		t.Errorf("Filter(even, xs) = %s, want [2,4,6]", got)
	}
	if Len(ys) > Len(xs) {
		t.Errorf("Filter grew the list")
	}
	ys.Release()

	all := Filter(func(int) bool { return true }, xs)
	if !Eq(all, xs) {
		t.Errorf("Filter(true, xs) = %v, want %v", all, xs)
	}
	all.Release()

	none := Filter(func(int) bool { return false }, xs)
	if !Null(none) {
		t.Errorf("Filter(false, xs) is not empty")
	}
	none.Release()
}

func TestConcat(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2)
	ys := New(3, 4)

	zs := Concat(xs, ys)
	if got := zs.String(); got != "[1,2,3,4]" {
		t.Errorf("Concat = %s, want [1,2,3,4]", got)
	}
	// The first operand is copied; the second is shared by the copy's last
	// node.
	if zs.head == xs.head {
		t.Errorf("Concat shares nodes with its first operand")
	}
	if zs.head.next.next != ys.head {
		t.Errorf("Concat does not share its second operand")
	}

	// ys stays valid after the operands are gone.
	xs.Release()
	zs.Release()
	if got := ys.String(); got != "[3,4]" {
		t.Errorf("ys = %s after releasing the concatenation, want [3,4]", got)
	}

	// Concatenating onto the empty list shares everything and copies
	// nothing.
	before := liveNodes
	ws := Concat(Empty[int](), ys)
	if liveNodes != before {
		t.Errorf("Concat(Empty(), ys) allocated %d nodes", liveNodes-before)
	}
	if ws.head != ys.head {
		t.Errorf("Concat(Empty(), ys) does not share ys")
	}
	ws.Release()
	ys.Release()
}

func TestReverse(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3)
	defer xs.Release()

	ys := Reverse(xs)
	if got := ys.String(); got != "[3,2,1]" {
		t.Errorf("Reverse = %s, want [3,2,1]", got)
	}
	if Len(ys) != Len(xs) {
		t.Errorf("Reverse changed the length")
	}

	zs := Reverse(ys)
	if !Eq(zs, xs) {
		t.Errorf("Reverse(Reverse(xs)) = %v, want %v", zs, xs)
	}
	zs.Release()
	ys.Release()

	e := Reverse(Empty[int]())
	if !Null(e) {
		t.Errorf("Reverse of empty list is not empty")
	}
}

func TestTake(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3)
	defer xs.Release()

	takeString := func(k int, xs List[int]) string {
		ys := Take(k, xs)
		defer ys.Release()
		return ys.String()
	}
	tt.Test(t, tt.Fn("Take", takeString), tt.Table{
		tt.Args(0, xs).Rets("[]"),
		tt.Args(-1, xs).Rets("[]"),
		tt.Args(1, xs).Rets("[1]"),
		tt.Args(2, xs).Rets("[1,2]"),
		tt.Args(3, xs).Rets("[1,2,3]"),
		// Counts beyond the length saturate; Take never fails.
		tt.Args(4, xs).Rets("[1,2,3]"),
		tt.Args(2, Empty[int]()).Rets("[]"),
	})

	// The taken prefix is a copy.
	ys := Take(2, xs)
	if ys.head == xs.head {
		t.Errorf("Take shares nodes with its input")
	}
	ys.Release()
}

func TestDrop(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3)
	defer xs.Release()

	dropString := func(k int, xs List[int]) string {
		ys := Drop(k, xs)
		defer ys.Release()
		return ys.String()
	}
	tt.Test(t, tt.Fn("Drop", dropString), tt.Table{
		tt.Args(0, xs).Rets("[1,2,3]"),
		tt.Args(-1, xs).Rets("[1,2,3]"),
		tt.Args(1, xs).Rets("[2,3]"),
		tt.Args(3, xs).Rets("[]"),
		// Counts beyond the length saturate; Drop never fails.
		tt.Args(4, xs).Rets("[]"),
		tt.Args(2, Empty[int]()).Rets("[]"),
	})

	// Drop allocates nothing: it returns a handle on an existing node.
	before := liveNodes
	ys := Drop(2, xs)
	if liveNodes != before {
		t.Errorf("Drop allocated %d nodes", liveNodes-before)
	}
	if ys.head != xs.head.next.next {
		t.Errorf("Drop does not share the suffix")
	}
	ys.Release()
}

func TestTakeDropRecombine(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3, 4, 5)
	defer xs.Release()

	// Taking and dropping at the same point splits the list exactly.
	for k := 0; k <= Len(xs); k++ {
		taken := Take(k, xs)
		dropped := Drop(k, xs)
		cat := Concat(taken, dropped)
		if !Eq(cat, xs) {
			t.Errorf("Take(%d) ++ Drop(%d) = %v, want %v", k, k, cat, xs)
		}
		cat.Release()
		dropped.Release()
		taken.Release()
	}
}

func TestSum(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3, 4)
	defer xs.Release()
	ys := New(0.5, 1.5)
	defer ys.Release()

	tt.Test(t, tt.Fn("Sum", Sum[int]), tt.Table{
		tt.Args(xs).Rets(10),
		tt.Args(Empty[int]()).Rets(0),
	})
	if got := Sum(ys); got != 2.0 {
		t.Errorf("Sum(ys) = %v, want 2", got)
	}
	if got := Sum(Empty[float64]()); got != 0.0 {
		t.Errorf("Sum of empty float list = %v, want 0", got)
	}
}

func TestEq(t *testing.T) {
	checkLeaks(t)
	xs := New(1, 2, 3)
	defer xs.Release()
	same := New(1, 2, 3)
	defer same.Release()
	shorter := New(1, 2)
	defer shorter.Release()
	different := New(1, 2, 4)
	defer different.Release()
	tl := must.OK1(Tail(xs))
	shared := Cons(1, tl)
	tl.Release()

	tt.Test(t, tt.Fn("Eq", Eq[int]), tt.Table{
		tt.Args(xs, xs).Rets(true),
		tt.Args(xs, same).Rets(true),
		tt.Args(xs, shared).Rets(true),
		tt.Args(xs, shorter).Rets(false),
		tt.Args(shorter, xs).Rets(false),
		tt.Args(xs, different).Rets(false),
		tt.Args(Empty[int](), Empty[int]()).Rets(true),
		tt.Args(xs, Empty[int]()).Rets(false),
	})
	shared.Release()
}

// The running example: a list of the integers 2 through 10.
func TestTypicalUsage(t *testing.T) {
	checkLeaks(t)
	xs := New(2, 3, 4, 5, 6, 7, 8, 9, 10)
	defer xs.Release()

	if got := Len(xs); got != 9 {
		t.Errorf("Len = %d, want 9", got)
	}
	if got := must.OK1(Head(xs)); got != 2 {
		t.Errorf("Head = %v, want 2", got)
	}
	if got := must.OK1(Last(xs)); got != 10 {
		t.Errorf("Last = %v, want 10", got)
	}

	taken := Take(3, xs)
	if got := taken.String(); got != "[2,3,4]" {
		t.Errorf("Take(3) = %s, want [2,3,4]", got)
	}
	taken.Release()

	dropped := Drop(3, xs)
	if got := dropped.String(); got != "[5,6,7,8,9,10]" {
		t.Errorf("Drop(3) = %s, want [5,6,7,8,9,10]", got)
	}
	dropped.Release()

	one := New(1)
	cat := Concat(one, xs)
	if got := cat.String(); got != "[1,2,3,4,5,6,7,8,9,10]" {
		t.Errorf("Concat([1], xs) = %s", got)
	}
	cat.Release()
	one.Release()

	evens := Filter(func(x int) bool { return x%2 == 0 }, xs)
	if got := evens.String(); got != "[2,4,6,8,10]" {
		t.Errorf("Filter(even) = %s, want [2,4,6,8,10]", got)
	}
	evens.Release()

	if got := Sum(xs); got != 54 {
		t.Errorf("Sum = %v, want 54", got)
	}

	floats := Map(func(x int) float64 { return float64(x) }, xs)
	if got := Sum(floats); got != 54.0 {
		t.Errorf("Sum of floats = %v, want 54", got)
	}
	floats.Release()
}
