package list

import (
	"fmt"
	"strings"
)

// String renders xs as "[e1,e2,...,ek]", with elements formatted by
// fmt.Fprint and no trailing comma. The empty list renders as "[]".
func (xs List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := xs.head; e != nil; e = e.next {
		if e != xs.head {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
