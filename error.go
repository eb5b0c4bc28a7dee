package orderlist

import "errors"

// ErrNotMember indicates an insertion mark that is not a member of the list.
var ErrNotMember = errors.New("not a member")
