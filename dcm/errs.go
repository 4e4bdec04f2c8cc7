package dcm

import "errors"

var (
	ErrTag       = errors.New("bad tag")
	ErrNoPlan    = errors.New("no plan")
	ErrBadFormat = errors.New("bad format")
	ErrSequence  = errors.New("not a sequence")
)
