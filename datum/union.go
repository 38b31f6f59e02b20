package datum

import "github.com/wippyai/avro-datum/errors"

// Union holds the value of one branch of an Avro union together with the
// branch index.
type Union struct {
	header
	branch       Datum
	discriminant int64
}

// NewUnion creates a union holding child as branch disc, taking a reference
// on child.
func (f *Factory) NewUnion(disc int64, child Datum) (*Union, error) {
	if child == nil {
		return nil, errors.NilPointer(errors.PhaseConstruct, nil, "union branch")
	}
	return &Union{header: newHeader(f, KindUnion), discriminant: disc, branch: Incref(child)}, nil
}

func NewUnion(disc int64, child Datum) (*Union, error) {
	return DefaultFactory().NewUnion(disc, child)
}

func (u *Union) Discriminant() int64 { return u.discriminant }

// Branch returns the active branch's value without taking a reference.
func (u *Union) Branch() Datum { return u.branch }

// SetBranch switches the union to branch disc holding child.
func (u *Union) SetBranch(disc int64, child Datum) error {
	if u.destroyed() {
		return errors.NotInitialized(errors.PhaseMutate, "union")
	}
	if child == nil {
		return errors.NilPointer(errors.PhaseMutate, nil, "union branch")
	}
	old := u.branch
	u.branch = Incref(child)
	u.discriminant = disc
	Decref(old)
	return nil
}

func (u *Union) destroy() {
	Decref(u.branch)
	u.branch = nil
}
