package serializer

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/erraggy/oaspath/oaserrors"
)

// problems accumulates every data type problem found in one serialization
// pass so that they can be returned together.
type problems struct {
	path   string
	list   []oaserrors.DataTypeProblem
	merged *multierror.Error
}

func newProblems(path string) *problems {
	return &problems{path: path}
}

// add records one problem.
func (p *problems) add(problem oaserrors.DataTypeProblem) {
	p.list = append(p.list, problem)
	p.merged = multierror.Append(p.merged, problem)
}

// absorb records the problems carried by a formatter error. It returns
// err unchanged when err is not a *oaserrors.WrongDataTypeError.
func (p *problems) absorb(err error) error {
	var wrongType *oaserrors.WrongDataTypeError
	if !errors.As(err, &wrongType) {
		return err
	}
	for _, problem := range wrongType.Problems {
		p.add(problem)
	}
	return nil
}

// empty reports whether no problem has been recorded.
func (p *problems) empty() bool {
	return len(p.list) == 0
}

// err returns nil when no problem was recorded, or one
// *oaserrors.WrongDataTypeError holding all of them in discovery order.
func (p *problems) err() error {
	if p.empty() {
		return nil
	}
	return &oaserrors.WrongDataTypeError{
		Path:     p.path,
		Problems: p.list,
		Cause:    p.merged.ErrorOrNil(),
	}
}
