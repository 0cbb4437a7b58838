package fixable

import (
	"github.com/vencik-go/libnn/errs"
)

// State is a fixation level in the UNFIXED < SOFT < HARD lattice.
type State int

const (
	// Unfixed means the cell holds no meaningful pin; Set is unrestricted.
	Unfixed State = iota
	// Soft is a breakable pin used by a computation engine to avoid
	// infinite recursion on cyclic graphs.
	Soft
	// Hard is a permanent pin; Reset becomes a no-op and Set fails.
	Hard
)

// Fixable holds one value of type T plus its fixation State.
//
// Transitions:
//   - Set requires state == Unfixed, or (state == Soft && override == true).
//   - Fix monotonically raises state to max(state, mode).
//   - Reset restores (zero value, Unfixed), unless state == Hard, in which
//     case it is a no-op.
type Fixable[T any] struct {
	value T
	state State
}

// New returns a Fixable holding the zero value of T, Unfixed.
func New[T any]() *Fixable[T] {
	return &Fixable[T]{}
}

// Fixed reports whether the cell's state is not Unfixed.
func (f *Fixable[T]) Fixed() bool {
	return f.state != Unfixed
}

// State reports the cell's current fixation level.
func (f *Fixable[T]) State() State {
	return f.state
}

// Get returns the cell's current value, whatever its fixation state. The
// caller must ensure the value was set; Get never errors and never
// triggers evaluation.
func (f *Fixable[T]) Get() T {
	return f.value
}

// Set assigns v to the cell. It fails with errs.ErrInvariant if the cell is
// Hard, or Soft with overrideSoft == false.
func (f *Fixable[T]) Set(v T, overrideSoft bool) error {
	if f.state == Hard {
		return errs.Wrapf(errs.ErrInvariant, "Fixable.Set", "cannot overwrite a HARD-fixed cell")
	}
	if f.state == Soft && !overrideSoft {
		return errs.Wrapf(errs.ErrInvariant, "Fixable.Set", "cannot overwrite a SOFT-fixed cell without override")
	}
	f.value = v

	return nil
}

// Fix raises the cell's state to max(state, mode). It never lowers the
// state and never touches the value.
func (f *Fixable[T]) Fix(mode State) {
	if mode > f.state {
		f.state = mode
	}
}

// FixValue sets v then raises the state to max(state, mode), i.e.
// Set(v, overrideSoft) followed by Fix(mode).
func (f *Fixable[T]) FixValue(v T, overrideSoft bool, mode State) error {
	if err := f.Set(v, overrideSoft); err != nil {
		return err
	}
	f.Fix(mode)

	return nil
}

// Reset restores (zero value, Unfixed) unless the cell is Hard, in which
// case it is a no-op. v, if provided via ResetTo, becomes the new value;
// Reset always uses the zero value of T.
func (f *Fixable[T]) Reset() {
	if f.state == Hard {
		return
	}
	var zero T
	f.value = zero
	f.state = Unfixed
}

// ResetTo behaves like Reset but restores v instead of the zero value of T.
func (f *Fixable[T]) ResetTo(v T) {
	if f.state == Hard {
		return
	}
	f.value = v
	f.state = Unfixed
}
