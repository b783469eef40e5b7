package service

// ResultKind discriminates the three outcomes of an admin action.
type ResultKind int

const (
	// KindOk carries a value.
	KindOk ResultKind = iota
	// KindRedirect carries a target path; used when no valid session is
	// present on a page flow.
	KindRedirect
	// KindErr carries an error reason.
	KindErr
)

// ActionResult is the tagged result of a mutating operation. Exactly one
// of Value, Target, or Err is meaningful, selected by Kind; callers must
// switch on Kind rather than assume success.
type ActionResult[T any] struct {
	Kind   ResultKind
	Value  T
	Target string
	Err    error
}

// Ok wraps a successful value.
func Ok[T any](value T) ActionResult[T] {
	return ActionResult[T]{Kind: KindOk, Value: value}
}

// RedirectTo signals that the caller should be redirected.
func RedirectTo[T any](target string) ActionResult[T] {
	return ActionResult[T]{Kind: KindRedirect, Target: target}
}

// Fail wraps a failure reason.
func Fail[T any](err error) ActionResult[T] {
	return ActionResult[T]{Kind: KindErr, Err: err}
}
