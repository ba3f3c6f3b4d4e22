package taskboard

// ResultKind discriminates the two variants of Result.
type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)

// Result is the discriminated form of a call outcome. It has exactly two
// implementations, Success[T] and Failure[T]; inspect Kind or use a type
// switch before reading the payload.
//
//	switch r := taskboard.ResultOf(client.GetTask(ctx, id)).(type) {
//	case taskboard.Success[*taskboard.Task]:
//	    fmt.Println(r.Value.Name)
//	case taskboard.Failure[*taskboard.Task]:
//	    fmt.Println(r.Err.Message)
//	}
type Result[T any] interface {
	Kind() ResultKind
	result(T)
}

// Success carries the payload of a successful call.
type Success[T any] struct {
	Value T
}

func (Success[T]) Kind() ResultKind { return ResultSuccess }

func (Success[T]) result(T) {}

// Failure carries the normalized error of a failed call.
type Failure[T any] struct {
	Err *Error
}

func (Failure[T]) Kind() ResultKind { return ResultError }

func (Failure[T]) result(T) {}

// Message returns the normalized error message.
func (f Failure[T]) Message() string {
	return f.Err.Message
}

// ResultOf folds a (value, error) pair returned by a Client method into a
// Result.
func ResultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T]{Err: asError(err)}
	}
	return Success[T]{Value: value}
}
