package collector

import "context"

// Result carries one collected value or the error that replaced it.
type Result[T any] struct {
	Result T
	Err    error
}

type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}
