// Package async provides small generic helpers for running computations in
// their own goroutine and waiting for the result.
//
// The central type is Future, the eventual result of a computation started
// with Async. Callers wait with Await, race it against a context with
// AwaitContext, bound it with AwaitWithTimeout, or poll with IsComplete.
// WaitAll collects the results of several futures in order.
//
// A context that is already cancelled when Async is called completes the
// Future immediately with the context error; a panicking computation
// completes it with ErrPanic.
//
// # Usage
//
//	future := async.Async(ctx, input, func(ctx context.Context, in Input) (Output, error) {
//	    return process(ctx, in)
//	})
//
//	out, err := future.AwaitContext(ctx)
//
// The validator package uses Future for its asynchronous entry points and to
// evaluate the fields of one target concurrently.
package async
