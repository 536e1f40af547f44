// Package async runs work in the background and sequences the results as
// futures, so a multi-step flow reads as a straight line:
//
//	attempt := async.Async(ctx, req, deliver)
//	outcome := async.Then(ctx, attempt, settle)
//	res, err := outcome.Await()
package async
