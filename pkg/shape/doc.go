// Package shape classifies values handed to the GridFS upload layer.
//
// The classifiers are pure and never panic, whatever the input:
// - IsPromise: non-nil Thenable (native Promise or any type with Then)
// - IsHandleOrPromise: promise, or an open StreamHandle such as *gridfs.Bucket
// - IsCallable: ordinary function, generator functions excluded
// - IsGeneratorFunction: GeneratorFunc of any element type
// - IsCallableOrGeneratorFunction: union of the two above
// - IsGenerator: a started Generator
// - Classify: the most specific Kind
//
// Generator functions are an explicit type rather than something inferred
// from a function's shape, so the distinction between a callback and a
// coroutine entry point is always visible to the caller.
//
// Promise and Result give the package a native thenable and the settlement
// value it carries.
package shape
