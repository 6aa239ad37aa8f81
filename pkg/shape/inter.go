package shape

import "go.mongodb.org/mongo-driver/mongo"

// Thenable is the minimal promise interoperability contract: a value that
// eventually settles and lets callers subscribe to the settlement.
type Thenable interface {
	// Then registers onSettled; err is nil when the value was fulfilled
	Then(onSettled func(value any, err error))
}

// StreamHandle is an open handle to chunked file storage.
// *gridfs.Bucket satisfies it.
type StreamHandle interface {
	// GetFilesCollection returns the collection holding file documents
	GetFilesCollection() *mongo.Collection
	// GetChunksCollection returns the collection holding file chunks
	GetChunksCollection() *mongo.Collection
}

// Resumable is the protocol of a started generator.
type Resumable interface {
	// Done reports whether the generator has finished
	Done() bool
	// Stop releases the generator; further Next calls report exhaustion
	Stop()
}

// generatorFunction tags GeneratorFunc instantiations. The method is
// unexported so only this package can produce generator functions.
type generatorFunction interface {
	startAny() Resumable
}

// generatorInstance tags started generators the same way.
type generatorInstance interface {
	Resumable
	resumeAny()
}
