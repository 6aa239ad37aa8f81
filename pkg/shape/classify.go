package shape

// Kind is the most specific category a value falls into.
type Kind int

const (
	KindNone Kind = iota
	KindPromise
	KindStreamHandle
	KindGeneratorFunction
	KindCallable
	KindGenerator
)

func (k Kind) String() string {
	switch k {
	case KindPromise:
		return "promise"
	case KindStreamHandle:
		return "stream_handle"
	case KindGeneratorFunction:
		return "generator_function"
	case KindCallable:
		return "callable"
	case KindGenerator:
		return "generator"
	default:
		return "none"
	}
}

// IsPromise reports whether v is a non-nil Thenable.
func IsPromise(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(Thenable)
	return ok
}

func isStreamHandle(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(StreamHandle)
	return ok
}

// IsHandleOrPromise reports whether v is a promise or an open stream handle.
func IsHandleOrPromise(v any) bool {
	return IsPromise(v) || isStreamHandle(v)
}

// IsCallableOrGeneratorFunction reports whether v is any non-nil function,
// generator functions included.
func IsCallableOrGeneratorFunction(v any) bool {
	return isFunc(v)
}

// IsCallable reports whether v is an ordinary function.
func IsCallable(v any) bool {
	return isFunc(v) && !IsGeneratorFunction(v)
}

// IsGeneratorFunction reports whether v is a GeneratorFunc of any element type.
func IsGeneratorFunction(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(generatorFunction)
	return ok
}

// IsGenerator reports whether v is a started Generator. Other types with
// Done and Stop methods are not generators.
func IsGenerator(v any) bool {
	if IsNil(v) || isFunc(v) {
		return false
	}
	_, ok := v.(generatorInstance)
	return ok
}

// Classify returns the most specific Kind of v. Promises win over stream
// handles for values that are both.
func Classify(v any) Kind {
	switch {
	case IsPromise(v):
		return KindPromise
	case isStreamHandle(v):
		return KindStreamHandle
	case IsGeneratorFunction(v):
		return KindGeneratorFunction
	case IsCallable(v):
		return KindCallable
	case IsGenerator(v):
		return KindGenerator
	default:
		return KindNone
	}
}
