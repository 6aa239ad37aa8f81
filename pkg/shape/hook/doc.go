// Package hook provides callback-style per-file value producers for the
// upload layer and the Source sum type that unifies them.
//
// Built-in hooks:
// - GenerateFilename: 16 lowercase hex characters from 8 random bytes
// - ConstantValue: always reports the same value
// - Noop: reports the zero value
//
// A Source holds one of a Hook, a shape.GeneratorFunc, a started
// shape.Generator or a shape.Thenable. Wrap picks the variant from an
// arbitrary option value with the shape classifiers.
package hook
