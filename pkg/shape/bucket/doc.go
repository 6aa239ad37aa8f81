// Package bucket resolves the storage option of the upload layer, which may
// be a ready GridFS bucket, a database to open one on, or a promise of
// either, into a shape.StreamHandle.
package bucket
