// Package file writes exported site files to a backend.
//
// Storage has two implementations. LocalStorage writes under a base directory
// with atomic renames and rejects paths that escape it. S3Storage uploads
// objects with the AWS SDK v2 and works with any S3-compatible endpoint
// (MinIO, R2) via S3Config.Endpoint and ForcePathStyle.
//
// Backend errors are mapped to the sentinel errors in errors.go so callers can
// tell a missing bucket from a permission problem with errors.Is.
package file
