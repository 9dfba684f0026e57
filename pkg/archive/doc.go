// Package archive exports registry snapshots for offline inspection.
// A snapshot is a JSON document holding every compiled template's node
// table. Stores write snapshots to a local directory or an S3 bucket.
package archive
