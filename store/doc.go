// Package store persists DFAConfig records.
//
// A Codec turns a record into bytes (YAML, JSON, optionally snappy-framed);
// a Store keeps encoded records under a reference. FileStore writes one file
// per record into a directory, MemoryStore keeps the encoded bytes in a map.
package store
