// Package bytestr implements a compact byte-string value type with
// small-string optimization. Strings of up to 23 bytes are stored
// inline with no heap allocation; longer strings spill to a heap
// buffer. Content is treated as opaque bytes, so multi-byte UTF-8
// sequences are never split or normalized.
package bytestr
