// Package hashstream implements the streaming 64-bit hash mixer used to hash
// value cells and adaptive strings.
//
// The contract is fixed by the value runtime (Init/FeedU64/FeedBytes/Finish);
// the mixing algorithm itself is not: callers must only rely on determinism
// within a single process, never across processes or versions. The default
// mixer here is a rapidhash-style multiply-xor-fold construction, carried
// over in spirit from the reference implementation's streaming hasher.
package hashstream
