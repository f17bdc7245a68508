package hashstream

import "math/bits"

// Secrets mirror the odd, well-mixed constants a rapidhash-family mixer
// seeds its three lanes with. They have no meaning beyond "fixed, non-zero,
// and not obviously patterned".
const (
	secret0 uint64 = 0x2d358dccaa6c78a5
	secret1 uint64 = 0x8bb84b93962eacc9
	secret2 uint64 = 0x4b33a62ed433d4a3
	seed0   uint64 = 0xbdd89aa982704029
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// mum performs the widening multiply used to fold the final two lanes;
// both halves of the 128-bit product feed back into a, b.
func mum(a, b *uint64) {
	hi, lo := bits.Mul64(*a, *b)
	*a = lo
	*b = hi
}

// Context carries the state of one streaming hash computation. Its zero
// value is not valid; callers must call Init first.
type Context struct {
	seed, see1, see2 uint64
	buf              [6]uint64
	bufLen           int
}

// Init resets ctx to start a new hash computation.
func Init(ctx *Context) {
	ctx.seed = seed0 ^ mix(seed0^secret0, secret1)
	ctx.see1 = ctx.seed
	ctx.see2 = ctx.seed
	ctx.bufLen = 0
}

// FeedU64 folds one 64-bit word into the stream.
func FeedU64(ctx *Context, word uint64) {
	if ctx.bufLen == 6 {
		ctx.bufLen = 0
		ctx.seed = mix(ctx.buf[0]^secret0, ctx.buf[1]^ctx.seed)
		ctx.see1 = mix(ctx.buf[2]^secret1, ctx.buf[3]^ctx.see1)
		ctx.see2 = mix(ctx.buf[4]^secret2, ctx.buf[5]^ctx.see2)
	}
	ctx.buf[ctx.bufLen] = word
	ctx.bufLen++
}

// FeedBytes folds an arbitrary byte slice into the stream, packing
// up to 8 bytes per word (big-endian within each word, zero-padded tail).
func FeedBytes(ctx *Context, data []byte) {
	for len(data) > 0 {
		var v uint64
		n := len(data)
		if n > 8 {
			n = 8
		}
		for i := 0; i < n; i++ {
			v = v<<8 | uint64(data[i])
		}
		v <<= uint(8 * (8 - n))
		FeedU64(ctx, v)
		data = data[n:]
	}
}

// FeedCstr folds a NUL-free Go string into the stream the way the
// reference hasher folds a C string: 8 bytes per word, no length prefix.
func FeedCstr(ctx *Context, s string) {
	FeedBytes(ctx, []byte(s))
}

// Finish folds the remaining buffered words and returns the final digest.
// Finish may be called only once per Context; call Init again to reuse it.
func Finish(ctx *Context) uint64 {
	ctx.seed ^= ctx.see1 ^ ctx.see2

	for ctx.bufLen < 2 {
		ctx.buf[ctx.bufLen] = 0
		ctx.bufLen++
	}

	if ctx.bufLen > 2 {
		ctx.seed = mix(ctx.buf[0]^secret2, ctx.buf[1]^ctx.seed^secret1)
		if ctx.bufLen > 4 {
			ctx.seed = mix(ctx.buf[2]^secret2, ctx.buf[3]^ctx.seed)
		}
	}

	a := ctx.buf[ctx.bufLen-2] ^ secret1
	b := ctx.buf[ctx.bufLen-1] ^ ctx.seed
	mum(&a, &b)

	return mix(a^secret0, b^secret1)
}

// Bytes is a convenience one-shot hash over a byte slice.
func Bytes(data []byte) uint64 {
	var ctx Context
	Init(&ctx)
	FeedBytes(&ctx, data)
	return Finish(&ctx)
}

// String is a convenience one-shot hash over a string.
func String(s string) uint64 {
	return Bytes([]byte(s))
}

// U64 is a convenience one-shot hash over a single word, used for
// hashing trivial-payload values (bool, int, float bit patterns).
func U64(word uint64) uint64 {
	var ctx Context
	Init(&ctx)
	FeedU64(&ctx, word)
	return Finish(&ctx)
}
