package attr

// MergeHeights merges the height from into the height to and returns the
// merged height. Heights are either absolute (an int in 1/10pt), relative
// (a float scale factor), or callable. The result is absolute unless both
// inputs are relative.
//
// The second return value is false when from is not a valid height or when
// a callable from turned an absolute to into a non-absolute result; the
// caller chooses whether that keeps the old value or rejects the write.
func MergeHeights(from, to Value) (Value, bool) {
	if _, ok := from.Int(); ok {
		// Absolute heights win outright.
		return from, true
	}
	if scale, ok := from.Scale(); ok {
		if n, ok := to.Int(); ok {
			return Int(int(scale * float64(n))), true
		}
		if f, ok := to.Scale(); ok {
			return Scale(scale * f), true
		}
		if to.Unspecified() {
			return from, true
		}
		return Unspecified(), false
	}
	if fn, ok := from.Func(); ok {
		result := fn(to)
		// A function must never turn an absolute height into a
		// non-absolute one; the default face height stays absolute.
		if _, wasAbs := to.Int(); wasAbs {
			if _, isAbs := result.Int(); !isAbs {
				return Unspecified(), false
			}
		}
		return result, true
	}
	return Unspecified(), false
}
