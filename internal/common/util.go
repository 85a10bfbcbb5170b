package common

// WipeByteArray overwrites the contents of b with zeros. Used to clear raw
// key file contents once they are decoded. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
