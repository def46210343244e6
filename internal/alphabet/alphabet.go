// Package alphabet provides the symbol sources used to build patterns and
// filler text.
package alphabet

// Alphabet draws one random symbol per call. Implementations are not safe
// for concurrent use; give every goroutine its own.
type Alphabet[S any] interface {
	Letter() S
}

// Func adapts a plain function to Alphabet.
type Func[S any] func() S

func (f Func[S]) Letter() S { return f() }

// Fill returns n fresh letters drawn from a.
func Fill[S any](a Alphabet[S], n int) []S {
	if n <= 0 {
		return []S{}
	}
	out := make([]S, n)
	for i := range out {
		out[i] = a.Letter()
	}
	return out
}

// Append draws n letters from a onto dst.
func Append[S any](dst []S, a Alphabet[S], n int) []S {
	for i := 0; i < n; i++ {
		dst = append(dst, a.Letter())
	}
	return dst
}
