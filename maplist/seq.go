package maplist

import "iter"

// MapListSeq is the lazy form of MapList: it returns a sequence that applies
// transforms[i] to the i-th element of inputs as the result is consumed.
// Positional selection is preserved under early termination; once the
// transformation list is exhausted the sequence ends without pulling any
// further elements from inputs.
func MapListSeq[S, T any](transforms []Transformation[S, T], inputs iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(transforms) == 0 {
			return
		}
		i := 0
		for in := range inputs {
			if t := transforms[i]; t != nil {
				if v, ok := t(in); ok {
					if !yield(v) {
						return
					}
				}
			}
			i++
			if i == len(transforms) {
				return
			}
		}
	}
}

// MapCycleSeq is the lazy form of MapCycle. The empty-list precondition is
// checked eagerly, before the sequence is constructed, so a non-nil error
// means the returned sequence is nil.
func MapCycleSeq[S, T any](transforms []Transformation[S, T], inputs iter.Seq[S]) (iter.Seq[T], error) {
	if len(transforms) == 0 {
		return nil, errNoTransformations()
	}
	return func(yield func(T) bool) {
		i := 0
		for in := range inputs {
			t := transforms[i%len(transforms)]
			i++
			if t == nil {
				continue
			}
			if v, ok := t(in); ok {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}
