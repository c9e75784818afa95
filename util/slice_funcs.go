package util

// Contains returns whether the given slice contains the given element.
func Contains[T comparable](slice []T, elem T) bool {
	for _, x := range slice {
		if x == elem {
			return true
		}
	}

	return false
}

// MapErr applies a fallible function to each element of the given slice and
// returns the transformed slice.  It stops at the first error.
func MapErr[T, R any](slice []T, f func(T) (R, error)) ([]R, error) {
	mSlice := make([]R, len(slice))

	for i, elem := range slice {
		r, err := f(elem)
		if err != nil {
			return nil, err
		}

		mSlice[i] = r
	}

	return mSlice, nil
}
