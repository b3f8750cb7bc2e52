package seriesio

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bitseries/series"
)

// ErrBadRatio indicates split ratios outside [0,1] or summing above 1.
var ErrBadRatio = errors.New("seriesio: invalid split ratio")

// Split cuts s chronologically into train, valid and test parts.
// test holds the last floor(n*testRatio) values, valid the floor(n*validRatio)
// values right before them, and train everything earlier. Each part is a
// copy, never a view into s.
func Split(s series.Series, validRatio, testRatio float64) (train, valid, test series.Series, err error) {
	if !inUnit(validRatio) || !inUnit(testRatio) || validRatio+testRatio > 1 {
		return nil, nil, nil, fmt.Errorf("Split: valid=%g test=%g: %w", validRatio, testRatio, ErrBadRatio)
	}

	n := len(s)
	nTest := int(math.Floor(float64(n) * testRatio))
	nValid := int(math.Floor(float64(n) * validRatio))
	nTrain := n - nTest - nValid
	if nTrain < 0 {
		// Both products rounded up past an integer boundary.
		nValid += nTrain
		nTrain = 0
	}

	train = append(series.Series{}, s[:nTrain]...)
	valid = append(series.Series{}, s[nTrain:nTrain+nValid]...)
	test = append(series.Series{}, s[nTrain+nValid:]...)

	return train, valid, test, nil
}

func inUnit(p float64) bool {
	return p >= 0 && p <= 1
}
