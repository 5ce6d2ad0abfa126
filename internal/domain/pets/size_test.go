package pets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySize(t *testing.T) {
	cases := []struct {
		weight float64
		want   SizeTier
	}{
		{0.1, SizeSmall},
		{9.99, SizeSmall},
		{10, SizeSmall},
		{10.01, SizeMedium},
		{12, SizeMedium},
		{25, SizeMedium},
		{25.01, SizeLarge},
		{80, SizeLarge},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifySize(tc.weight), "weight=%v", tc.weight)
	}
}
