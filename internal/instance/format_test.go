package instance

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	instances := Generate(GenerateOptions{Types: 6, Instances: 2, InitialSeed: 40})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, instances))

	parsed, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	for i, in := range parsed {
		orig := instances[i]
		assert.Equal(t, orig.ID, in.ID)
		assert.Equal(t, orig.Seed, in.Seed)
		assert.Equal(t, orig.L, in.L)
		assert.Equal(t, orig.W, in.W)
		assert.Equal(t, orig.H, in.H)
		require.Len(t, in.Boxes, len(orig.Boxes))
		for j, bq := range in.Boxes {
			ob := orig.Boxes[j]
			assert.Equal(t, ob.Type.L, bq.Type.L)
			assert.Equal(t, ob.Type.W, bq.Type.W)
			assert.Equal(t, ob.Type.H, bq.Type.H)
			assert.Equal(t, ob.Type.RotL, bq.Type.RotL)
			assert.Equal(t, ob.Type.RotW, bq.Type.RotW)
			assert.Equal(t, ob.Type.RotH, bq.Type.RotH)
			assert.Equal(t, ob.Quantity, bq.Quantity)
		}
	}
}

func TestReadKnownFixture(t *testing.T) {
	input := `1
1 40
587 233 220
2
1 108 1 76 1 30 0 24
2 110 1 43 1 25 0 7
`
	instances, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, instances, 1)

	in := instances[0]
	assert.Equal(t, 1, in.ID)
	assert.Equal(t, int64(40), in.Seed)
	assert.Equal(t, 587, in.L)
	require.Len(t, in.Boxes, 2)

	first := in.Boxes[0]
	assert.Equal(t, 108, first.Type.L)
	assert.Equal(t, 76, first.Type.W)
	assert.Equal(t, 30, first.Type.H)
	assert.True(t, first.Type.RotL)
	assert.True(t, first.Type.RotW)
	assert.False(t, first.Type.RotH)
	assert.Equal(t, 24, first.Quantity)
}

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	input := `1          # number of instances

1 40
587 233 220   # container dims
1
1 50 1 40 1 30 1 10
`
	instances, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, 10, instances[0].Boxes[0].Quantity)
}

func TestReadRejectsNegativeQuantity(t *testing.T) {
	input := `1
1 40
587 233 220
1
1 50 1 40 1 30 1 -3
`
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReadRejectsNonPositiveDimension(t *testing.T) {
	input := `1
1 40
587 233 220
1
1 0 1 40 1 30 1 5
`
	_, err := Read(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReadTruncatedFile(t *testing.T) {
	input := `2
1 40
587 233 220
1
1 50 1 40 1 30 1 10
`
	_, err := Read(strings.NewReader(input))
	assert.Error(t, err, "second instance is missing")
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.txt")
	instances := Generate(GenerateOptions{Types: 3, Instances: 1, InitialSeed: 40})

	require.NoError(t, WriteFile(path, instances))
	parsed, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, parsed, 1)
}
