package ptcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voro3d/ptcio"
)

func TestReadAllParsesNonRadicalRecords(t *testing.T) {
	t.Parallel()

	in := "0 0.25 0.5 0.5\n1 0.75 0.5 0.5\n\n2 0.5 0.25 0.5\n"
	ps, err := ptcio.ReadAll(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, int64(1), ps[1].ID)
	assert.InDelta(t, 0.75, ps[1].X, 1e-9)
}

func TestReadAllParsesRadicalRecords(t *testing.T) {
	t.Parallel()

	in := "0 0.25 0.5 0.5 0.1\n"
	ps, err := ptcio.ReadAll(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.InDelta(t, 0.1, ps[0].R, 1e-9)
}

func TestReadAllRejectsWrongFieldCount(t *testing.T) {
	t.Parallel()

	_, err := ptcio.ReadAll(strings.NewReader("0 0.25 0.5\n"), false)
	require.ErrorIs(t, err, ptcio.ErrBadRecord)
}

func TestReadAllRejectsMalformedNumber(t *testing.T) {
	t.Parallel()

	_, err := ptcio.ReadAll(strings.NewReader("0 x 0.5 0.5\n"), false)
	require.ErrorIs(t, err, ptcio.ErrBadRecord)
}
