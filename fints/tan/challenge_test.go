package tan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhbci/go-fints-client/fints/segment"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestFromSegment(t *testing.T) {
	ch := FromSegment(&segment.TANChallenge{
		TaskReference: "TASK42",
		Text:          "Bitte bestätigen Sie in Ihrer App",
		MediaType:     MediaTypePhotoTAN,
		Data:          []byte{0x01, 0x02},
	})

	assert.Equal(t, "TASK42", ch.TaskReference)
	assert.Equal(t, MediaTypePhotoTAN, ch.MediaType)
	assert.Equal(t, []byte{0x01, 0x02}, ch.Data)
}

func TestChallenge_QRPNG_FromData(t *testing.T) {
	ch := &Challenge{TaskReference: "TASK42", Data: []byte("0248A0120452ED3FA")}

	png, err := ch.QRPNG(256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestChallenge_QRPNG_FallsBackToText(t *testing.T) {
	ch := &Challenge{Text: "Bitte bestätigen Sie in Ihrer App"}

	png, err := ch.QRPNG(256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestChallenge_QRPNG_Empty(t *testing.T) {
	ch := &Challenge{TaskReference: "TASK42"}

	_, err := ch.QRPNG(256)
	assert.Error(t, err)
}
