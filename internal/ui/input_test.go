package ui

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itk-dev/termdrop/internal/fault"
)

func TestAcquireRaw_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = AcquireRaw(r)

	assert.Equal(t, fault.KindTerminalConfig, fault.KindOf(err))
}

func TestReadKeys_DeliversBytesInOrder(t *testing.T) {
	keyCh := make(chan byte, 8)
	done := make(chan struct{})

	err := ReadKeys(strings.NewReader("adsw"), keyCh, done)
	assert.ErrorIs(t, err, io.EOF)

	close(keyCh)
	var got []byte
	for b := range keyCh {
		got = append(got, b)
	}
	assert.Equal(t, []byte("adsw"), got)
}

func TestReadKeys_StopsWhenDone(t *testing.T) {
	keyCh := make(chan byte)
	done := make(chan struct{})
	close(done)

	err := ReadKeys(strings.NewReader("a"), keyCh, done)

	assert.NoError(t, err)
}
