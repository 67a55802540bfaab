package encoding_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/poindexter12/maxwells-wallet/internal/encoding"
)

func TestDecodeString_PlainUTF8(t *testing.T) {
	got, err := encoding.DecodeString(strings.NewReader("Date,Description\n01/15/2025,CAFÉ\n"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Description\n01/15/2025,CAFÉ\n", got)
}

func TestDecodeString_StripsUTF8BOM(t *testing.T) {
	got, err := encoding.DecodeString(strings.NewReader("\xEF\xBB\xBFDate,Amount\n"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount\n", got)
}

func TestDecodeString_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	raw, err := enc.Bytes([]byte("Date,Amount\n01/15/2025,-4.50\n"))
	require.NoError(t, err)

	got, err := encoding.DecodeString(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount\n01/15/2025,-4.50\n", got)
}

func TestDecodeString_Windows1252(t *testing.T) {
	enc := charmap.Windows1252.NewEncoder()

	raw, err := enc.Bytes([]byte("01/15/2025,CAFÉ MÜNCHEN,-4.50\n"))
	require.NoError(t, err)
	require.False(t, bytes.Equal(raw, []byte("01/15/2025,CAFÉ MÜNCHEN,-4.50\n")))

	got, err := encoding.DecodeString(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "01/15/2025,CAFÉ MÜNCHEN,-4.50\n", got)
}

func TestDecodeString_Empty(t *testing.T) {
	got, err := encoding.DecodeString(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
