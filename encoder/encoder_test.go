package encoder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVectors(t *testing.T) {
	f := Default()

	assert.Equal(t, `""`, f.Encode(nil))
	assert.Equal(t, `""`, f.Encode([]byte{}))
	assert.Equal(t, `"00"`, f.Encode([]byte{0x00}))
	assert.Equal(t, `"ff"`, f.Encode([]byte{0xff}))
	assert.Equal(t, `"486578"`, f.Encode([]byte("Hex")))
}

func TestEncodeEscaped(t *testing.T) {
	f := Default()
	f.Escaped = true

	assert.Equal(t, `"\x48\x65\x78"`, f.Encode([]byte("Hex")))
	assert.Equal(t, `""`, f.Encode(nil))
}

func TestEncodeDelimiters(t *testing.T) {
	f := Format{Prefix: `b"`, Suffix: `"`}
	assert.Equal(t, `b"0102"`, f.Encode([]byte{0x01, 0x02}))

	bare := Format{}
	assert.Equal(t, "0102", bare.Encode([]byte{0x01, 0x02}))
}

func TestEncodeWrap(t *testing.T) {
	f := Format{Prefix: `"`, Suffix: `"`, Wrap: 2}

	// Breaks fall between byte pairs, never inside one, never trailing.
	assert.Equal(t, "\"0102\n0304\n05\"", f.Encode([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, "\"0102\"", f.Encode([]byte{1, 2}))
}

func TestEncodeLength(t *testing.T) {
	f := Default()
	for _, n := range []int{0, 1, 31, 32, 33, 256} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 7)
		}
		out := f.Encode(data)
		digits := strings.Trim(out, `"`)
		assert.Len(t, digits, 2*n, "input length %d", n)
	}
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs := [][]byte{
		{},
		{0x00},
		{0xff},
		[]byte("Hex"),
		all,
	}
	formats := []Format{
		Default(),
		{Prefix: `"`, Suffix: `"`, Escaped: true},
		{Prefix: `"`, Suffix: `"`, Wrap: 8},
		{Prefix: `'`, Suffix: `'`, Escaped: true, Wrap: 32},
	}
	for _, f := range formats {
		for _, in := range inputs {
			out, err := Decode(f.Encode(in))
			require.NoError(t, err)
			assert.Equal(t, in, out, "format %+v", f)
		}
	}
}

func TestEncodeTo(t *testing.T) {
	f := Default()
	f.Wrap = 2

	var buf bytes.Buffer
	n, err := f.EncodeTo(&buf, strings.NewReader("Hex!"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, f.Encode([]byte("Hex!")), buf.String())
}

func TestEncodeToEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Default().EncodeTo(&buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, `""`, buf.String())
}

func TestDecodeLenient(t *testing.T) {
	want := []byte("Hex")

	for _, in := range []string{
		"486578",
		`"486578"`,
		"'486578'",
		`"\x48\x65\x78"`,
		"48 65 78",
		"4865\n78",
		"  486578\n",
	} {
		got, err := Decode(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	// Uppercase digits are accepted even though we never emit them.
	got, err := Decode("486578")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	got, err = Decode("48FF")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x48, 0xff}, got)
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range []string{"4", "48657", "zz", `"48gg"`} {
		_, err := Decode(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatDecodeCustomDelimiters(t *testing.T) {
	f := Format{Prefix: "blob(", Suffix: ")"}
	in := []byte{0xde, 0xad, 0xbe, 0xef}

	out, err := f.Decode(f.Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
