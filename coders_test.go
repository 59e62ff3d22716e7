package pgtypemap_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgtypemap"
)

func TestTextCoder(t *testing.T) {
	c := pgtypemap.NewTextCoder()
	assert.Equal(t, "text", c.Name())
	assert.Equal(t, uint32(pgtypemap.TextOID), c.OID())
	assert.Equal(t, pgtypemap.TextFormatCode, c.Format())

	buf, err := c.Encode("hello", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), buf)

	buf, err = c.Encode(pgtypemap.Name("relname"), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("relname"), buf)

	buf, err = c.Encode(temperature(21.5), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("21.5"), buf)

	buf, err = c.Encode(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, buf)

	_, err = c.Encode(struct{}{}, nil)
	require.Error(t, err)

	v, err := c.Decode([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	v, err = c.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBoolCoder(t *testing.T) {
	text := pgtypemap.NewBoolCoder(pgtypemap.TextFormatCode)

	buf, err := text.Encode(true, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("t"), buf)

	v, err := text.Decode([]byte("f"))
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = text.Decode([]byte("x"))
	require.Error(t, err)

	binary := pgtypemap.NewBoolCoder(pgtypemap.BinaryFormatCode)
	buf, err = binary.Encode(false, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, buf)

	v, err = binary.Decode([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = binary.Decode([]byte{1, 0})
	require.Error(t, err)
}

func TestIntCoders(t *testing.T) {
	text := pgtypemap.NewInt8Coder(pgtypemap.TextFormatCode)

	buf, err := text.Encode(int64(-42), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("-42"), buf)

	v, err := text.Decode([]byte("-42"))
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	binary := pgtypemap.NewInt8Coder(pgtypemap.BinaryFormatCode)
	buf, err = binary.Encode(258, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, buf)

	v, err = binary.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(258), v)

	_, err = binary.Decode([]byte{1, 2, 3})
	require.Error(t, err)

	int2 := pgtypemap.NewInt2Coder(pgtypemap.BinaryFormatCode)
	buf, err = int2.Encode(int16(-1), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff}, buf)

	v, err = int2.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, int16(-1), v)

	_, err = int2.Encode(100000, nil)
	require.Error(t, err)

	int4 := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	v, err = int4.Decode([]byte("7"))
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	_, err = int4.Encode(int64(1)<<40, nil)
	require.Error(t, err)
}

func TestFloat8Coder(t *testing.T) {
	text := pgtypemap.NewFloat8Coder(pgtypemap.TextFormatCode)

	buf, err := text.Encode(1.25, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("1.25"), buf)

	v, err := text.Decode([]byte("1.25"))
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)

	binary := pgtypemap.NewFloat8Coder(pgtypemap.BinaryFormatCode)
	buf, err = binary.Encode(float32(0.5), nil)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	v, err = binary.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestByteaCoder(t *testing.T) {
	text := pgtypemap.NewByteaCoder(pgtypemap.TextFormatCode)

	buf, err := text.Encode([]byte{0xde, 0xad}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(`\xdead`), buf)

	v, err := text.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, v)

	_, err = text.Decode([]byte("nothex"))
	require.Error(t, err)

	binary := pgtypemap.NewByteaCoder(pgtypemap.BinaryFormatCode)
	buf, err = binary.Encode([]byte{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, buf)

	src := []byte{9, 8}
	v, err = binary.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, src, v)
	// Decode must not retain src.
	src[0] = 0
	assert.Equal(t, []byte{9, 8}, v)
}

func TestUUIDCoder(t *testing.T) {
	u := uuid.Must(uuid.FromString("0310b61c-7203-4a1e-8f0f-0b5e73c82eaa"))

	textCoder := pgtypemap.NewUUIDCoder(pgtypemap.TextFormatCode)
	buf, err := textCoder.Encode(u, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte(u.String()), buf)

	v, err := textCoder.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, u, v)

	binaryCoder := pgtypemap.NewUUIDCoder(pgtypemap.BinaryFormatCode)
	buf, err = binaryCoder.Encode(u.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, u.Bytes(), buf)

	v, err = binaryCoder.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, u, v)

	_, err = binaryCoder.Encode([]byte{1, 2}, nil)
	require.Error(t, err)
}

func TestTimestampCoder(t *testing.T) {
	ts := time.Date(2020, 3, 15, 10, 30, 45, 123456000, time.UTC)

	text := pgtypemap.NewTimestampCoder(pgtypemap.TextFormatCode)
	buf, err := text.Encode(ts, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("2020-03-15 10:30:45.123456"), buf)

	v, err := text.Decode(buf)
	require.NoError(t, err)
	assert.True(t, ts.Equal(v.(time.Time)))

	binary := pgtypemap.NewTimestampCoder(pgtypemap.BinaryFormatCode)
	buf, err = binary.Encode(ts, nil)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	v, err = binary.Decode(buf)
	require.NoError(t, err)
	assert.True(t, ts.Equal(v.(time.Time)))
}
