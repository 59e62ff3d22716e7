package apdnumeric_test

import (
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgtypemap"
	"github.com/jackc/pgtypemap/ext/apdnumeric"
)

func TestCoder(t *testing.T) {
	var c pgtypemap.Coder = apdnumeric.Coder{}
	assert.Equal(t, "numeric", c.Name())
	assert.Equal(t, uint32(pgtypemap.NumericOID), c.OID())

	d, _, err := apd.NewFromString("12345.6789")
	require.NoError(t, err)

	buf, err := c.Encode(d, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345.6789"), buf)

	v, err := c.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(v.(*apd.Decimal)))

	buf, err = c.Encode(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, buf)
}
