package pgtypemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgtypemap"
)

func TestByOIDLastRegistrationWins(t *testing.T) {
	first := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	second := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	defaultCoder := pgtypemap.NewTextCoder()

	m := pgtypemap.NewByOID()
	m.Default = defaultCoder
	m.Register(first)
	m.Register(second)

	fitted, err := m.FitToResult([]pgtypemap.FieldDescription{
		{Name: "id", DataTypeOID: pgtypemap.Int4OID, Format: pgtypemap.TextFormatCode},
		{Name: "note", DataTypeOID: pgtypemap.JSONBOID, Format: pgtypemap.TextFormatCode},
	})
	require.NoError(t, err)

	c, err := fitted.DecoderForColumn(0)
	require.NoError(t, err)
	assert.Same(t, second, c)

	// Unregistered keys fall back to the configured default.
	c, err = fitted.DecoderForColumn(1)
	require.NoError(t, err)
	assert.Same(t, defaultCoder, c)
}

func TestByOIDFormatIsPartOfKey(t *testing.T) {
	textInt := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	binaryInt := pgtypemap.NewInt4Coder(pgtypemap.BinaryFormatCode)

	m := pgtypemap.NewByOID()
	m.Register(textInt)
	m.Register(binaryInt)

	c, ok := m.CoderForOID(pgtypemap.Int4OID, pgtypemap.TextFormatCode)
	require.True(t, ok)
	assert.Same(t, textInt, c)

	c, ok = m.CoderForOID(pgtypemap.Int4OID, pgtypemap.BinaryFormatCode)
	require.True(t, ok)
	assert.Same(t, binaryInt, c)

	_, ok = m.CoderForOID(pgtypemap.Int8OID, pgtypemap.TextFormatCode)
	assert.False(t, ok)
}

func TestByOIDMissWithoutDefault(t *testing.T) {
	m := pgtypemap.NewByOID()

	fitted, err := m.FitToResult([]pgtypemap.FieldDescription{
		{Name: "note", DataTypeOID: pgtypemap.TextOID, Format: pgtypemap.TextFormatCode},
	})
	require.NoError(t, err)

	c, err := fitted.DecoderForColumn(0)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestByOIDStrict(t *testing.T) {
	m := pgtypemap.NewByOID()
	m.Strict = true
	m.Register(pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode))

	fitted, err := m.FitToResult([]pgtypemap.FieldDescription{
		{Name: "id", DataTypeOID: pgtypemap.Int4OID, Format: pgtypemap.TextFormatCode},
		{Name: "note", DataTypeOID: pgtypemap.TextOID, Format: pgtypemap.TextFormatCode},
	})
	require.NoError(t, err)

	_, err = fitted.DecoderForColumn(0)
	require.NoError(t, err)

	_, err = fitted.DecoderForColumn(1)
	var exhaustedErr *pgtypemap.FallbackExhaustedError
	require.ErrorAs(t, err, &exhaustedErr)
	assert.Equal(t, 2, exhaustedErr.Position)
	assert.Equal(t, uint32(pgtypemap.TextOID), exhaustedErr.OID)
}

func TestByOIDFittedSnapshotIsFrozen(t *testing.T) {
	intCoder := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	m := pgtypemap.NewByOID()
	m.Register(intCoder)

	fitted, err := m.FitToResult([]pgtypemap.FieldDescription{
		{Name: "id", DataTypeOID: pgtypemap.Int4OID, Format: pgtypemap.TextFormatCode},
	})
	require.NoError(t, err)

	// Registering after fitting must not change the fitted decoder.
	replacement := pgtypemap.NewInt4Coder(pgtypemap.TextFormatCode)
	m.Register(replacement)

	c, err := fitted.DecoderForColumn(0)
	require.NoError(t, err)
	assert.Same(t, intCoder, c)
}

func TestByOIDEncodeDirectionsFail(t *testing.T) {
	m := pgtypemap.NewByOID()

	_, err := m.FitToQuery([]any{1})
	require.Error(t, err)

	_, err = m.FitToCopyGet()
	require.Error(t, err)
}
