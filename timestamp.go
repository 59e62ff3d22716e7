package pgtypemap

import (
	"encoding/binary"
	"time"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

const pgTimestampFormat = "2006-01-02 15:04:05.999999999"

// microsecFromUnixEpochToY2K is the offset between the PostgreSQL epoch
// (2000-01-01) and the Unix epoch in microseconds.
const microsecFromUnixEpochToY2K = 946684800 * 1000000

// TimestampCoder converts time.Time values to and from the timestamp wire
// formats. Values are interpreted without a time zone; encoding normalizes to
// UTC.
type TimestampCoder struct {
	coderInfo
}

func NewTimestampCoder(format int16) *TimestampCoder {
	return &TimestampCoder{coderInfo{name: "timestamp", oid: TimestampOID, format: format}}
}

func (c *TimestampCoder) Encode(v any, buf []byte) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, errors.Errorf("cannot convert %v to timestamp", v)
	}
	t = t.UTC()

	if c.format == BinaryFormatCode {
		microsecSinceUnixEpoch := t.Unix()*1000000 + int64(t.Nanosecond())/1000
		return pgio.AppendInt64(buf, microsecSinceUnixEpoch-microsecFromUnixEpochToY2K), nil
	}
	return t.Truncate(time.Microsecond).AppendFormat(buf, pgTimestampFormat), nil
}

func (c *TimestampCoder) Decode(src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}

	if c.format == BinaryFormatCode {
		if len(src) != 8 {
			return nil, errors.Errorf("invalid length for timestamp: %v", len(src))
		}
		microsecSinceY2K := int64(binary.BigEndian.Uint64(src))
		microsecSinceUnixEpoch := microsecFromUnixEpochToY2K + microsecSinceY2K
		return time.Unix(microsecSinceUnixEpoch/1000000, (microsecSinceUnixEpoch%1000000)*1000).UTC(), nil
	}

	t, err := time.Parse(pgTimestampFormat, string(src))
	if err != nil {
		return nil, err
	}
	return t, nil
}
