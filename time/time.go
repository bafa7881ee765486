// SPDX-License-Identifier: ice License 1.0

package time

import (
	"context"
	"strconv"
	stdlibtime "time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

func Now() *Time {
	now := stdlibtime.Now().UTC()

	return &Time{
		Time: &now,
	}
}

func New(time stdlibtime.Time) *Time {
	return &Time{
		Time: &time,
	}
}

func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	nanos, err := dec.DecodeUint64()
	if err != nil {
		return errors.Wrap(err, "failed to Time.DecodeMsgpack.DecodeUint64")
	}
	t.set(stdlibtime.Unix(0, int64(nanos)))

	return nil
}

func (t *Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	var nanos uint64
	if t.Location() != stdlibtime.UTC {
		nanos = uint64(t.UTC().UnixNano())
	} else {
		nanos = uint64(t.UnixNano())
	}

	return errors.Wrap(enc.EncodeUint64(nanos), "failed to EncodeUint64")
}

func (t *Time) MarshalJSON(_ context.Context) ([]byte, error) {
	if t.Time == nil || t.UnixNano() == 0 {
		return []byte("null"), nil
	}
	if t.Location() != stdlibtime.UTC {
		*t.Time = t.Time.UTC()
	}

	//nolint:wrapcheck // We're just proxying it.
	return t.Time.MarshalJSON()
}

func (t *Time) UnmarshalJSON(_ context.Context, bytes []byte) error {
	val := string(bytes)
	if val == "null" || val == `""` || val == "" {
		return nil
	}
	if digitsOnly(bytes) {
		return t.unmarshalUnixTimestamp(val)
	}

	return t.unmarshalRFC3339(val)
}

func (t *Time) MarshalText() ([]byte, error) {
	if t == nil || t.Time == nil || t.IsZero() {
		return []byte{}, nil
	}

	return []byte(t.Format(stdlibtime.RFC3339Nano)), nil
}

func (t *Time) MarshalBinary() ([]byte, error) {
	return t.MarshalText()
}

func (t *Time) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	parsed, err := stdlibtime.Parse(stdlibtime.RFC3339Nano, string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid time format: %v", string(text))
	}
	t.set(parsed)

	return nil
}

func (t *Time) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

func (t *Time) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		return nil
	case stdlibtime.Time:
		t.set(val)

		return nil
	case []byte:
		return t.UnmarshalText(val)
	case string:
		return t.UnmarshalText([]byte(val))
	default:
		return errors.Errorf("unsupported time source %#v", src)
	}
}

func (t *Time) unmarshalUnixTimestamp(digits string) error {
	millisOrNanos, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid numeric timestamp: %v", digits)
	}
	if len(digits) == millisTimestampDigits {
		t.set(stdlibtime.UnixMilli(millisOrNanos))
	} else {
		t.set(stdlibtime.Unix(0, millisOrNanos))
	}

	return nil
}

func (t *Time) unmarshalRFC3339(quoted string) error {
	parsed, err := stdlibtime.Parse(`"`+stdlibtime.RFC3339Nano+`"`, quoted)
	if err != nil {
		return errors.Wrapf(err, "invalid time format: %v", quoted)
	}
	t.set(parsed)

	return nil
}

func (t *Time) set(val stdlibtime.Time) {
	t.Time = new(stdlibtime.Time)
	*t.Time = val.UTC()
}

func digitsOnly(data []byte) bool {
	for _, b := range data {
		if b < '0' || b > '9' {
			return false
		}
	}

	return true
}
