package hostcache

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/telophasehq/tangent/pkg/record"
)

// Entry encoding: expiresAtMs(8B BE) | kind(1B) | payload | crc32c

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

const (
	kindStr   = 's'
	kindInt   = 'i'
	kindFloat = 'f'
	kindBool  = 'b'
	kindBytes = 'x'
)

func encodeEntry(expiresAtMs int64, v record.Scalar) []byte {
	out := make([]byte, 8, 8+1+16)
	binary.BigEndian.PutUint64(out[:8], uint64(expiresAtMs))

	switch v.Kind() {
	case record.KindStr:
		out = append(out, kindStr)
		out = append(out, v.Str()...)
	case record.KindInt:
		out = append(out, kindInt)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(v.Int()))
		out = append(out, tmp[:]...)
	case record.KindFloat:
		out = append(out, kindFloat)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v.Float()))
		out = append(out, tmp[:]...)
	case record.KindBool:
		out = append(out, kindBool)
		if v.Bool() {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	default:
		out = append(out, kindBytes)
		out = append(out, v.Blob()...)
	}

	crc := crc32.Checksum(out, castagnoli)
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	return append(out, crcb[:]...)
}

func decodeEntry(b []byte) (expiresAtMs int64, v record.Scalar, ok bool) {
	if len(b) < 8+1+4 {
		return 0, record.Scalar{}, false
	}
	body := b[:len(b)-4]
	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	if crc32.Checksum(body, castagnoli) != expect {
		return 0, record.Scalar{}, false
	}

	expiresAtMs = int64(binary.BigEndian.Uint64(body[:8]))
	kind := body[8]
	payload := body[9:]

	switch kind {
	case kindStr:
		return expiresAtMs, record.Str(string(payload)), true
	case kindInt:
		if len(payload) != 8 {
			return 0, record.Scalar{}, false
		}
		return expiresAtMs, record.Int(int64(binary.BigEndian.Uint64(payload))), true
	case kindFloat:
		if len(payload) != 8 {
			return 0, record.Scalar{}, false
		}
		return expiresAtMs, record.Float(math.Float64frombits(binary.BigEndian.Uint64(payload))), true
	case kindBool:
		if len(payload) != 1 {
			return 0, record.Scalar{}, false
		}
		return expiresAtMs, record.Boolean(payload[0] != 0), true
	case kindBytes:
		return expiresAtMs, record.Bytes(append([]byte(nil), payload...)), true
	default:
		return 0, record.Scalar{}, false
	}
}
