package vault

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// The plaintext variable map is serialized with an explicit binary layout
// rather than an ambient serialization library, so the format is stable
// and independently verifiable:
//
//	[ count: uint32 ]
//	repeated count times:
//	  [ keyLen: uint32 ][ key: keyLen bytes of UTF-8 ]
//	  [ valLen: uint32 ][ value: valLen bytes of UTF-8 ]
//
// All integers are big-endian. Entries are written in sorted key order so
// that encoding is deterministic.

// EncodeVars serializes a variable map to its binary form.
func EncodeVars(vars map[string]string) []byte {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 4, 4+16*len(vars))
	binary.BigEndian.PutUint32(buf, uint32(len(vars)))
	for _, k := range keys {
		buf = appendString(buf, k)
		buf = appendString(buf, vars[k])
	}
	return buf
}

// DecodeVars parses the binary form back into a variable map. It fails on
// any structural mismatch: a truncated buffer, a length prefix running
// past the end, or trailing bytes after the last entry.
func DecodeVars(data []byte) (map[string]string, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("variable data truncated: %d bytes", len(data))
	}
	count := binary.BigEndian.Uint32(data)
	data = data[4:]

	vars := make(map[string]string, count)
	for i := uint32(0); i < count; i++ {
		key, rest, err := readString(data)
		if err != nil {
			return nil, fmt.Errorf("entry %d key: %w", i, err)
		}
		value, rest, err := readString(rest)
		if err != nil {
			return nil, fmt.Errorf("entry %d value: %w", i, err)
		}
		vars[key] = value
		data = rest
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after last entry", len(data))
	}
	return vars, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func readString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", nil, fmt.Errorf("length prefix truncated")
	}
	n := binary.BigEndian.Uint32(data)
	data = data[4:]
	if uint32(len(data)) < n {
		return "", nil, fmt.Errorf("string of %d bytes truncated at %d", n, len(data))
	}
	return string(data[:n]), data[n:], nil
}
