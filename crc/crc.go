package crc

import (
	"bytes"
	"strconv"
)

// Seed is the initial register value used by RTP line checksums.
const Seed uint16 = 0x521

var table = makeTable(0xA001)

func makeTable(poly uint16) *[256]uint16 {
	t := new([256]uint16)
	for i := range t {
		c := uint16(i)
		for range 8 {
			if c&1 != 0 {
				c = c>>1 ^ poly
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = table[byte(crc)^b] ^ crc>>8
	}
	return crc
}

// Checksum returns the checksum of p starting from [Seed].
//
// For a line, p is everything up to and including the comma preceding
// the checksum field.
func Checksum(p []byte) uint16 {
	return Update(Seed, p)
}

// Field formats sum as the final quoted field of an RTP line.
func Field(sum uint16) []byte {
	return AppendField(make([]byte, 0, 7), sum)
}

func AppendField(dst []byte, sum uint16) []byte {
	dst = append(dst, '"')
	dst = strconv.AppendUint(dst, uint64(sum), 10)
	return append(dst, '"')
}

// Split separates a line, without its terminator, into the checksummed
// content and the unquoted checksum text.  ok is false if the line has
// no field separator or the checksum field is shorter than three bytes.
func Split(line []byte) (content, sum []byte, ok bool) {
	i := bytes.LastIndexByte(line, ',')
	if i < 0 || len(line)-i-1 < 3 {
		return nil, nil, false
	}
	sum = bytes.TrimSpace(line[i+1:])
	sum = bytes.TrimPrefix(sum, []byte{'"'})
	sum = bytes.TrimSuffix(sum, []byte{'"'})
	return line[:i+1], sum, true
}

// Verify checks the trailing checksum field of line.  A line
// terminator, if present, is ignored.
func Verify(line []byte) error {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	content, sum, ok := Split(line)
	if !ok {
		return &MismatchErr{Stored: string(line), Computed: Checksum(line)}
	}
	got := Checksum(content)
	v, err := strconv.ParseUint(string(sum), 10, 16)
	if err != nil || uint16(v) != got {
		return &MismatchErr{Stored: string(sum), Computed: got}
	}
	return nil
}
