// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// decodeRData renders an answer's RDATA as a display string.
//
// The returned offset is always off+rdlength: a decoder that consumes
// fewer bytes, or none at all for the hex fallback, cannot
// desynchronize the answer loop that follows. Unrecognized types and
// A/AAAA length mismatches fall back to a lowercase hex dump of the
// raw bytes.
func decodeRData(buf []byte, off int, rdlength uint16, rtype RecordType) (string, int) {
	start := off
	end := off + int(rdlength)

	var value string
	switch {
	case rtype == TypeA && rdlength == 4 && end <= len(buf):
		value = fmt.Sprintf("%d.%d.%d.%d", buf[start], buf[start+1], buf[start+2], buf[start+3])

	case rtype == TypeAAAA && rdlength == 16 && end <= len(buf):
		// Eight hex groups, no zero-run compression.
		groups := make([]string, 0, 8)
		for i := 0; i < 8; i++ {
			groups = append(groups, strconv.FormatUint(uint64(readUint16(buf, start+2*i)), 16))
		}
		value = strings.Join(groups, ":")

	case rtype == TypeCNAME || rtype == TypeNS || rtype == TypePTR:
		value, _ = decodeName(buf, start)

	case rtype == TypeMX:
		preference := readUint16(buf, start)
		exchange, _ := decodeName(buf, start+2)
		value = fmt.Sprintf("%d %s", preference, exchange)

	case rtype == TypeTXT:
		var texts []string
		pos := start
		for pos < end && pos < len(buf) {
			tlen := int(buf[pos])
			pos++
			if pos+tlen <= end && pos+tlen <= len(buf) {
				texts = append(texts, strings.ToValidUTF8(string(buf[pos:pos+tlen]), "�"))
			}
			pos += tlen
		}
		value = strings.Join(texts, " ")

	case rtype == TypeSOA:
		mname, pos := decodeName(buf, start)
		rname, pos := decodeName(buf, pos)
		serial := readUint32(buf, pos)
		value = fmt.Sprintf("%s %s %d", mname, rname, serial)

	default:
		value = hex.EncodeToString(buf[min(start, len(buf)):min(end, len(buf))])
	}

	return value, end
}
