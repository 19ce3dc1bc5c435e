// SPDX-License-Identifier: GPL-3.0-or-later

package dns

import (
	"encoding/binary"
	"strings"
)

// headerSize is the fixed DNS header length in bytes.
const headerSize = 12

// Header flag masks (RFC 1035 section 4.1.1).
const (
	flagResponse           = 0x8000
	flagTruncated          = 0x0200
	flagRecursionDesired   = 0x0100
	flagRecursionAvailable = 0x0080
	flagAuthenticatedData  = 0x0020
	maskRcode              = 0x000F
)

// maxNameJumps caps compression-pointer indirections per name so that
// a hostile response cannot loop the decoder.
const maxNameJumps = 16

// readUint16 returns the big-endian uint16 at off, or 0 when fewer
// than two bytes remain.
func readUint16(buf []byte, off int) uint16 {
	if off+2 <= len(buf) {
		return binary.BigEndian.Uint16(buf[off:])
	}
	return 0
}

// readUint32 returns the big-endian uint32 at off, or 0 when fewer
// than four bytes remain.
func readUint32(buf []byte, off int) uint32 {
	if off+4 <= len(buf) {
		return binary.BigEndian.Uint32(buf[off:])
	}
	return 0
}

// decodeName decodes a possibly compressed name starting at off.
//
// It returns the labels joined by "." and the offset at which the
// caller resumes reading: one past the root label when no pointer was
// followed, otherwise two past the first pointer in the original
// stream. Chained pointers are resolved, up to [maxNameJumps] deep,
// without moving the resume offset again.
//
// Label bytes are decoded as UTF-8, lossily. Truncated labels and
// out-of-range pointers end the name early instead of reading past
// the buffer.
func decodeName(buf []byte, off int) (string, int) {
	var labels []string
	pos := off
	resume := off
	jumped := false
	jumps := 0

	for pos < len(buf) {
		length := int(buf[pos])
		if length == 0 {
			pos++
			break
		}
		if length&0xC0 == 0xC0 {
			if !jumped {
				resume = pos + 2
				jumped = true
			}
			jumps++
			if jumps > maxNameJumps {
				break
			}
			ptr := (length & 0x3F) << 8
			if pos+1 < len(buf) {
				ptr |= int(buf[pos+1])
			}
			pos = ptr
			continue
		}
		pos++
		if pos+length <= len(buf) {
			labels = append(labels, strings.ToValidUTF8(string(buf[pos:pos+length]), "�"))
		}
		pos += length
	}

	if !jumped {
		resume = pos
	}
	return strings.Join(labels, "."), resume
}
