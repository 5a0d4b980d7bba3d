package smf

const maxVarintLen = 4

func decodeVarint(buf []byte) (x uint32, n int) {
	var b byte
	for _, b = range buf {
		x = x << 7
		x |= uint32(b) & 0x7F
		n++
		if b&0x80 == 0 {
			return x, n
		}
	}

	return x, n
}

func isVoiceMsgType(b byte) bool {
	return 0x8 <= b && b <= 0xE
}

// dataLen is the number of data bytes following status inside a track.
func dataLen(status byte) int {
	switch status >> 4 {
	case 0xC, 0xD:
		return 1
	case 0xF:
		switch status {
		case 0xF1, 0xF3:
			return 1
		case 0xF2:
			return 2
		}
		return 0
	}
	return 2
}
