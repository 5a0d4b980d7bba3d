package smf

const beatsPerBar = 4

// beatInBar returns which quarter note of a 4/4 bar absTicks falls in.
func beatInBar(absTicks uint64, ticksPerQuarterNote uint16) int {
	if ticksPerQuarterNote == 0 {
		return 0
	}
	return int(absTicks / uint64(ticksPerQuarterNote) % beatsPerBar)
}
