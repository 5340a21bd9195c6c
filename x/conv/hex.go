package conv

const hexd = "0123456789ABCDEF"

// U8Hex returns a two-digit uppercase hex string without 0x, zero-padded.
// Allocation is bounded and fmt-free so it is safe in MCU log paths.
func U8Hex(n uint8) string {
	return string([]byte{hexd[n>>4], hexd[n&0xF]})
}

// U16Hex returns a four-digit uppercase hex string without 0x, zero-padded.
func U16Hex(n uint16) string {
	return string([]byte{hexd[n>>12&0xF], hexd[n>>8&0xF], hexd[n>>4&0xF], hexd[n&0xF]})
}
