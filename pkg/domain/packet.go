package domain

// PacketSize is the fixed character capacity of one Packet.
const PacketSize = 8

// Packet is the unit exchanged over device character channels: a fixed
// capacity chunk of characters, or an end-of-stream marker. End packets carry
// no characters.
type Packet struct {
	Chars [PacketSize]rune
	N     int
	End   bool
}

// EndPacket returns the end-of-stream marker.
func EndPacket() Packet {
	return Packet{End: true}
}

// Runes returns the valid characters of the packet.
func (p Packet) Runes() []rune {
	if p.End || p.N <= 0 {
		return nil
	}
	if p.N > PacketSize {
		return p.Chars[:PacketSize]
	}
	return p.Chars[:p.N]
}

// PacketsFromString chunks text into packets of up to PacketSize characters
// and appends the end-of-stream marker.
func PacketsFromString(text string) []Packet {
	runes := []rune(text)
	packets := make([]Packet, 0, len(runes)/PacketSize+2)
	for len(runes) > 0 {
		var p Packet
		p.N = copy(p.Chars[:], runes)
		runes = runes[p.N:]
		packets = append(packets, p)
	}
	return append(packets, EndPacket())
}
