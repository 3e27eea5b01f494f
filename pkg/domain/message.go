package domain

// DeviceMessage is an addressed envelope: a packet payload together with the
// hierarchical paths of the sending and receiving devices.
type DeviceMessage struct {
	To       DevicePath `json:"to" yaml:"to"`
	From     DevicePath `json:"from" yaml:"from"`
	Contents []Packet   `json:"-" yaml:"-"`
}

// NewDeviceMessage builds a message carrying text, chunked into packets and
// terminated with the end-of-stream marker.
func NewDeviceMessage(from, to DevicePath, text string) DeviceMessage {
	return DeviceMessage{
		To:       to,
		From:     from,
		Contents: PacketsFromString(text),
	}
}

// Text reassembles the message payload, stopping at the end marker.
func (m DeviceMessage) Text() string {
	var runes []rune
	for _, p := range m.Contents {
		if p.End {
			break
		}
		runes = append(runes, p.Runes()...)
	}
	return string(runes)
}
