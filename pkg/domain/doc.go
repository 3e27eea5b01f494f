/*
Package domain contains the core domain models of the netgrid device network.

It defines the closed set of device kinds, the hierarchical device path, and
the character transport types (Packet, DeviceMessage) exchanged between
devices. This package is kept pure and free of I/O; the arena that stores
devices lives in pkg/network, and the surfaces that render or serve them live
in the adapters.

# Key Entities

  - Device: a network participant (mainframe, relay, or terminal) carrying a
    human-readable identifier and its arena address.
  - DevicePath: an ordered root-to-device sequence of identifiers,
    round-tripping to a "/"-delimited string.
  - Packet: the fixed-capacity character chunk exchanged over device channels.
  - DeviceMessage: an addressed envelope pairing a packet payload with source
    and destination paths.
*/
package domain
