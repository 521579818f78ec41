package cpu

import (
	"encoding/binary"
	"io"
)

// LoadImage parses a big-endian memory image: word 0 is the load origin,
// the remaining words are stored contiguously from that origin. The PC is
// set to the origin of the most recently loaded image, so with an OS image
// followed by a user image the user image's origin wins.
func (cpu *Cpu) LoadImage(r io.Reader) (err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}
	if len(data) < 2 || len(data)%2 != 0 {
		return ErrImageTruncated
	}

	origin := binary.BigEndian.Uint16(data)

	addr := origin
	for off := 2; off < len(data); off += 2 {
		cpu.Mem.Write(addr, binary.BigEndian.Uint16(data[off:]))
		addr++
	}

	cpu.PC = origin

	return
}
