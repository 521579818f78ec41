// Package cpu implements the LC-3 16-bit instructional computer: a 65536
// word memory with a memory-mapped keyboard device, eight general-purpose
// registers, a program counter and condition flags, the fourteen defined
// opcodes, and the trap routine table that virtualizes console I/O.
//
// The processor is fully synchronous. One Step fetches the word at PC,
// increments PC, and dispatches to the handler for the decoded opcode.
// Handlers are pure transitions over the Cpu state; the RES and RTI
// opcodes have no handler and surface as a fatal bad-opcode error.
package cpu
