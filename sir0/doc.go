// Package sir0 reads and writes SIR0 containers.
//
// SIR0 is the outer framing used by Pokémon Mystery Dungeon data files such as
// code_table.bin. A container is laid out as:
//
//	0x00  "SIR0"                      magic
//	0x04  u32 content pointer         start of the file-specific content header
//	0x08  u32 offset list pointer     start of the pointer offset list
//	0x0C  u32 zero
//	0x10  ... payload ...
//	      pointer offset list
//	      padding to 16 bytes
//
// The pointer offset list records the position of every 32-bit pointer stored
// in the file, including the two header pointers at 0x04 and 0x08. Positions
// are stored as ascending deltas. Each delta is written big-endian in 7-bit
// groups with the high bit set on every byte but the last; a zero byte ends
// the list.
//
// Parse exposes the decoded positions through OffsetCount and OffsetAt, which
// is all the table loader needs. Builder produces containers and registers
// pointer positions as they are written.
package sir0
