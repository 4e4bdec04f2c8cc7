// Package crc computes the checksum carried as the last field of every
// RTP line.
//
// The checksum is a reflected CRC-16 (polynomial 0xA001) seeded with
// 0x521, taken over the raw line bytes up to and including the comma
// before the checksum field.
package crc
