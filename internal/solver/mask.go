// source: original_source/src/mineseeker.h,mineseeker.cc (MineSeekerField::configurations_)

package solver

import "math/bits"

// numConfigurations is the number of distinct 3x3 neighbourhood mine
// placements: one bit per placement, 2^8.
const numConfigurations = 256

// configMask is a 256-element bitset of admissible configurations for a
// single cell, stored as four 64-bit words rather than a []bool so that
// test/clear/popcount stay cheap word operations instead of a loop over
// 256 booleans.
type configMask [4]uint64

func fullConfigMask() configMask {
	return configMask{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

func (m configMask) test(c int) bool {
	return m[c/64]&(1<<uint(c%64)) != 0
}

func (m *configMask) clear(c int) {
	m[c/64] &^= 1 << uint(c%64)
}

func (m *configMask) set(c int) {
	m[c/64] |= 1 << uint(c%64)
}

func (m configMask) popcount() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

func (m configMask) isEmpty() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}
