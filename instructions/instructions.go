// Package instructions contains pure functions, one per x86-64
// instruction form the code generator needs. Each returns the exact
// byte encoding for that instruction; none keep state, and all are
// total over their domain (there is no input that fails to encode).
//
// The REX.W prefix (0x48) selects 64-bit operand size; mov, add, sub,
// imul, cqo and idiv carry it. push and pop are already 64-bit in long
// mode and are encoded without it.
package instructions

import "encoding/binary"

// Ret encodes "ret": return from the compiled function.
func Ret() []byte {
	return []byte{0xC3}
}

// PushRAX encodes "push rax".
func PushRAX() []byte {
	return []byte{0x50}
}

// PopRAX encodes "pop rax".
func PopRAX() []byte {
	return []byte{0x58}
}

// PopRBX encodes "pop rbx".
func PopRBX() []byte {
	return []byte{0x5B}
}

// MovRAXImm64 encodes "mov rax, imm64": load a 64-bit immediate into
// the accumulator. The immediate is little-endian, as x86-64 requires.
func MovRAXImm64(value int64) []byte {
	buf := make([]byte, 10)
	buf[0] = 0x48
	buf[1] = 0xB8
	binary.LittleEndian.PutUint64(buf[2:], uint64(value))
	return buf
}

// AddRAXRBX encodes "add rax, rbx": rax += rbx.
func AddRAXRBX() []byte {
	return []byte{0x48, 0x01, 0xD8}
}

// SubRAXRBX encodes "sub rax, rbx": rax -= rbx.
func SubRAXRBX() []byte {
	return []byte{0x48, 0x29, 0xD8}
}

// ImulRAXRBX encodes "imul rax, rbx": rax = rax * rbx (signed, 64-bit,
// low half kept).
func ImulRAXRBX() []byte {
	return []byte{0x48, 0x0F, 0xAF, 0xC3}
}

// Cqo encodes "cqo": sign-extend rax into rdx:rax, ahead of idiv.
func Cqo() []byte {
	return []byte{0x48, 0x99}
}

// IdivRBX encodes "idiv rbx": divide the signed 128-bit value rdx:rax
// by rbx, quotient in rax, remainder in rdx.
func IdivRBX() []byte {
	return []byte{0x48, 0xF7, 0xFB}
}
