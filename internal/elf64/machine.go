package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// Machine is the e_machine field: the target instruction set architecture.
type Machine uint16

const (
	MachineNone    Machine = 0
	MachineI386    Machine = 3
	MachineArm     Machine = 40
	MachineX86_64  Machine = 62
	MachineAArch64 Machine = 183
	MachineRiscV   Machine = 243
)

var machineNames = map[Machine]string{
	MachineNone:    "None",
	MachineI386:    "I386",
	MachineArm:     "Arm",
	MachineX86_64:  "X86_64",
	MachineAArch64: "AArch64",
	MachineRiscV:   "RiscV",
}

func (m Machine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Machine(%d)", uint16(m))
}

// ReadMachine decodes the 2-byte machine discriminant using e.
func ReadMachine(b []byte, e codec.Endian) (Machine, []byte, error) {
	raw, rest, err := e.Uint16(b)
	if err != nil {
		return 0, nil, err
	}
	if _, ok := machineNames[Machine(raw)]; !ok {
		return 0, nil, fmt.Errorf("elf64: unrecognised machine discriminant %d", raw)
	}
	return Machine(raw), rest, nil
}

// Write encodes the discriminant using e.
func (m Machine) Write(dst []byte, e codec.Endian) {
	e.PutUint16(dst, uint16(m))
}
