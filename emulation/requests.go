// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package emulation

import (
	"github.com/parallelno/vector06c-core/debugger"
	"github.com/parallelno/vector06c-core/hardware/display"
	"github.com/parallelno/vector06c-core/hardware/keyboard"
	"github.com/parallelno/vector06c-core/hardware/memory"
)

// Kind identifies one of the host request tags. Each Kind pairs with
// exactly one payload type and one response type, rather than an untyped
// map[string]interface{}; Dispatch panics with a type assertion failure
// rather than a curated error if a caller sends the wrong payload type
// for a Kind, since that is a programming error at the call site, not a
// runtime condition the host needs to recover from.
type Kind int

// The full set of request kinds.
const (
	ReqRun Kind = iota
	ReqStop
	ReqExit
	ReqIsRunning

	ReqReset
	ReqRestart

	ReqExecuteInstr
	ReqExecuteFrame
	ReqExecuteFrameNoBreaks

	ReqGetCC
	ReqGetRegPC
	ReqSetRegPC
	ReqGetCPUState
	ReqGetInstr

	ReqGetByteRAM
	ReqGetWordStack
	ReqGetStackSample

	ReqGetMemRange
	ReqGetRAMDisk
	ReqSetMem
	ReqSetRAMDisk

	ReqGetDisplayData
	ReqGetFrame

	ReqGetMemoryMapping
	ReqGetMemoryMappings
	ReqGetGlobalAddrRAM

	ReqGetHWMainStats

	ReqKeyHandling

	ReqMountFDD
	ReqDismountFDD
	ReqDismountFDDAll
	ReqResetUpdateFDD

	ReqDebugAttach
	ReqDebugReset

	ReqDebugBreakpointAdd
	ReqDebugBreakpointDel
	ReqDebugBreakpointDelAll
	ReqDebugBreakpointSetStatus
	ReqDebugBreakpointActive
	ReqDebugBreakpointDisable
	ReqDebugBreakpointGetStatus
	ReqDebugBreakpointGetAll
	ReqDebugBreakpointGetUpdates

	ReqDebugMemAccessLogReset
	ReqDebugMemAccessLogGet

	ReqOptimize
	ReqBorderFill
)

// Request pairs a Kind with the payload type that Kind expects - see each
// payload type's doc comment for which Kind(s) use it. Payload is nil for
// a Kind that needs no input (eg ReqRun, ReqGetCC).
type Request struct {
	Kind    Kind
	Payload interface{}
}

// Response pairs back the Kind that was dispatched with its result
// payload. Payload is nil for a Kind with no meaningful return value (eg
// ReqRun, ReqSetMem).
type Response struct {
	Kind    Kind
	Payload interface{}
}

// AddrPayload is used by ReqGetInstr, ReqGetByteRAM, ReqGetWordStack,
// ReqGetStackSample and ReqGetGlobalAddrRAM.
type AddrPayload struct {
	Addr uint16
}

// DiskIndexPayload is used by ReqGetMemoryMapping.
type DiskIndexPayload struct {
	Index int
}

// AddrLengthPayload is used by ReqGetMemRange.
type AddrLengthPayload struct {
	Addr   uint16
	Length int
}

// BytesPayload is used by ReqSetMem.
type BytesPayload struct {
	Addr uint16
	Data []byte
}

// DataPayload is used by ReqSetRAMDisk.
type DataPayload struct {
	Data []byte
}

// RegPayload is used by ReqSetRegPC.
type RegPayload struct {
	Value uint16
}

// BoolPayload is used by ReqDebugAttach, ReqOptimize and ReqBorderFill.
type BoolPayload struct {
	Value bool
}

// VsyncPayload is used by ReqGetFrame.
type VsyncPayload struct {
	Vsync bool
}

// KeyPayload is used by ReqKeyHandling.
type KeyPayload struct {
	Scancode keyboard.Scancode
	Down     bool
}

// FDDMountPayload is used by ReqMountFDD.
type FDDMountPayload struct {
	Drive int
	Path  string
	Image []byte
}

// FDDIndexPayload is used by ReqDismountFDD.
type FDDIndexPayload struct {
	Drive int
}

// DebugResetPayload is used by ReqDebugReset.
type DebugResetPayload struct {
	ResetRecorder bool
}

// BreakpointPayload is used by ReqDebugBreakpointAdd.
type BreakpointPayload struct {
	Breakpoint debugger.Breakpoint
}

// BreakpointIndexPayload is used by ReqDebugBreakpointDel,
// ReqDebugBreakpointActive and ReqDebugBreakpointDisable.
type BreakpointIndexPayload struct {
	Index int
}

// BreakpointStatusPayload is used by ReqDebugBreakpointSetStatus.
type BreakpointStatusPayload struct {
	Index  int
	Status debugger.Status
}

// RunningResponse is returned by ReqIsRunning.
type RunningResponse struct {
	Running bool
}

// ValueResponse is returned by ReqGetRegPC and ReqGetWordStack.
type ValueResponse struct {
	Value uint16
}

// CCResponse is returned by ReqGetCC: the free-running cycle counter grows
// without bound across a long RUN, too wide for the 16-bit ValueResponse
// every register query uses.
type CCResponse struct {
	Value int
}

// GlobalAddrResponse is returned by ReqGetGlobalAddrRAM: the translated
// offset can exceed 16 bits once a RAM-disk page is selected.
type GlobalAddrResponse struct {
	Addr uint64
}

// ByteResponse is returned by ReqGetByteRAM.
type ByteResponse struct {
	Value uint8
}

// BytesResponse is returned by ReqGetInstr, ReqGetMemRange and
// ReqGetRAMDisk.
type BytesResponse struct {
	Data []byte
}

// StackSampleResponse is returned by ReqGetStackSample: the words at
// offsets -10..+10 step 2 from the requested address.
type StackSampleResponse struct {
	Words []uint16
}

// CPUStateResponse is returned by ReqGetCPUState and embedded in
// HWMainStatsResponse.
type CPUStateResponse struct {
	PC, SP                 uint16
	A, F, B, C, D, E, H, L uint8
	BC, DE, HL             uint16
	Cycles                 int
	Halted                 bool
}

// DisplayDataResponse is returned by ReqGetDisplayData.
type DisplayDataResponse struct {
	Line, Pixel, Frame int
	Scroll             uint8
}

// FrameResponse is returned by ReqGetFrame.
type FrameResponse struct {
	Frame display.FrameBuffer
}

// MappingResponse is the decoded form of one RAM-disk's MemMapping,
// returned by ReqGetMemoryMapping and embedded in MappingsResponse.
type MappingResponse struct {
	PageRAM, PageStack                     uint8
	ModeStack, ModeRAMA, ModeRAM8, ModeRAME bool
}

// MappingsResponse is returned by ReqGetMemoryMappings.
type MappingsResponse struct {
	Mappings   [8]MappingResponse
	ActiveDisk int
}

// HWMainStatsResponse is returned by ReqGetHWMainStats.
type HWMainStatsResponse struct {
	CPU         CPUStateResponse
	Line, Pixel int
	DisplayMode bool
	BorderColor uint8
	Palette     [16]uint8
}

// BreakpointsResponse is returned by ReqDebugBreakpointGetAll and
// ReqDebugBreakpointGetUpdates.
type BreakpointsResponse struct {
	Breakpoints []debugger.Breakpoint
}

// BreakpointResponse is returned by ReqDebugBreakpointAdd (the index the
// new breakpoint was stored at) and ReqDebugBreakpointGetStatus.
type BreakpointResponse struct {
	Index  int
	Status debugger.Status
}

// AccessLogResponse is returned by ReqDebugMemAccessLogGet. It reports the
// per-instruction write log hardware/memory actually tracks - the two most
// recent writes by byteNum, rather than the full address-keyed map a
// long-running recorder would need; see DESIGN.md for why the latter
// wasn't built.
type AccessLogResponse struct {
	Writes [2]memory.WriteEntry
}
