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
	"github.com/parallelno/vector06c-core/curated"
	"github.com/parallelno/vector06c-core/debugger"
	"github.com/parallelno/vector06c-core/hardware/cpu"
	"github.com/parallelno/vector06c-core/hardware/fdc"
	"github.com/parallelno/vector06c-core/hardware/keyboard"
	"github.com/parallelno/vector06c-core/hardware/machine"
	"github.com/parallelno/vector06c-core/hardware/memory"
	"github.com/parallelno/vector06c-core/hardware/memory/bus"
	"github.com/parallelno/vector06c-core/logger"
)

// Scheduler is the single object a host holds: a wired Machine plus the
// breakpoint Store that watches it, and the run state the Request API
// reads and mutates.
//
// Scheduler never starts a goroutine and never takes a lock - every method
// is meant to be called from the host's own loop, one at a time, with no
// separate input/catchup loops to keep in sync.
type Scheduler struct {
	Machine *machine.Machine
	Breaks  *debugger.Store

	state       State
	debugAttach bool
	recentHits  []int
	lastFault   bool
}

// NewScheduler builds a Scheduler around a freshly wired Machine.
func NewScheduler(log *logger.Logger) (*Scheduler, error) {
	m, err := machine.New(log)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		Machine: m,
		Breaks:  debugger.NewStore(),
		state:   Stopped,
	}, nil
}

// State returns the scheduler's current run state.
func (s *Scheduler) State() State {
	return s.state
}

// snapshot gathers the handful of values a breakpoint condition can
// reference, translating the CPU/Memory's concrete types into the
// decoupled debugger.Snapshot shape. Done as a one-shot gather rather than
// a stored closure since this only runs once per instruction boundary.
func (s *Scheduler) snapshot() debugger.Snapshot {
	c := s.Machine.CPU
	page := 0
	if d := s.Machine.Memory.ActiveMapping(); d.ModeStack || d.ModeRAM8 || d.ModeRAMA || d.ModeRAME {
		page = 1 + int(d.PageRAM) + 4*s.Machine.Memory.ActiveDisk()
	}

	return debugger.Snapshot{
		PC:     c.PC.Value(),
		A:      c.A.Value(),
		F:      c.F.Value(),
		B:      c.B.Value(),
		C:      c.C.Value(),
		D:      c.D.Value(),
		E:      c.E.Value(),
		H:      c.H.Value(),
		L:      c.L.Value(),
		BC:     c.BC.Value(),
		DE:     c.DE.Value(),
		HL:     c.HL.Value(),
		SP:     c.SP.Value(),
		Cycles: c.Cycles(),
		Page:   page,
	}
}

// executeInstruction runs one whole CPU instruction (repeat MachineCycle
// until IsInstructionComplete), then checks the two
// instruction-boundary conditions that can interrupt a RUN: a latched
// RAM-disk fault and, if the debugger is attached, a breakpoint hit.
// broke reports whether either condition fired.
func (s *Scheduler) executeInstruction() (broke bool, err error) {
	s.Machine.Memory.ClearWriteLog()

	if err := s.Machine.MachineCycle(); err != nil {
		return false, err
	}
	for !s.Machine.CPU.IsInstructionComplete() {
		if err := s.Machine.MachineCycle(); err != nil {
			return false, err
		}
	}

	s.Machine.Memory.InstructionBoundary()
	if s.Machine.Memory.IsFault() {
		s.Machine.Memory.AcknowledgeFault()
		s.lastFault = true
		return true, nil
	}

	if s.debugAttach {
		if hits := s.Breaks.Check(s.snapshot()); len(hits) > 0 {
			s.recentHits = hits
			return true, nil
		}
	}

	return false, nil
}

// executeFrame runs instructions until the display's frame counter
// advances, stopping early on any broke condition executeInstruction
// reports (EXECUTE_FRAME). noBreaks suppresses the breakpoint
// check (but not the RAM-disk fault check, which is never optional) for
// EXECUTE_FRAME_NO_BREAKS.
func (s *Scheduler) executeFrame(noBreaks bool) (broke bool, err error) {
	start := s.Machine.Display.FrameNumber()
	wasAttached := s.debugAttach
	if noBreaks {
		s.debugAttach = false
	}
	defer func() { s.debugAttach = wasAttached }()

	for s.Machine.Display.FrameNumber() == start {
		broke, err = s.executeInstruction()
		if err != nil || broke {
			return broke, err
		}
	}
	return false, nil
}

// Dispatch implements the full Request API. It is the single entry
// point the host drives the core through; RUN/STOP/EXIT only change
// s.state; every other Kind acts immediately and returns its result.
func (s *Scheduler) Dispatch(req Request) (Response, error) {
	switch req.Kind {
	case ReqRun:
		s.state = Running
		return Response{Kind: req.Kind}, nil

	case ReqStop:
		s.state = Stopped
		return Response{Kind: req.Kind}, nil

	case ReqExit:
		s.state = Exiting
		return Response{Kind: req.Kind}, nil

	case ReqIsRunning:
		return Response{Kind: req.Kind, Payload: RunningResponse{Running: s.state == Running}}, nil

	case ReqReset:
		s.Machine.Reset()
		s.lastFault = false
		return Response{Kind: req.Kind}, nil

	case ReqRestart:
		s.Machine.Restart()
		return Response{Kind: req.Kind}, nil

	case ReqExecuteInstr:
		broke, err := s.executeInstruction()
		if err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind, Payload: RunningResponse{Running: !broke}}, nil

	case ReqExecuteFrame:
		broke, err := s.executeFrame(false)
		if err != nil {
			return Response{}, err
		}
		if broke {
			s.state = Stopped
		}
		return Response{Kind: req.Kind, Payload: RunningResponse{Running: !broke}}, nil

	case ReqExecuteFrameNoBreaks:
		_, err := s.executeFrame(true)
		if err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind}, nil

	case ReqGetCC:
		return Response{Kind: req.Kind, Payload: CCResponse{Value: s.Machine.CPU.Cycles()}}, nil

	case ReqGetRegPC:
		return Response{Kind: req.Kind, Payload: ValueResponse{Value: s.Machine.CPU.PC.Value()}}, nil

	case ReqSetRegPC:
		p := req.Payload.(RegPayload)
		s.Machine.CPU.PC.Load(p.Value)
		return Response{Kind: req.Kind}, nil

	case ReqGetCPUState:
		return Response{Kind: req.Kind, Payload: s.cpuState()}, nil

	case ReqGetInstr:
		p := req.Payload.(AddrPayload)
		opcode, _ := s.Machine.Memory.Peek(p.Addr, bus.RAM)
		n := cpu.GetInstrLen(opcode)
		data := make([]byte, n)
		for i := 0; i < n; i++ {
			data[i], _ = s.Machine.Memory.Peek(p.Addr+uint16(i), bus.RAM)
		}
		return Response{Kind: req.Kind, Payload: BytesResponse{Data: data}}, nil

	case ReqGetByteRAM:
		p := req.Payload.(AddrPayload)
		v, _ := s.Machine.Memory.Peek(p.Addr, bus.RAM)
		return Response{Kind: req.Kind, Payload: ByteResponse{Value: v}}, nil

	case ReqGetWordStack:
		p := req.Payload.(AddrPayload)
		lo, _ := s.Machine.Memory.Peek(p.Addr, bus.Stack)
		hi, _ := s.Machine.Memory.Peek(p.Addr+1, bus.Stack)
		return Response{Kind: req.Kind, Payload: ValueResponse{Value: uint16(hi)<<8 | uint16(lo)}}, nil

	case ReqGetStackSample:
		p := req.Payload.(AddrPayload)
		words := make([]uint16, 0, 11)
		for off := -10; off <= 10; off += 2 {
			addr := uint16(int(p.Addr) + off)
			lo, _ := s.Machine.Memory.Peek(addr, bus.Stack)
			hi, _ := s.Machine.Memory.Peek(addr+1, bus.Stack)
			words = append(words, uint16(hi)<<8|uint16(lo))
		}
		return Response{Kind: req.Kind, Payload: StackSampleResponse{Words: words}}, nil

	case ReqGetMemRange:
		p := req.Payload.(AddrLengthPayload)
		data := make([]byte, p.Length)
		for i := 0; i < p.Length; i++ {
			data[i], _ = s.Machine.Memory.Peek(p.Addr+uint16(i), bus.RAM)
		}
		return Response{Kind: req.Kind, Payload: BytesResponse{Data: data}}, nil

	case ReqGetRAMDisk:
		return Response{Kind: req.Kind, Payload: BytesResponse{Data: s.Machine.Memory.GetRAMDisk()}}, nil

	case ReqSetMem:
		p := req.Payload.(BytesPayload)
		for i, v := range p.Data {
			_ = s.Machine.Memory.Poke(p.Addr+uint16(i), v)
		}
		return Response{Kind: req.Kind}, nil

	case ReqSetRAMDisk:
		p := req.Payload.(DataPayload)
		s.Machine.Memory.SetRAMDisk(p.Data)
		return Response{Kind: req.Kind}, nil

	case ReqGetDisplayData:
		line, pixel := s.Machine.Display.Position()
		return Response{Kind: req.Kind, Payload: DisplayDataResponse{
			Line:   line,
			Pixel:  pixel,
			Frame:  s.Machine.Display.FrameNumber(),
			Scroll: s.Machine.Ports.ScrollIndex(),
		}}, nil

	case ReqGetFrame:
		p := req.Payload.(VsyncPayload)
		return Response{Kind: req.Kind, Payload: FrameResponse{Frame: s.Machine.Display.Snapshot(p.Vsync)}}, nil

	case ReqGetMemoryMapping:
		p := req.Payload.(DiskIndexPayload)
		return Response{Kind: req.Kind, Payload: toMappingResponse(s.Machine.Memory.Mapping(p.Index))}, nil

	case ReqGetMemoryMappings:
		var out MappingsResponse
		for i := 0; i < 8; i++ {
			out.Mappings[i] = toMappingResponse(s.Machine.Memory.Mapping(i))
		}
		out.ActiveDisk = s.Machine.Memory.ActiveDisk()
		return Response{Kind: req.Kind, Payload: out}, nil

	case ReqGetGlobalAddrRAM:
		p := req.Payload.(AddrPayload)
		return Response{Kind: req.Kind, Payload: GlobalAddrResponse{Addr: s.Machine.Memory.GlobalAddress(p.Addr, bus.RAM)}}, nil

	case ReqGetHWMainStats:
		line, pixel := s.Machine.Display.Position()
		return Response{Kind: req.Kind, Payload: HWMainStatsResponse{
			CPU:         s.cpuState(),
			Line:        line,
			Pixel:       pixel,
			DisplayMode: s.Machine.Ports.DisplayMode(),
			BorderColor: s.Machine.Ports.BorderColorIndex(),
			Palette:     s.Machine.Ports.Palette(),
		}}, nil

	case ReqKeyHandling:
		p := req.Payload.(KeyPayload)
		switch s.Machine.Keyboard.KeyEvent(p.Scancode, p.Down) {
		case keyboard.Reset:
			s.Machine.Reset()
		case keyboard.Restart:
			s.Machine.Restart()
		}
		return Response{Kind: req.Kind}, nil

	case ReqMountFDD:
		p := req.Payload.(FDDMountPayload)
		if p.Drive < 0 || p.Drive >= fdc.DriveCount {
			return Response{}, curated.Errorf(curated.UnsupportedRequest, req.Kind)
		}
		s.Machine.FDC.Drive(p.Drive).Mount(p.Path, p.Image)
		return Response{Kind: req.Kind}, nil

	case ReqDismountFDD:
		p := req.Payload.(FDDIndexPayload)
		if p.Drive < 0 || p.Drive >= fdc.DriveCount {
			return Response{}, curated.Errorf(curated.UnsupportedRequest, req.Kind)
		}
		s.Machine.FDC.Drive(p.Drive).Dismount()
		return Response{Kind: req.Kind}, nil

	case ReqDismountFDDAll:
		for i := 0; i < fdc.DriveCount; i++ {
			s.Machine.FDC.Drive(i).Dismount()
		}
		return Response{Kind: req.Kind}, nil

	case ReqResetUpdateFDD:
		p := req.Payload.(FDDIndexPayload)
		if p.Drive < 0 || p.Drive >= fdc.DriveCount {
			return Response{}, curated.Errorf(curated.UnsupportedRequest, req.Kind)
		}
		s.Machine.FDC.Drive(p.Drive).Updated = false
		return Response{Kind: req.Kind}, nil

	case ReqDebugAttach:
		p := req.Payload.(BoolPayload)
		s.debugAttach = p.Value
		return Response{Kind: req.Kind}, nil

	case ReqDebugReset:
		p := req.Payload.(DebugResetPayload)
		if p.ResetRecorder {
			s.recentHits = nil
		}
		s.lastFault = false
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointAdd:
		p := req.Payload.(BreakpointPayload)
		idx := s.Breaks.Add(p.Breakpoint)
		return Response{Kind: req.Kind, Payload: BreakpointResponse{Index: idx}}, nil

	case ReqDebugBreakpointDel:
		p := req.Payload.(BreakpointIndexPayload)
		if err := s.Breaks.Delete(p.Index); err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointDelAll:
		s.Breaks.DeleteAll()
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointSetStatus:
		p := req.Payload.(BreakpointStatusPayload)
		if err := s.Breaks.SetStatus(p.Index, p.Status); err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointActive:
		p := req.Payload.(BreakpointIndexPayload)
		if err := s.Breaks.SetStatus(p.Index, debugger.Active); err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointDisable:
		p := req.Payload.(BreakpointIndexPayload)
		if err := s.Breaks.SetStatus(p.Index, debugger.Disabled); err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind}, nil

	case ReqDebugBreakpointGetStatus:
		p := req.Payload.(BreakpointIndexPayload)
		bp, err := s.Breaks.Get(p.Index)
		if err != nil {
			return Response{}, err
		}
		return Response{Kind: req.Kind, Payload: BreakpointResponse{Index: p.Index, Status: bp.Status}}, nil

	case ReqDebugBreakpointGetAll:
		return Response{Kind: req.Kind, Payload: BreakpointsResponse{Breakpoints: s.Breaks.All()}}, nil

	case ReqDebugBreakpointGetUpdates:
		out := make([]debugger.Breakpoint, 0, len(s.recentHits))
		for _, i := range s.recentHits {
			if bp, err := s.Breaks.Get(i); err == nil {
				out = append(out, bp)
			}
		}
		s.recentHits = nil
		return Response{Kind: req.Kind, Payload: BreakpointsResponse{Breakpoints: out}}, nil

	case ReqDebugMemAccessLogReset:
		s.Machine.Memory.ClearWriteLog()
		return Response{Kind: req.Kind}, nil

	case ReqDebugMemAccessLogGet:
		return Response{Kind: req.Kind, Payload: AccessLogResponse{Writes: s.Machine.Memory.WriteLog()}}, nil

	case ReqOptimize:
		p := req.Payload.(BoolPayload)
		_ = s.Machine.Instance.Prefs.Optimize.Set(p.Value)
		return Response{Kind: req.Kind}, nil

	case ReqBorderFill:
		p := req.Payload.(BoolPayload)
		_ = s.Machine.Instance.Prefs.BorderFill.Set(p.Value)
		return Response{Kind: req.Kind}, nil
	}

	return Response{}, curated.Errorf(curated.UnsupportedRequest, req.Kind)
}

func (s *Scheduler) cpuState() CPUStateResponse {
	c := s.Machine.CPU
	return CPUStateResponse{
		PC:     c.PC.Value(),
		SP:     c.SP.Value(),
		A:      c.A.Value(),
		F:      c.F.Value(),
		B:      c.B.Value(),
		C:      c.C.Value(),
		D:      c.D.Value(),
		E:      c.E.Value(),
		H:      c.H.Value(),
		L:      c.L.Value(),
		BC:     c.BC.Value(),
		DE:     c.DE.Value(),
		HL:     c.HL.Value(),
		Cycles: c.Cycles(),
		Halted: c.IsHalted(),
	}
}

func toMappingResponse(m memory.MemMapping) MappingResponse {
	return MappingResponse{
		PageRAM:   m.PageRAM,
		PageStack: m.PageStack,
		ModeStack: m.ModeStack,
		ModeRAMA:  m.ModeRAMA,
		ModeRAM8:  m.ModeRAM8,
		ModeRAME:  m.ModeRAME,
	}
}

// RunUntilStopped drives RUN/frame execution until the scheduler leaves
// the Running state, calling pace once per completed frame so the host
// can impose the 50fps real-time rate. The only suspension points are
// between instructions and while parked. pace returning false ends the
// loop early (a host-side STOP/EXIT, eg closing the window).
func (s *Scheduler) RunUntilStopped(pace func() bool) error {
	for s.state == Running {
		broke, err := s.executeFrame(false)
		if err != nil {
			return err
		}
		if broke {
			s.state = Stopped
			return nil
		}
		if pace != nil && !pace() {
			return nil
		}
	}
	return nil
}
