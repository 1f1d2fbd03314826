// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detail about each instruction encountered during
// execution, built up machine cycle by machine cycle as hardware/cpu steps
// through it, for use by the debugger and by disassembly.
//
// Result.IsValid() checks that a finalised Result is consistent with its
// instruction definition. hardware/cpu doesn't call this itself - it would
// introduce an unwanted per-instruction overhead - but it is useful in a
// debugging or test context.
package execution
