package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxLuaVM strips a Lua VM down to what a declarative manifest needs.
// Removed: command execution and environment (os), filesystem (io), code
// loading (require, dofile, loadfile, load, loadstring), debug and rawset.
// The string, table and math libraries and basic functions stay.
func sandboxLuaVM(L *lua.LState) {
	L.SetGlobal("os", lua.LNil)
	L.SetGlobal("io", lua.LNil)

	L.SetGlobal("require", lua.LNil)
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	L.SetGlobal("load", lua.LNil)
	L.SetGlobal("loadstring", lua.LNil)

	// debug and rawset could be used to write through the read-only platform table
	L.SetGlobal("debug", lua.LNil)
	L.SetGlobal("rawset", lua.LNil)
}

// newSandboxedVM creates a new Lua VM with sandboxing applied.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	sandboxLuaVM(L)
	return L
}
