package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// luaGlobal is the name manifests use to reach platform facts.
const luaGlobal = "platform"

// fields lists what a manifest can read from the platform table.
func (i *Info) fields() map[string]lua.LValue {
	return map[string]lua.LValue{
		"os":         lua.LString(i.OS),
		"arch":       lua.LString(i.Arch),
		"os_raw":     lua.LString(i.OSRaw),
		"arch_raw":   lua.LString(i.ArchRaw),
		"is_linux":   lua.LBool(i.IsLinux()),
		"is_macos":   lua.LBool(i.IsMacOS()),
		"is_windows": lua.LBool(i.IsWindows()),
		"is_x86_64":  lua.LBool(i.IsX86_64()),
		"is_aarch64": lua.LBool(i.IsAArch64()),
	}
}

// InjectPlatformTable exposes info to Lua as the read-only global "platform",
// together with platform.when(cond, value), which yields value when cond
// holds and nil otherwise.
func InjectPlatformTable(L *lua.LState, info *Info) error {
	facts := L.NewTable()
	for name, v := range info.fields() {
		facts.RawSetString(name, v)
	}
	facts.RawSetString("when", L.NewFunction(luaWhen))

	L.SetGlobal(luaGlobal, readOnlyView(L, facts))
	return nil
}

func luaWhen(L *lua.LState) int {
	if L.CheckBool(1) {
		L.Push(L.Get(2))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

// readOnlyView returns an empty table whose metatable serves reads from
// backing and rejects writes. The metatable itself is locked.
func readOnlyView(L *lua.LState, backing *lua.LTable) *lua.LTable {
	meta := L.NewTable()
	meta.RawSetString("__index", backing)
	meta.RawSetString("__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("%s table is read-only", luaGlobal)
		return 0
	}))
	meta.RawSetString("__metatable", lua.LString("locked"))

	view := L.NewTable()
	L.SetMetatable(view, meta)
	return view
}
