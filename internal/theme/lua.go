package theme

import (
	"os"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua runs a Lua theme script in a restricted state and collects the
// faces, aliases, and remaps it declares.
func LoadLua(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return RunLua(path, string(data))
}

// RunLua executes Lua theme source. The script sees three functions:
//
//	face(name, attrs)  -- define a face from an attribute table
//	alias(from, to)    -- link a face name to another
//	remap(from, to)    -- remap a face to another
//
// plus the base, table, string, and math libraries. File loading, code
// loading, and module loading are all removed.
func RunLua(path, source string) (*Theme, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	t := &Theme{}
	var convErr error

	L.SetGlobal("face", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		table := L.CheckTable(2)
		def := Definition{Name: name}
		table.ForEach(func(k, v lua.LValue) {
			key, ok := k.(lua.LString)
			if !ok {
				return
			}
			p, err := property(name, string(key), luaToGo(v))
			if err != nil {
				if convErr == nil {
					convErr = err
				}
				return
			}
			def.Props = append(def.Props, p)
		})
		t.Faces = append(t.Faces, def)
		return 0
	}))
	L.SetGlobal("alias", L.NewFunction(func(L *lua.LState) int {
		t.Aliases = append(t.Aliases, [2]string{L.CheckString(1), L.CheckString(2)})
		return 0
	}))
	L.SetGlobal("remap", L.NewFunction(func(L *lua.LState) int {
		t.Remaps = append(t.Remaps, [2]string{L.CheckString(1), L.CheckString(2)})
		return 0
	}))
	L.SetGlobal("theme", L.NewFunction(func(L *lua.LState) int {
		t.Name = L.CheckString(1)
		return 0
	}))

	if err := L.DoString(source); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if convErr != nil {
		return nil, convErr
	}
	return t, nil
}

// luaToGo converts a Lua value to the raw shapes the property converter
// accepts. Tables with only array entries become slices, others become
// string-keyed maps.
func luaToGo(v lua.LValue) any {
	switch lv := v.(type) {
	case lua.LString:
		return string(lv)
	case lua.LBool:
		return bool(lv)
	case lua.LNumber:
		return float64(lv)
	case *lua.LTable:
		if lv.MaxN() > 0 {
			list := make([]any, 0, lv.MaxN())
			for i := 1; i <= lv.MaxN(); i++ {
				list = append(list, luaToGo(lv.RawGetInt(i)))
			}
			return list
		}
		m := make(map[string]any)
		lv.ForEach(func(k, val lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = luaToGo(val)
			}
		})
		return m
	}
	return nil
}
