package config

import (
	"strings"
	"testing"

	"github.com/The-Fency-Project/fcyup/internal/platform"
)

func TestSandboxLuaVM(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
		errMsg  string
	}{
		// Safe operations that should work
		{
			name:    "string_operations_allowed",
			code:    `x = string.upper("hello")`,
			wantErr: false,
		},
		{
			name:    "table_operations_allowed",
			code:    `t = {1, 2, 3}; table.insert(t, 4)`,
			wantErr: false,
		},
		{
			name:    "math_operations_allowed",
			code:    `x = math.sqrt(16)`,
			wantErr: false,
		},
		{
			name:    "basic_functions_allowed",
			code:    `x = type("hello"); y = tostring(123); z = tonumber("456")`,
			wantErr: false,
		},
		{
			name:    "pairs_and_ipairs_allowed",
			code:    `t = {a=1, b=2}; for k,v in pairs(t) do end`,
			wantErr: false,
		},

		// Dangerous operations that should fail
		{
			name:    "os_execute_blocked",
			code:    `os.execute("ls")`,
			wantErr: true,
			errMsg:  "attempt to index",
		},
		{
			name:    "os_getenv_blocked",
			code:    `x = os.getenv("PATH")`,
			wantErr: true,
			errMsg:  "attempt to index",
		},
		{
			name:    "io_open_blocked",
			code:    `f = io.open("/etc/passwd")`,
			wantErr: true,
			errMsg:  "attempt to index",
		},
		{
			name:    "io_popen_blocked",
			code:    `f = io.popen("ls")`,
			wantErr: true,
			errMsg:  "attempt to index",
		},
		{
			name:    "require_blocked",
			code:    `socket = require("socket")`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "dofile_blocked",
			code:    `dofile("/tmp/evil.lua")`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "loadfile_blocked",
			code:    `f = loadfile("/tmp/evil.lua")`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "load_blocked",
			code:    `f = load("return 1+1")`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "loadstring_blocked",
			code:    `f = loadstring("return 1+1")`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "rawset_blocked",
			code:    `rawset({}, "a", 1)`,
			wantErr: true,
			errMsg:  "attempt to call",
		},
		{
			name:    "debug_blocked",
			code:    `debug.getinfo(1)`,
			wantErr: true,
			errMsg:  "attempt to index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L := newSandboxedVM()
			defer L.Close()

			err := L.DoString(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("sandboxLuaVM() with code %q: error = %v, wantErr %v", tt.code, err, tt.wantErr)
				return
			}

			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("sandboxLuaVM() with code %q: error = %v, want substring %q", tt.code, err, tt.errMsg)
				}
			}
		})
	}
}

func TestSandboxLuaVM_PlatformTableStaysReadOnly(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "field_assignment", code: `platform.os = "windows"`},
		{name: "new_field", code: `platform.extra = true`},
		{name: "setmetatable", code: `setmetatable(platform, nil)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L := newSandboxedVM()
			defer L.Close()
			if err := platform.InjectPlatformTable(L, platform.New("linux", "x86_64")); err != nil {
				t.Fatalf("InjectPlatformTable() error = %v", err)
			}

			if err := L.DoString(tt.code); err == nil {
				t.Errorf("expected %q to fail", tt.code)
			}

			if err := L.DoString(`assert(platform.os == "linux")`); err != nil {
				t.Errorf("platform table was modified: %v", err)
			}
		})
	}
}
