package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/The-Fency-Project/fcyup/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser reads project manifests with platform detection.
type Parser struct {
	detector platform.Detector
	logger   Logger
}

// NewParser creates a new manifest parser with the given platform detector.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector, logger: NopLogger()}
}

// SetLogger sets the logger used for diagnostics.
func (p *Parser) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger()
	}
	p.logger = logger
}

// ParseFile reads and evaluates the manifest at path.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]ProjectRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxManifestSize+1))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(data) > MaxManifestSize {
		return nil, &ParseError{
			Message: "manifest too large",
			Detail:  fmt.Sprintf("%s exceeds %d bytes", path, MaxManifestSize),
		}
	}

	p.logger.Debug("parsing manifest", "path", path, "bytes", len(data))
	return p.ParseString(ctx, string(data))
}

// ParseString evaluates a manifest held in memory.
func (p *Parser) ParseString(ctx context.Context, luaCode string) ([]ProjectRef, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	// Detect platform and inject platform table
	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return p.extractProjects(L)
}

// ParseError represents a manifest parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractProjects reads fcyup.projects from a Lua state.
func (p *Parser) extractProjects(L *lua.LState) ([]ProjectRef, error) {
	root := L.GetGlobal(luaGlobalFcyup)
	if root.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'fcyup' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	list := root.(*lua.LTable).RawGetString(luaFieldProjects)
	if list.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'fcyup.projects' list",
			Detail:  fmt.Sprintf("expected table, got %s", list.Type()),
		}
	}
	table := list.(*lua.LTable)

	// Walk 1..n by index so the order is the declared order. Holes left by
	// platform conditionals are skipped; the length operator may stop at one.
	n := table.MaxN()
	var projects []ProjectRef
	for i := 1; i <= n; i++ {
		value := table.RawGetInt(i)
		if value.Type() == lua.LTNil {
			p.logger.Debug("skipping nil manifest entry", "index", i)
			continue
		}

		ref, err := projectFromValue(value)
		if err != nil {
			return nil, &ParseError{
				Message: fmt.Sprintf("invalid project at index %d", i),
				Detail:  err.Error(),
			}
		}
		projects = append(projects, ref)
	}

	if len(projects) == 0 {
		return nil, &ParseError{
			Message: "no projects declared",
			Detail:  "fcyup.projects must contain at least one entry",
		}
	}
	if len(projects) > MaxProjectCount {
		return nil, &ParseError{
			Message: "too many projects",
			Detail:  fmt.Sprintf("%d declared, maximum is %d", len(projects), MaxProjectCount),
		}
	}

	return projects, nil
}

// projectFromValue accepts "owner/repo" or { owner = ..., repo = ... }.
func projectFromValue(value lua.LValue) (ProjectRef, error) {
	switch v := value.(type) {
	case lua.LString:
		return ParseProjectRef(string(v))
	case *lua.LTable:
		ref := ProjectRef{}
		if owner := v.RawGetString(luaFieldOwner); owner.Type() == lua.LTString {
			ref.Owner = strings.TrimSpace(owner.String())
		}
		if repo := v.RawGetString(luaFieldRepo); repo.Type() == lua.LTString {
			ref.Repo = strings.TrimSpace(repo.String())
		}
		if err := ref.Validate(); err != nil {
			return ProjectRef{}, err
		}
		return ref, nil
	default:
		return ProjectRef{}, fmt.Errorf("expected string or table, got %s", value.Type())
	}
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
