package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Package != "main" {
		t.Errorf("Package = %q, want main", cfg.Package)
	}
	if cfg.VarName != "Doc" {
		t.Errorf("VarName = %q, want Doc", cfg.VarName)
	}
	if !cfg.Formatting.Enabled {
		t.Error("Formatting.Enabled = false, want true")
	}
	if !cfg.Naming.PascalCaseVars {
		t.Error("Naming.PascalCaseVars = false, want true")
	}
	if cfg.Output.ExprOnly {
		t.Error("Output.ExprOnly = true, want false")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jsonlit.yml")
	content := `package: fixtures
var_name: sample
formatting:
  enabled: false
output:
  file_header: "Code generated by jsonlit. DO NOT EDIT."
naming:
  pascal_case_vars: true
  var_mappings:
    raw: RawDocument
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Package != "fixtures" {
		t.Errorf("Package = %q, want fixtures", cfg.Package)
	}
	if cfg.VarName != "sample" {
		t.Errorf("VarName = %q, want sample", cfg.VarName)
	}
	if cfg.Formatting.Enabled {
		t.Error("Formatting.Enabled = true, want false")
	}
	if cfg.Output.FileHeader != "Code generated by jsonlit. DO NOT EDIT." {
		t.Errorf("FileHeader = %q", cfg.Output.FileHeader)
	}
	if cfg.Naming.VarMappings["raw"] != "RawDocument" {
		t.Errorf("VarMappings[raw] = %q", cfg.Naming.VarMappings["raw"])
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want read error")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("package: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	configPath := filepath.Join(dir, ".jsonlit.yml")
	if err := os.WriteFile(configPath, []byte("package: x\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})

	found := FindConfigFile()
	if found == "" {
		t.Fatal("FindConfigFile() = \"\", want path in parent")
	}
	if filepath.Base(found) != ".jsonlit.yml" {
		t.Errorf("FindConfigFile() = %q", found)
	}
}

func TestGetVarName(t *testing.T) {
	cfg := NewConfig()
	cfg.Naming.VarMappings["raw"] = "RawDocument"

	tests := []struct {
		in   string
		want string
	}{
		{"raw", "RawDocument"},
		{"my_doc", "MyDoc"},
		{"", "Doc"}, // falls back to configured VarName
	}
	for _, tt := range tests {
		if got := cfg.GetVarName(tt.in); got != tt.want {
			t.Errorf("GetVarName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	cfg.Naming.PascalCaseVars = false
	if got := cfg.GetVarName("my_doc"); got != "my_doc" {
		t.Errorf("GetVarName with PascalCaseVars off = %q, want my_doc", got)
	}
}

func TestLoadConfigWithCLI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jsonlit.yml")
	if err := os.WriteFile(path, []byte("package: fromfile\nvar_name: FromFile\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Defaults on the CLI do not clobber file values.
	cfg, err := LoadConfigWithCLI(path, "main", "Doc", false)
	if err != nil {
		t.Fatalf("LoadConfigWithCLI() error = %v", err)
	}
	if cfg.Package != "fromfile" {
		t.Errorf("Package = %q, want fromfile", cfg.Package)
	}
	if cfg.VarName != "FromFile" {
		t.Errorf("VarName = %q, want FromFile", cfg.VarName)
	}

	// Explicit CLI values win.
	cfg, err = LoadConfigWithCLI(path, "override", "Custom", true)
	if err != nil {
		t.Fatalf("LoadConfigWithCLI() error = %v", err)
	}
	if cfg.Package != "override" {
		t.Errorf("Package = %q, want override", cfg.Package)
	}
	if cfg.VarName != "Custom" {
		t.Errorf("VarName = %q, want Custom", cfg.VarName)
	}
	if !cfg.Output.ExprOnly {
		t.Error("Output.ExprOnly = false, want true")
	}
}
