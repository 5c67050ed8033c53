package preflight

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jisub-lee-0906/Auto-Menu-App/internal/config"
	"github.com/jisub-lee-0906/Auto-Menu-App/internal/testsupport"
)

func TestCheckDataDirectory_OK(t *testing.T) {
	result := CheckDataDirectory(filepath.Join(t.TempDir(), "menu_db.json"))
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDataDirectory_NotExist(t *testing.T) {
	result := CheckDataDirectory(filepath.Join(t.TempDir(), "nope", "menu_db.json"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDataDirectory_NotDir(t *testing.T) {
	parent := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "file.txt"), "x")
	result := CheckDataDirectory(filepath.Join(parent, "menu_db.json"))
	if result.Passed {
		t.Fatal("expected failure when parent is a file")
	}
}

func TestCheckDataFile_OK(t *testing.T) {
	path := testsupport.WriteStore(t, `{"rice": ["김밥", "비빔밥"], "main": []}`)
	result := CheckDataFile(path)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2 categories, 2 items") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDataFile_Failures(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name   string
		path   string
		detail string
	}{
		{"missing", filepath.Join(dir, "missing.json"), "does not exist"},
		{"directory", dir, "not a regular file"},
		{"malformed", testsupport.WriteFile(t, filepath.Join(dir, "bad.json"), `{"rice": `), "error: parse"},
		{"wrong shape", testsupport.WriteFile(t, filepath.Join(dir, "list.json"), `["rice"]`), "error: parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckDataFile(tc.path)
			if result.Passed {
				t.Fatal("expected failure")
			}
			if !strings.Contains(result.Detail, tc.detail) {
				t.Fatalf("detail %q does not mention %q", result.Detail, tc.detail)
			}
		})
	}
}

func TestCheckMoveTable(t *testing.T) {
	builtin := CheckMoveTable("")
	if !builtin.Passed || !strings.Contains(builtin.Detail, "built-in (148 items)") {
		t.Fatalf("unexpected built-in result: %+v", builtin)
	}

	good := testsupport.WriteMoves(t, "[[move]]\nfrom = \"rice\"\nto = \"main\"\nitems = [\"김밥\"]\n")
	if result := CheckMoveTable(good); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}

	dup := testsupport.WriteMoves(t, "[[move]]\nfrom = \"rice\"\nto = \"main\"\nitems = [\"김밥\", \"김밥\"]\n")
	if result := CheckMoveTable(dup); result.Passed || !strings.Contains(result.Detail, "validation") {
		t.Fatalf("expected validation failure, got: %+v", result)
	}

	if result := CheckMoveTable(filepath.Join(t.TempDir(), "missing.toml")); result.Passed {
		t.Fatal("expected failure for missing table")
	}
}

func TestRunAll(t *testing.T) {
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}

	cfg := config.Default()
	cfg.Paths.DataFile = testsupport.WriteStore(t, `{"rice": []}`)
	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if n := Failed(results); n != 0 {
		t.Fatalf("expected no failures, got %d: %+v", n, results)
	}

	cfg.Paths.DataFile = filepath.Join(t.TempDir(), "missing.json")
	if n := Failed(RunAll(&cfg)); n != 1 {
		t.Fatalf("expected 1 failure for missing data file, got %d", n)
	}
}
