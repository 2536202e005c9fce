package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/simulation.yaml":   {Data: []byte("maxAlive: 100\n")},
		"data/zombie_tiers.yaml": {Data: []byte("tiers: []\n")},
		"data/progression.yaml":  {Data: []byte("levelThresholds: [0]\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestNotInitialized 测试未初始化时的所有访问函数
func TestNotInitialized(t *testing.T) {
	Reset()

	t.Run("Open", func(t *testing.T) {
		if _, err := Open("data/simulation.yaml"); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	})
	t.Run("ReadFile", func(t *testing.T) {
		if _, err := ReadFile("data/simulation.yaml"); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	})
	t.Run("Glob", func(t *testing.T) {
		if _, err := Glob("data/*.yaml"); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	})
	t.Run("ReadDir", func(t *testing.T) {
		if _, err := ReadDir("data"); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("Expected ErrNotInitialized, got %v", err)
		}
	})
	t.Run("Exists", func(t *testing.T) {
		if Exists("data/simulation.yaml") {
			t.Error("Expected Exists() to return false before Init()")
		}
	})
}

// TestReadFile 测试读取嵌入文件
func TestReadFile(t *testing.T) {
	Init(testFS())
	t.Cleanup(Reset)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/simulation.yaml", want: "maxAlive: 100\n"},
		{name: "带./前缀", path: "./data/simulation.yaml", want: "maxAlive: 100\n"},
		{name: "未知前缀", path: "assets/logo.png", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%s) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestGlobAndReadDir 测试匹配与目录读取
func TestGlobAndReadDir(t *testing.T) {
	Init(testFS())
	t.Cleanup(Reset)

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Expected 3 matches, got %v", matches)
	}

	entries, err := ReadDir("data")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(entries))
	}

	if !Exists("data/progression.yaml") {
		t.Error("Expected data/progression.yaml to exist")
	}
	if Exists("data/none.yaml") {
		t.Error("Expected data/none.yaml to be missing")
	}
}
