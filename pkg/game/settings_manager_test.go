package game

import (
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowFPS {
		t.Error("ShowFPS: got true, want false")
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) failed: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("降级模式应使用默认设置: got %+v", sm.GetSettings())
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 不应报错: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("降级模式 Load 不应报错: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("降级模式 Load 后应恢复默认设置")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := openTestGdata(t, "settings")

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.35)
	sm.SetFullscreen(true)
	sm.SetShowFPS(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 新实例从存储中读取
	reloaded, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	want := GameSettings{SoundEnabled: false, SoundVolume: 0.35, Fullscreen: true, ShowFPS: true}
	if got := *reloaded.GetSettings(); got != want {
		t.Errorf("reloaded settings: got %+v, want %+v", got, want)
	}
}

func TestSettingsLoadPartialData(t *testing.T) {
	manager := openTestGdata(t, "settings_partial")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("showFPS: true\nsoundVolume: 3\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, _ := NewSettingsManager(manager)
	s := sm.GetSettings()
	if !s.ShowFPS {
		t.Error("ShowFPS: got false, want true")
	}
	if !s.SoundEnabled {
		t.Error("缺失字段应保留默认值 SoundEnabled=true")
	}
	if s.SoundVolume != 1.0 {
		t.Errorf("越界音量应被限制: got %v, want 1.0", s.SoundVolume)
	}
}

func TestSettingsLoadCorruptData(t *testing.T) {
	manager := openTestGdata(t, "settings_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("损坏的数据不应导致创建失败: %v", err)
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("损坏的数据应回退到默认设置: got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load 应返回反序列化错误")
	}
}

func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.5, 0.5},
		{"下限", 0.0, 0.0},
		{"上限", 1.0, 1.0},
		{"低于下限", -0.3, 0.0},
		{"高于上限", 1.7, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := NewSettingsManager(nil)
			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("SoundVolume: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundVolume(0.6)
	if v := sm.EffectiveVolume(); v != 0.6 {
		t.Errorf("EffectiveVolume: got %v, want 0.6", v)
	}
	sm.SetSoundEnabled(false)
	if v := sm.EffectiveVolume(); v != 0 {
		t.Errorf("关闭音效后 EffectiveVolume: got %v, want 0", v)
	}
}
