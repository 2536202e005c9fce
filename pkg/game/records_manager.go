package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records 跨局保存的战绩
type Records struct {
	BestWave    int `yaml:"bestWave"`
	BestScore   int `yaml:"bestScore"`
	TotalKills  int `yaml:"totalKills"`
	GamesPlayed int `yaml:"gamesPlayed"`
}

// RecordsManager 战绩管理器，存储方式与 SettingsManager 相同
type RecordsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	records      Records
}

const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// NewRecordsManager 创建战绩管理器并尝试读取已有战绩
func NewRecordsManager(gdataManager *gdata.Manager) *RecordsManager {
	rm := &RecordsManager{gdataManager: gdataManager}
	if err := rm.Load(); err != nil {
		log.Printf("[RecordsManager] Warning: Failed to load records: %v (starting fresh)", err)
	}
	return rm
}

// Load 从 gdata 读取战绩
func (rm *RecordsManager) Load() error {
	rm.records = Records{}
	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded Records
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	rm.records = loaded
	return nil
}

// Save 写入 gdata，降级模式下直接返回 nil
func (rm *RecordsManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// RecordGame 记录一局结果并持久化
//
// 返回是否刷新了最高波次或最高分。
// 保存失败只记录日志，内存中的战绩仍然更新。
func (rm *RecordsManager) RecordGame(wave, score, kills int) bool {
	improved := false
	if wave > rm.records.BestWave {
		rm.records.BestWave = wave
		improved = true
	}
	if score > rm.records.BestScore {
		rm.records.BestScore = score
		improved = true
	}
	if kills > 0 {
		rm.records.TotalKills += kills
	}
	rm.records.GamesPlayed++

	log.Printf("[RecordsManager] Game recorded: wave=%d score=%d kills=%d (best wave=%d, best score=%d)",
		wave, score, kills, rm.records.BestWave, rm.records.BestScore)

	if err := rm.Save(); err != nil {
		log.Printf("[RecordsManager] Warning: %v", err)
	}
	return improved
}

// Records 返回当前战绩的副本
func (rm *RecordsManager) Records() Records {
	return rm.records
}
