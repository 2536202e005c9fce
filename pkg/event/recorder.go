package event

// Recorder 记录收到的全部事件
// 供测试和无界面模拟器统计使用
type Recorder struct {
	Events []Event
}

// OnEvent 实现 Listener
func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Types 返回按顺序记录的事件类型
func (r *Recorder) Types() []Type {
	types := make([]Type, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}

// Count 返回某类事件的数量
func (r *Recorder) Count(t Type) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Filter 返回某类事件
func (r *Recorder) Filter(t Type) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
